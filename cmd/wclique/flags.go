// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/wclique/clique"
)

var (
	minWeightFlag = cli.Int64Flag{
		Name:  "min-weight",
		Usage: "lowest clique weight that may be reported (0 = no lower bound)",
	}
	maxWeightFlag = cli.Int64Flag{
		Name:  "max-weight",
		Usage: "highest clique weight that may be reported (0 = no upper bound)",
	}
	onlyMaximalFlag = cli.BoolFlag{
		Name:  "only-maximal",
		Usage: "report maximal cliques only",
		Value: true,
	}
	maxSizeFlag = cli.IntFlag{
		Name:  "max-size",
		Usage: "cap on clique cardinality and search depth",
		Value: clique.DefaultMaxSize,
	}
	timeLimitFlag = cli.DurationFlag{
		Name:  "time-limit",
		Usage: "abort a search after this long (0 = unlimited)",
	}
	noBoundFlag = cli.BoolFlag{
		Name:  "no-bound",
		Usage: "disable coloring-bound pruning (slow; for comparison only)",
	}
	workersFlag = cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of problems solved concurrently (0 = GOMAXPROCS)",
		Value:   1,
	}
	formatFlag = cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format: \"table\" or \"yaml\"",
		Value:   formatTable,
	}
	failFastFlag = cli.BoolFlag{
		Name:  "fail-fast",
		Usage: "stop at the first problem that fails",
	}
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var errUsage = errors.New("usage error")

// solverFlags are shared by every solving command.
var solverFlags = []cli.Flag{
	&minWeightFlag,
	&maxWeightFlag,
	&onlyMaximalFlag,
	&maxSizeFlag,
	&timeLimitFlag,
	&noBoundFlag,
	&workersFlag,
	&formatFlag,
	&failFastFlag,
}

// optionsOverride returns solver options built from the command line, or nil
// when no solver flag was given so that each problem keeps its own options.
func optionsOverride(ctx *cli.Context) *clique.Options {
	set := false
	for _, f := range []cli.Flag{&minWeightFlag, &maxWeightFlag, &onlyMaximalFlag, &maxSizeFlag, &timeLimitFlag, &noBoundFlag} {
		if ctx.IsSet(f.Names()[0]) {
			set = true
			break
		}
	}
	if !set {
		return nil
	}

	opts := clique.DefaultOptions()
	opts.MinWeight = ctx.Int64(minWeightFlag.Name)
	opts.MaxWeight = ctx.Int64(maxWeightFlag.Name)
	opts.OnlyMaximal = ctx.Bool(onlyMaximalFlag.Name)
	opts.MaxSize = ctx.Int(maxSizeFlag.Name)
	opts.TimeLimit = ctx.Duration(timeLimitFlag.Name)
	if ctx.Bool(noBoundFlag.Name) {
		opts.Bound = clique.NoBound
	}

	return &opts
}
