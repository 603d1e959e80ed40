// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/wclique/internal/batch"
	"github.com/katalvlaran/wclique/logger"
	"github.com/katalvlaran/wclique/problem"
)

var cliqueCommand = cli.Command{
	Name:      "clique",
	Usage:     "find a maximum-weight clique of every problem in the file",
	ArgsUsage: "<problems.yaml>",
	Flags:     solverFlags,
	Action: func(ctx *cli.Context) error {
		return solve(ctx, problem.ModeClique)
	},
}

var independentSetCommand = cli.Command{
	Name:      "independent-set",
	Aliases:   []string{"mis"},
	Usage:     "find a maximum-weight independent set of every problem in the file",
	ArgsUsage: "<problems.yaml>",
	Flags:     solverFlags,
	Action: func(ctx *cli.Context) error {
		return solve(ctx, problem.ModeIndependentSet)
	},
}

var batchCommand = cli.Command{
	Name:      "batch",
	Usage:     "solve every problem in the file with its own mode and options",
	ArgsUsage: "<problems.yaml>",
	Flags:     solverFlags,
	Action: func(ctx *cli.Context) error {
		return solve(ctx, "")
	},
}

// solve loads the problem file, forces mode when non-empty and prints the
// solutions.
func solve(ctx *cli.Context, mode problem.Mode) error {
	if ctx.Args().Len() != 1 {
		return errors.Wrapf(errUsage, "%s expects exactly one problem file", ctx.Command.Name)
	}
	format := ctx.String(formatFlag.Name)
	if format != formatTable && format != formatYAML {
		return errors.Wrapf(errUsage, "unknown format %q", format)
	}

	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "WClique")
	problems, err := problem.Load(ctx.Args().First())
	if err != nil {
		return err
	}
	if mode != "" {
		for _, p := range problems {
			p.Mode = mode
		}
	}
	log.Infof("loaded %d problems from %s", len(problems), ctx.Args().First())

	runner := batch.NewRunner(ctx.Int(workersFlag.Name), ctx.String(logger.LogLevelFlag.Name))
	runner.Override = optionsOverride(ctx)
	runner.FailFast = ctx.Bool(failFastFlag.Name)
	if runner.Override != nil {
		log.Debugf("command line options override problem options: %+v", *runner.Override)
	}

	sols, err := runner.Run(ctx.Context, problems)
	if err != nil {
		return err
	}

	if format == formatYAML {
		return problem.Encode(ctx.App.Writer, sols...)
	}
	renderTable(ctx.App.Writer, sols)

	return nil
}

// renderTable prints one row per solution.
func renderTable(w io.Writer, sols []problem.Solution) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Mode", "Found", "Weight", "Size", "Vertices", "Nodes", "Prunes", "Elapsed"})
	var total int64
	for i, s := range sols {
		if s.Error != "" {
			t.AppendRow(table.Row{i, s.Name, s.Mode, "error", "", "", s.Error, "", "", s.Elapsed})
			continue
		}
		total += s.Weight
		t.AppendRow(table.Row{
			i, s.Name, s.Mode, s.Found, s.Weight, len(s.Vertices), joinInts(s.Vertices),
			s.Stats.Nodes, s.Stats.BoundPrunes + s.Stats.WindowPrunes, s.Elapsed,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", total})
	t.Render()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}
