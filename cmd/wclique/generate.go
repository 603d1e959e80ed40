// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/wclique/builder"
	"github.com/katalvlaran/wclique/logger"
	"github.com/katalvlaran/wclique/problem"
)

var (
	verticesFlag = cli.IntFlag{
		Name:    "vertices",
		Aliases: []string{"n"},
		Usage:   "number of vertices",
		Value:   50,
	}
	densityFlag = cli.Float64Flag{
		Name:    "density",
		Aliases: []string{"p"},
		Usage:   "edge probability of the random graph",
		Value:   0.3,
	}
	plantedFlag = cli.IntFlag{
		Name:  "planted",
		Usage: "size of a planted clique (0 = none)",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the first problem; later ones derive from it",
		Value: 1,
	}
	countFlag = cli.IntFlag{
		Name:    "count",
		Aliases: []string{"c"},
		Usage:   "number of problems to generate",
		Value:   1,
	}
	minVertexWeightFlag = cli.Int64Flag{
		Name:  "min-vertex-weight",
		Usage: "lowest vertex weight",
		Value: 1,
	}
	maxVertexWeightFlag = cli.Int64Flag{
		Name:  "max-vertex-weight",
		Usage: "highest vertex weight",
		Value: 10,
	}
	modeFlag = cli.StringFlag{
		Name:  "mode",
		Usage: "operation recorded in the problems: \"clique\" or \"independent-set\"",
		Value: string(problem.ModeClique),
	}
	outputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the problems to the given path instead of stdout",
	}
)

var generateCommand = cli.Command{
	Name:  "generate",
	Usage: "write random weighted problems as YAML",
	Flags: []cli.Flag{
		&verticesFlag,
		&densityFlag,
		&plantedFlag,
		&seedFlag,
		&countFlag,
		&minVertexWeightFlag,
		&maxVertexWeightFlag,
		&modeFlag,
		&outputFlag,
	},
	Action: generate,
}

func generate(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Generate")

	lo, hi := ctx.Int64(minVertexWeightFlag.Name), ctx.Int64(maxVertexWeightFlag.Name)
	if lo < 1 || hi < lo {
		return errors.Wrapf(errUsage, "vertex weights need 1 <= min <= max, got [%d,%d]", lo, hi)
	}
	mode := problem.Mode(ctx.String(modeFlag.Name))
	if mode != problem.ModeClique && mode != problem.ModeIndependentSet {
		return errors.Wrapf(errUsage, "unknown mode %q", mode)
	}

	var (
		n       = ctx.Int(verticesFlag.Name)
		count   = ctx.Int(countFlag.Name)
		planted = ctx.Int(plantedFlag.Name)
		seed    = ctx.Int64(seedFlag.Name)
		out     = make([]*problem.Problem, 0, max(count, 0))
	)
	for i := 0; i < count; i++ {
		cons := []builder.Constructor{builder.RandomSparse(ctx.Float64(densityFlag.Name))}
		if planted > 0 {
			cons = append(cons, builder.PlantedClique(planted, nil))
		}
		s := seed
		if i > 0 {
			s = builder.DeriveSeed(seed, uint64(i))
		}
		in, err := builder.Build(n,
			[]builder.BuilderOption{builder.WithSeed(s), builder.WithWeightRange(lo, hi)},
			cons...)
		if err != nil {
			return err
		}
		out = append(out, problem.FromInstance(fmt.Sprintf("g%d-n%d-s%d", i, n, s), mode, in))
	}
	log.Infof("generated %d problems with %d vertices", len(out), n)

	if path := ctx.String(outputFlag.Name); path != "" {
		return problem.Save(path, out...)
	}

	return problem.Encode(ctx.App.Writer, out...)
}
