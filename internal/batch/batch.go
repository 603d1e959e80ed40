// SPDX-License-Identifier: MIT

// Package batch solves many problems concurrently. Each search stays
// single-threaded; parallelism is across problems only.
package batch

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/logger"
	"github.com/katalvlaran/wclique/problem"
)

// Runner configures a batch run.
type Runner struct {
	// Workers bounds the number of concurrent searches; <= 0 means GOMAXPROCS.
	Workers int

	// Override replaces every problem's own options when non-nil.
	Override *clique.Options

	// FailFast aborts the whole batch on the first failing problem. Otherwise
	// failures are recorded in Solution.Error and the batch continues.
	FailFast bool

	Log logger.Logger
}

// NewRunner returns a Runner logging at the given level.
func NewRunner(workers int, logLevel string) *Runner {
	return &Runner{
		Workers: workers,
		Log:     logger.NewLogger(logLevel, "Batch"),
	}
}

// Run solves problems and returns their solutions in input order.
// Cancelling ctx stops the batch; the context error is returned.
func (r *Runner) Run(ctx context.Context, problems []*problem.Problem) ([]problem.Solution, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := r.Log
	if log == nil {
		log = logger.NewLogger(logger.DefaultLogLevel, "Batch")
	}

	var (
		out    = make([]problem.Solution, len(problems))
		failed atomic.Int64
		start  = time.Now()
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			t0 := time.Now()
			res, err := p.Solve(gctx, r.Override)
			elapsed := time.Since(t0)

			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			out[i] = problem.NewSolution(p, res, elapsed, err)
			if err != nil {
				failed.Add(1)
				log.Warningf("problem %d (%s) failed: %v", i, p.Name, err)
				if r.FailFast {
					return errors.Wrapf(err, "problem %d (%s)", i, p.Name)
				}

				return nil
			}
			log.Debugf("problem %d (%s): weight %d, %d vertices, %d nodes, %d prunes, %s",
				i, p.Name, res.Weight, len(res.Vertices), res.Stats.Nodes, res.Stats.BoundPrunes, elapsed)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}

	h, m, s := logger.ParseTime(time.Since(start))
	log.Noticef("solved %d problems (%d failed) with %d workers in %vh %vm %vs",
		len(problems), failed.Load(), workers, h, m, s)

	return out, nil
}
