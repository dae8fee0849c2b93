// Package bench times decode strategies against a fixed corpus.
//
// Each round decodes the corpus a fixed number of times with every selected strategy, one batch
// per strategy, and reports the wall time of each batch. Any decode failure aborts the run, a
// timing is only meaningful if every iteration decoded successfully.
package bench

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// sink keeps decode results observable so batches can't be optimized away.
var sink atomic.Uint64

// Result is the timing of one batch.
type Result struct {
	Strategy   string
	Round      int
	Iterations int
	Bytes      int // Corpus size.
	Elapsed    time.Duration
}

// Throughput returns the decoded megabytes per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Bytes) * float64(r.Iterations) / 1e6 / r.Elapsed.Seconds()
}

// PerSecond returns the decodes per second.
func (r Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Iterations) / r.Elapsed.Seconds()
}

// Reporter receives results as batches complete.
type Reporter interface {
	Report(res Result)
	EndRound(round int)
}

// Runner runs benchmark rounds.
type Runner struct {
	cfg    Config
	log    logrus.FieldLogger
	report Reporter
}

// NewRunner creates a new Runner. If log is nil, nothing is logged.
func NewRunner(cfg Config, log logrus.FieldLogger, report Reporter) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Runner{cfg: cfg, log: log, report: report}
}

// Run times strategies over input until the configured rounds are done, or forever if Rounds is 0.
// It returns ctx.Err() when ctx is cancelled between batches, and the first decode error otherwise.
func (r *Runner) Run(ctx context.Context, input []byte, strategies []Named) error {
	if len(strategies) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no strategies to run")
	}

	if r.cfg.Warmup > 0 {
		for _, s := range strategies {
			r.log.WithField("strategy", s.Name).Debugf("warming up (%d iterations)", r.cfg.Warmup)

			if err := decodeN(ctx, s, input, 0, r.cfg.Warmup); err != nil {
				return errors.Wrap(err, "warmup")
			}
		}
	}

	for round := 1; r.cfg.Rounds == 0 || round <= r.cfg.Rounds; round++ {
		for _, s := range strategies {
			if err := ctx.Err(); err != nil {
				return err
			}

			elapsed, err := r.batch(ctx, input, s)
			if err != nil {
				return err
			}

			res := Result{
				Strategy:   s.Name,
				Round:      round,
				Iterations: r.cfg.Iterations,
				Bytes:      len(input),
				Elapsed:    elapsed,
			}

			r.log.WithFields(logrus.Fields{
				"strategy": res.Strategy,
				"round":    res.Round,
				"elapsed":  res.Elapsed,
				"mb_per_s": res.Throughput(),
			}).Debug("batch done")

			r.report.Report(res)
		}

		r.report.EndRound(round)
	}

	return nil
}

// batch times one batch of s, split across the configured workers.
func (r *Runner) batch(ctx context.Context, input []byte, s Named) (time.Duration, error) {
	workers := min(r.cfg.Workers, r.cfg.Iterations)

	start := time.Now()

	if workers <= 1 {
		err := decodeN(ctx, s, input, 0, r.cfg.Iterations)

		return time.Since(start), err
	}

	g, gctx := errgroup.WithContext(ctx)

	per, extra := r.cfg.Iterations/workers, r.cfg.Iterations%workers
	first := 0

	for w := range workers {
		n := per
		if w < extra {
			n++
		}

		offset := first

		g.Go(func() error {
			return decodeN(gctx, s, input, offset, n)
		})

		first += n
	}

	err := g.Wait()

	return time.Since(start), err
}

// cancelCheckEvery is how many decodes run between two checks of the context.
const cancelCheckEvery = 64

// decodeN decodes input n times with s, first is the index of the first iteration for errors.
// It stops early with ctx.Err() once ctx is done, e.g. when another worker failed.
func decodeN(ctx context.Context, s Named, input []byte, first, n int) error {
	var acc uint64

	for i := range n {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		res, err := s.Decode(input)
		if err != nil {
			return errors.Wrapf(err, "strategy %s failed at iteration %d", s.Name, first+i)
		}

		acc += uint64(res.Payload)
	}

	sink.Add(acc)

	return nil
}
