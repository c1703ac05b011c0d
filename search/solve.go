package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/turnpath/geom"
	"github.com/katalvlaran/turnpath/metric"
)

// Solve precomputes the metric tables for points and runs the search.
//
// Errors are reserved for invalid input (non-finite coordinates, bad options).
// "No solution", budget exhaustion and cancellation are reported through
// Result.Found and Result.Status.
func Solve(ctx context.Context, points []geom.Point, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	tbl, err := metric.Build(points, metric.WithLogger(o.Logger))
	if err != nil {
		return Result{}, err
	}

	return run(ctx, tbl, o)
}

// Run searches over precomputed tables. The tables are only read, so several
// runs may share them.
func Run(ctx context.Context, tbl *metric.Table, opts ...Option) (Result, error) {
	if tbl == nil || tbl.Dist == nil || tbl.Adj == nil {
		return Result{}, ErrNilTable
	}
	if n := tbl.Size(); tbl.Dist.Size() != n || tbl.Adj.Size() != n {
		return Result{}, fmt.Errorf("points=%d dist=%d adj=%d: %w",
			n, tbl.Dist.Size(), tbl.Adj.Size(), ErrTableMismatch)
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return run(ctx, tbl, o)
}

// runner holds the shared state of one run.
type runner struct {
	queue  *WorkQueue
	engine *engine
	budget *budget

	// open[s] counts the tasks of seed s that are queued or being expanded.
	open      []atomic.Int64
	seedsDone atomic.Int64
}

func newRunner(seeds []Task, eng *engine, maxIterations int64) *runner {
	r := &runner{
		queue:  NewWorkQueue(seeds),
		engine: eng,
		budget: &budget{max: maxIterations},
		open:   make([]atomic.Int64, len(seeds)),
	}
	for i := range r.open {
		r.open[i].Store(1)
	}

	return r
}

// settle replaces one finished task of seed by its children. It must run
// before the children are pushed so that the counter cannot reach zero early.
func (r *runner) settle(seed, children int) {
	if r.open[seed].Add(int64(children-1)) == 0 {
		r.seedsDone.Add(1)
	}
}

func run(ctx context.Context, tbl *metric.Table, o Options) (Result, error) {
	var (
		start  = time.Now()
		runID  = uuid.NewString()
		label  = o.Label
		logger = o.Logger.With(slog.String("run_id", runID))
	)
	if label == "" {
		label = runID
	}

	ins, err := newInstruments(o.MeterProvider)
	if err != nil {
		return Result{}, fmt.Errorf("search: metrics: %w", err)
	}
	inc := NewIncumbent()
	pub := newPublisher(o.Publisher, inc, tbl.Points, label, logger)
	eng, err := newEngine(tbl, inc, pub, ins)
	if err != nil {
		return Result{}, err
	}

	seeds := StartPaths(tbl)
	r := newRunner(seeds, eng, o.MaxIterations)
	logger.Info("search started",
		slog.Int("points", tbl.Size()),
		slog.Int("seeds", len(seeds)),
		slog.Int("workers", o.Workers),
		slog.Int64("max_iterations", o.MaxIterations),
		slog.Duration("time_limit", o.TimeLimit),
	)

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if o.TimeLimit > 0 {
		runCtx, cancel = context.WithTimeout(ctx, o.TimeLimit)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	go func() {
		<-gctx.Done()
		r.queue.Close()
	}()
	stopProgress := r.startProgress(o, inc, start)

	var i int
	for i = 0; i < o.Workers; i++ {
		g.Go(func() error { return r.work(gctx) })
	}
	werr := g.Wait()
	stopProgress()

	res := Result{
		Length:     math.Inf(1),
		Status:     classify(ctx, werr),
		Iterations: eng.expanded.Load(),
		Seeds:      len(seeds),
		SeedsDone:  r.seedsDone.Load(),
		RunID:      runID,
	}

	path, length, found := inc.Best()
	if found {
		if err = ValidatePath(path, tbl.Size()); err != nil {
			return Result{}, err
		}
		res.Path, res.Length, res.Found = path, length, true
		pub.final(context.WithoutCancel(ctx), path, length)
	}
	_, _, version := inc.snapshot()
	res.Improvements = int(version)
	res.PublishErr = pub.err()
	res.Elapsed = time.Since(start)

	logger.Info("search finished",
		slog.String("status", res.Status.String()),
		slog.Bool("found", res.Found),
		slog.Float64("length", res.Length),
		slog.Int64("iterations", res.Iterations),
		slog.Int("improvements", res.Improvements),
		slog.Int64("seeds_done", res.SeedsDone),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// work is the loop of one worker: pop, expand, push, done.
func (r *runner) work(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		task, ok := r.queue.Pop()
		if !ok {
			// Drained, or closed because the group context ended.
			return ctx.Err()
		}
		if !r.budget.take() {
			r.queue.Done()

			return errBudgetExhausted
		}
		children := r.engine.Expand(ctx, task)
		r.settle(task.seed, len(children))
		r.queue.Push(children...)
		r.queue.Done()
	}
}

// classify maps the first worker error to a Status.
func classify(parent context.Context, err error) Status {
	switch {
	case err == nil:
		return StatusExhausted
	case parent.Err() != nil:
		return StatusCanceled
	case errors.Is(err, errBudgetExhausted), errors.Is(err, context.DeadlineExceeded):
		return StatusBudgetExhausted
	default:
		return StatusCanceled
	}
}

// startProgress launches the OnProgress ticker and returns its stop function.
func (r *runner) startProgress(o Options, inc *Incumbent, start time.Time) func() {
	if o.OnProgress == nil || o.ProgressInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(o.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				best, found := inc.Bound()
				o.OnProgress(Progress{
					Iterations: r.engine.expanded.Load(),
					Pending:    r.queue.Len(),
					Seeds:      len(r.open),
					SeedsDone:  r.seedsDone.Load(),
					BestLength: best,
					Found:      found,
					Elapsed:    time.Since(start),
				})
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
