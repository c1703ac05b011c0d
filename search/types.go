package search

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/turnpath/geom"
)

// Sentinel errors returned by the search package.
var (
	// ErrInvalidOptions indicates an out-of-range option value.
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrNilTable indicates that Run was called without precomputed tables.
	ErrNilTable = errors.New("search: nil metric table")

	// ErrTableMismatch indicates tables whose sizes disagree with the point count.
	ErrTableMismatch = errors.New("search: metric table size mismatch")

	// ErrInvalidPath indicates a path that is not a permutation of [0, N).
	ErrInvalidPath = errors.New("search: invalid path")

	// ErrInvalidDistance indicates a NaN or negative entry in the distance table.
	ErrInvalidDistance = errors.New("search: invalid distance")

	// ErrCrookedTurn indicates a path with an internal turn below 90°.
	ErrCrookedTurn = errors.New("search: turn below 90 degrees")

	// errBudgetExhausted stops the worker group once MaxIterations is spent.
	errBudgetExhausted = errors.New("search: iteration budget exhausted")
)

// Status tells why a run ended.
type Status int

const (
	// StatusExhausted means the queue drained: every admissible path was
	// either evaluated or pruned, so a found path is optimal.
	StatusExhausted Status = iota

	// StatusBudgetExhausted means MaxIterations or TimeLimit ran out first.
	StatusBudgetExhausted

	// StatusCanceled means the caller's context was cancelled.
	StatusCanceled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusExhausted:
		return "exhausted"
	case StatusBudgetExhausted:
		return "budget_exhausted"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search run.
type Result struct {
	Path         []int         // best path found; nil when !Found
	Length       float64       // total length of Path; +Inf when !Found
	Found        bool          // false is the explicit "no solution" signal
	Status       Status        // why the run ended
	Iterations   int64         // number of expanded tasks
	Improvements int           // accepted incumbent updates
	Seeds        int           // number of 3-point start paths
	SeedsDone    int64         // seeds whose whole subtree was expanded or pruned
	RunID        string        // unique id of this run
	Elapsed      time.Duration // wall-clock duration
	PublishErr   error         // joined publisher failures, if any
}

// Optimal reports whether Path is proven optimal.
func (r Result) Optimal() bool { return r.Found && r.Status == StatusExhausted }

// Progress is a periodic snapshot delivered to the OnProgress hook.
type Progress struct {
	Iterations int64
	Pending    int     // tasks waiting in the queue
	Seeds      int     // start paths of the run
	SeedsDone  int64   // start paths whose subtree is finished
	BestLength float64 // +Inf until the first complete path
	Found      bool
	Elapsed    time.Duration
}

// Publication carries one incumbent to the Publisher.
type Publication struct {
	Points []geom.Point // all input points
	Path   []int        // accepted path (a copy owned by the receiver)
	Length float64      // accepted length
	Label  string       // run label, used by sinks to name artefacts
	Final  bool         // true for the single post-run publication
}

// Publisher persists or renders incumbents. Implementations must be safe to
// call from any worker goroutine; calls are serialized by the search.
type Publisher interface {
	Publish(ctx context.Context, p Publication) error
}

// PublisherFunc adapts an ordinary function to Publisher.
type PublisherFunc func(ctx context.Context, p Publication) error

// Publish calls f(ctx, p).
func (f PublisherFunc) Publish(ctx context.Context, p Publication) error { return f(ctx, p) }
