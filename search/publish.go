package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/katalvlaran/turnpath/geom"
)

// publisher forwards incumbents to the user's Publisher outside the incumbent
// lock. Calls are serialized by mu and each one publishes the newest
// incumbent; a notification whose version has already been covered is
// dropped, so the published lengths are strictly decreasing.
type publisher struct {
	sink   Publisher
	inc    *Incumbent
	points []geom.Point
	label  string
	logger *slog.Logger

	mu   sync.Mutex
	last uint64 // last published incumbent version
	errs []error
}

func newPublisher(sink Publisher, inc *Incumbent, points []geom.Point, label string, logger *slog.Logger) *publisher {
	return &publisher{sink: sink, inc: inc, points: points, label: label, logger: logger}
}

// improved is called by the worker whose TryImprove produced version.
func (p *publisher) improved(ctx context.Context, version uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if version <= p.last {
		return
	}
	path, length, current := p.inc.snapshot()
	p.last = current
	p.logger.Debug("incumbent improved", slog.Float64("length", length), slog.Uint64("version", current))
	p.send(ctx, Publication{Points: p.points, Path: path, Length: length, Label: p.label})
}

// final publishes the result of a finished run once more with Final set.
func (p *publisher) final(ctx context.Context, path []int, length float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.send(ctx, Publication{Points: p.points, Path: path, Length: length, Label: p.label, Final: true})
}

func (p *publisher) send(ctx context.Context, pub Publication) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Publish(ctx, pub); err != nil {
		p.errs = append(p.errs, err)
	}
}

// err joins every failure reported by the sink.
func (p *publisher) err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return errors.Join(p.errs...)
}
