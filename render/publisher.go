package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/turnpath/internal/logging"
	"github.com/katalvlaran/turnpath/search"
)

// Sentinel errors returned by the render package.
var (
	// ErrBadPublication indicates a path index outside the point slice.
	ErrBadPublication = errors.New("render: path index out of range")

	// ErrNoDir indicates an empty output directory.
	ErrNoDir = errors.New("render: output directory is required")
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1080
	DefaultHeight = 720
)

// FilePublisher writes every publication to a directory. It is safe for
// sequential use; search serializes its Publish calls.
type FilePublisher struct {
	dir     string
	logger  *slog.Logger
	limiter *rate.Limiter
	width   int
	height  int
}

// Option configures a FilePublisher.
type Option func(*FilePublisher)

// WithLogger installs a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *FilePublisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRenderInterval limits intermediate SVG renders to one per interval.
// Zero renders every publication. The final result is always rendered.
func WithRenderInterval(d time.Duration) Option {
	return func(p *FilePublisher) {
		if d <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		p.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithCanvas sets the SVG canvas size.
func WithCanvas(w, h int) Option {
	return func(p *FilePublisher) {
		if w > 2*margin && h > 2*margin {
			p.width, p.height = w, h
		}
	}
}

// NewFilePublisher creates dir if needed and returns a publisher writing into it.
func NewFilePublisher(dir string, opts ...Option) (*FilePublisher, error) {
	if dir == "" {
		return nil, ErrNoDir
	}
	p := &FilePublisher{
		dir:     dir,
		logger:  logging.Discard(),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return p, nil
}

// Publish implements search.Publisher.
func (p *FilePublisher) Publish(ctx context.Context, pub search.Publication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := NewDocument(pub)
	if err != nil {
		return err
	}
	name := fileStem(pub.Label)

	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	yamlPath := filepath.Join(p.dir, name+".yaml")
	if err = writeAtomic(yamlPath, data); err != nil {
		p.logger.Warn("write failed", slog.String("file", yamlPath), slog.Any("err", err))
		return err
	}

	if !pub.Final && !p.limiter.Allow() {
		return nil
	}
	var buf bytes.Buffer
	title := fmt.Sprintf("%s  length=%.3f", pub.Label, pub.Length)
	WriteSVG(&buf, pub.Points, pub.Path, title, p.width, p.height)
	svgPath := filepath.Join(p.dir, name+".svg")
	if err = writeAtomic(svgPath, buf.Bytes()); err != nil {
		p.logger.Warn("write failed", slog.String("file", svgPath), slog.Any("err", err))
		return err
	}
	p.logger.Debug("rendered", slog.String("file", svgPath), slog.Bool("final", pub.Final))

	return nil
}

// fileStem turns a label into a safe file name.
func fileStem(label string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
	stem = strings.Trim(stem, ".")
	if stem == "" {
		return "turnpath"
	}

	return stem
}

// writeAtomic replaces path with data through a temporary file in the same
// directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("render: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("render: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("render: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

var _ search.Publisher = (*FilePublisher)(nil)
