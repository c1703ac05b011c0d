package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnpath/internal/config"
	"github.com/katalvlaran/turnpath/internal/logging"
	"github.com/katalvlaran/turnpath/pointset"
	"github.com/katalvlaran/turnpath/render"
	"github.com/katalvlaran/turnpath/search"
)

// errNoInput is returned when neither --input nor the config names a file.
var errNoInput = errors.New("no input file (use --input)")

// Execute runs the root command with SIGINT/SIGTERM cancelling the search.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var configPath string
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "turnpath --input FILE [duration]",
		Short: "Shortest point path without turns sharper than 90°",
		Long: `turnpath reads one "x y" point per line and searches for the shortest
path visiting every point once in which each internal turn is at least 90°.

Every improvement is written to <out-dir>/<label>.yaml and drawn to
<out-dir>/<label>.svg. The search stops when the space is exhausted, when a
budget runs out or on SIGINT; the best path found so far is reported.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, configPath)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringP("input", "p", d.Input, "point file, one \"x y\" per line")
	f.Duration("time-limit", d.TimeLimit, "wall-clock limit, 0 = none")
	f.Int64("max-iterations", d.MaxIterations, "expansion limit, -1 = none")
	f.Int("workers", d.Workers, "worker goroutines")
	f.String("out-dir", d.OutDir, "directory for YAML and SVG output")
	f.String("label", d.Label, "output file stem (default: input file name)")
	f.Duration("progress-interval", d.ProgressInterval, "progress log period, 0 = off")
	f.Duration("render-interval", d.RenderInterval, "minimum time between intermediate SVG renders")
	f.Int("canvas-width", d.CanvasWidth, "SVG width in pixels")
	f.Int("canvas-height", d.CanvasHeight, "SVG height in pixels")
	f.String("log-level", d.Log.Level, "debug, info, warn or error")
	f.String("log-format", d.Log.Format, "text or json")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, configPath string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 && !cmd.Flags().Changed("time-limit") {
		if cfg.TimeLimit, err = parseDuration(args[0]); err != nil {
			return err
		}
	}
	if cfg.Input == "" {
		return errNoInput
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	pts, err := pointset.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("points loaded", slog.String("file", cfg.Input), slog.Int("count", len(pts)))

	label := cfg.Label
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
	}
	pub, err := render.NewFilePublisher(cfg.OutDir,
		render.WithLogger(logger),
		render.WithRenderInterval(cfg.RenderInterval),
		render.WithCanvas(cfg.CanvasWidth, cfg.CanvasHeight))
	if err != nil {
		return err
	}

	res, err := search.Solve(cmd.Context(), pts,
		search.WithWorkers(cfg.Workers),
		search.WithMaxIterations(cfg.MaxIterations),
		search.WithTimeLimit(cfg.TimeLimit),
		search.WithLabel(label),
		search.WithPublisher(pub),
		search.WithLogger(logger),
		search.WithProgress(cfg.ProgressInterval, func(p search.Progress) {
			logger.Info("progress",
				slog.Int64("iterations", p.Iterations),
				slog.Int("pending", p.Pending),
				slog.String("seeds", fmt.Sprintf("%d/%d", p.SeedsDone, p.Seeds)),
				slog.Bool("found", p.Found),
				slog.Float64("best", p.BestLength),
				slog.Duration("elapsed", p.Elapsed.Round(time.Millisecond)))
		}),
	)
	if err != nil {
		return err
	}
	if res.PublishErr != nil {
		logger.Warn("some results were not written", slog.Any("err", res.PublishErr))
	}

	return printResult(cmd.OutOrStdout(), res, filepath.Join(cfg.OutDir, label))
}

func printResult(w io.Writer, res search.Result, stem string) error {
	if !res.Found {
		_, err := fmt.Fprintf(w, "no solution (%s after %d iterations)\n", res.Status, res.Iterations)
		return err
	}
	_, err := fmt.Fprintf(w, "length %.6f (%s, optimal=%t)\npath %s\nwritten %s.yaml %s.svg\n",
		res.Length, res.Status, res.Optimal(), formatPath(res.Path), stem, stem)

	return err
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// parseDuration accepts Go durations ("90s") and plain seconds ("90", "1.5").
func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("duration %q: want e.g. 30s or 30", s)
	}

	return time.Duration(secs * float64(time.Second)), nil
}
