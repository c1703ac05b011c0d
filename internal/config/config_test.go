package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turnpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, &want, cfg)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, int64(-1), cfg.MaxIterations)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: points.txt
time_limit: 90s
max_iterations: 1000
workers: 3
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "points.txt", cfg.Input)
	assert.Equal(t, 90*time.Second, cfg.TimeLimit)
	assert.Equal(t, int64(1000), cfg.MaxIterations)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "out", cfg.OutDir)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "workers: 3\nlabel: from-file\nout_dir: file-out\n")
	t.Setenv("TURNPATH_WORKERS", "5")
	t.Setenv("TURNPATH_LABEL", "from-env")
	t.Setenv("TURNPATH_LOG_LEVEL", "warn")
	t.Setenv("TURNPATH_CANVAS_HEIGHT", "480")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("workers", 1, "")
	flags.String("label", "", "")
	flags.String("out-dir", "flag-default", "")
	require.NoError(t, flags.Parse([]string{"--workers=7"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers, "explicit flag wins")
	assert.Equal(t, "from-env", cfg.Label, "env beats file and unset flag")
	assert.Equal(t, "file-out", cfg.OutDir, "file beats unset flag default")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 480, cfg.CanvasHeight)
	assert.Equal(t, 1080, cfg.CanvasWidth)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "workers: 0\nmax_iterations: -5\n")
	_, err := config.Load(path, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "workers=0")
	assert.Contains(t, err.Error(), "max_iterations=-5")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative time limit", func(c *config.Config) { c.TimeLimit = -time.Second }},
		{"negative progress interval", func(c *config.Config) { c.ProgressInterval = -1 }},
		{"negative render interval", func(c *config.Config) { c.RenderInterval = -1 }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"narrow canvas", func(c *config.Config) { c.CanvasWidth = config.MinCanvas - 1 }},
		{"flat canvas", func(c *config.Config) { c.CanvasHeight = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
}
