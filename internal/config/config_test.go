package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "bmi_data.db", cfg.DB.Path)
	assert.Equal(t, "bmi_trend.png", cfg.Chart.Output)
	assert.Equal(t, 128, cfg.Chart.Width)
	assert.Equal(t, 64, cfg.Chart.Height)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /tmp/history.db
chart:
  width: 200
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/history.db", cfg.DB.Path)
	assert.Equal(t, 200, cfg.Chart.Width)
	assert.Equal(t, 64, cfg.Chart.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bmi.yaml"), []byte("chart:\n  output: trend.png\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "trend.png", cfg.Chart.Output)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BMI_DB_PATH", "env.db")
	t.Setenv("BMI_CHART_HEIGHT", "96")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.DB.Path)
	assert.Equal(t, 96, cfg.Chart.Height)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsSmallChart(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BMI_CHART_WIDTH", "16")

	_, err := Load("")
	assert.ErrorContains(t, err, "below the 64x32 minimum")
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Config{
		DB:    DBConfig{Path: "x.db"},
		Chart: ChartConfig{Output: "x.png", Width: 64, Height: 32},
		Log:   LogConfig{Level: "loud"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Log.Level = "INFO"
	assert.NoError(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "debug"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
