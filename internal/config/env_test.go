package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"LVBARS_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LVBARS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, LoadDotEnv(""))
}

func TestLoadChartDefaults(t *testing.T) {
	cfg, err := LoadChart(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Count)
	assert.Equal(t, int64(13), cfg.Seed)
	assert.Equal(t, 160, cfg.Height)
	assert.Equal(t, 8, cfg.MinBarHeight)
	assert.Equal(t, 0, cfg.MaxBarHeight)
	assert.Empty(t, cfg.Values)
	assert.Equal(t, FormatValues, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadChartFromEnv(t *testing.T) {
	t.Setenv("LVBARS_SEED", "-42")
	t.Setenv("LVBARS_VALUES", "3,6,2.5")
	t.Setenv("LVBARS_FORMAT", FormatSVG)

	cfg, err := LoadChart("")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), cfg.Seed)
	assert.Equal(t, []float64{3, 6, 2.5}, cfg.Values)
	assert.Equal(t, FormatSVG, cfg.Format)
}

func TestLoadChartDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LVBARS_TEST_DOTENV_COUNT=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LVBARS_TEST_DOTENV_COUNT") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "7", os.Getenv("LVBARS_TEST_DOTENV_COUNT"))
}

func TestChartValidate(t *testing.T) {
	cfg := Chart{Format: "png"}
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownFormat)

	cfg = Chart{Format: FormatHTML, Count: -1}
	assert.Error(t, cfg.Validate())

	cfg = Chart{Format: FormatSparkline}
	assert.NoError(t, cfg.Validate())
}
