package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("energymodel-translator", flag.ContinueOnError)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Input:     "-",
		LogLevel:  "info",
		LogFormat: "console",
		MaxDepth:  32,
	}, cfg)
}

func TestParseConfig_EnvAndFlags(t *testing.T) {
	t.Setenv("ENERGYMODEL_SCHEMA", "custom.yaml")
	t.Setenv("ENERGYMODEL_LOG_LEVEL", "debug")
	t.Setenv("ENERGYMODEL_MAX_DEPTH", "8")

	cfg, err := ParseConfig(newFlagSet(), []string{"-input", "model.json", "-log-level", "warn", "-dump"})
	require.NoError(t, err)

	assert.Equal(t, "model.json", cfg.Input)
	assert.Equal(t, "custom.yaml", cfg.Schema)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.True(t, cfg.Dump)
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("ENERGYMODEL_MAX_DEPTH", "deep")

		_, err := ParseConfig(newFlagSet(), nil)
		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-max-depth", "-1"})
		require.ErrorContains(t, err, "must not be negative")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-input", ""})
		require.ErrorContains(t, err, "input is required")
	})

	t.Run("unknown flag", func(t *testing.T) {
		fs := newFlagSet()
		fs.SetOutput(io.Discard)

		_, err := ParseConfig(fs, []string{"-verbose"})
		require.Error(t, err)
	})
}
