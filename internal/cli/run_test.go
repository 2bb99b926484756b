package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"energymodel-translator/internal/config"
)

const input = `[
  {"type": "EnergyMaterial", "name": "Mat A", "thickness": 0.1, "conductivity": 1.2, "density": 2000, "specific_heat": 900},
  {"type": "OpaqueConstructionAbridged", "name": "Roof1", "layers": ["Mat A"]},
  {"type": "IdealAirSystemAbridged", "name": "Ideal", "heating_limit": "NoLimit"}
]`

func defaultConfig() config.Config {
	return config.Config{Input: "-", MaxDepth: 32}
}

func TestRun_Summary(t *testing.T) {
	var out bytes.Buffer

	err := Run(defaultConfig(), strings.NewReader(input), &out, zap.NewNop())
	require.NoError(t, err)

	var sum Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &sum))

	require.Len(t, sum.Objects, 3)
	assert.Equal(t, "StandardOpaqueMaterial", sum.Objects[0].Kind)
	assert.Equal(t, 0.1, sum.Objects[0].Attrs["Thickness"])
	assert.Equal(t, []string{"Mat A"}, sum.Objects[1].Layers)

	hvac := sum.Objects[2]
	assert.Equal(t, "NoLimit", hvac.Attrs["HeatingLimit"])
	assert.Equal(t, []string{"MaximumCoolingAirFlowRate", "MaximumTotalCoolingCapacity"}, hvac.Autosized)
	assert.Empty(t, sum.Failures)
}

func TestRun_FailuresAreReported(t *testing.T) {
	var out bytes.Buffer

	raw := `[{"type": "OpaqueConstructionAbridged", "name": "Roof1", "layers": ["Mat X"]}, {"type": "EnergyMaterialNoMass", "name": "Mat B", "r_value": 2}]`

	err := Run(defaultConfig(), strings.NewReader(raw), &out, zap.NewNop())
	require.ErrorContains(t, err, "1 of 2 records failed")

	var sum Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &sum))
	require.Len(t, sum.Failures, 1)
	assert.Equal(t, "[0]", sum.Failures[0].Path)
	assert.Contains(t, sum.Failures[0].Error, `unresolved reference "Mat X"`)
	assert.Len(t, sum.Objects, 1)
}

func TestRun_InputFileAndDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

	cfg := defaultConfig()
	cfg.Input = path
	cfg.Dump = true

	var out bytes.Buffer
	require.NoError(t, Run(cfg, nil, &out, zap.NewNop()))
	assert.Contains(t, out.String(), "memoryObject")
}

func TestRun_Errors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "missing.json")
	require.ErrorContains(t, Run(cfg, nil, &bytes.Buffer{}, zap.NewNop()), "read input")

	cfg = defaultConfig()
	cfg.Schema = filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(t, Run(cfg, strings.NewReader(input), &bytes.Buffer{}, zap.NewNop()))

	err := Run(defaultConfig(), strings.NewReader(`not json`), &bytes.Buffer{}, zap.NewNop())
	require.ErrorContains(t, err, "translate")
}
