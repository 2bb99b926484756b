package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
types:
  EnergyWindowMaterialGas:
    category: material
    fields:
      type: {kind: string}
      name: {kind: string}
      thickness: {kind: number, min: 0, exclusive_min: true, default: 0.0125}
      gas_type: {kind: enum, values: [Air, Argon], default: Air}
      note: {kind: string, default: null}
`

	s, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "1.0", s.Version)

	td, ok := s.Type("EnergyWindowMaterialGas")
	require.True(t, ok)
	assert.Equal(t, "EnergyWindowMaterialGas", td.Name)
	assert.Equal(t, "material", td.Category)
	assert.Equal(t, []string{"type", "name", "thickness", "gas_type", "note"}, td.Fields.Names())

	name, ok := td.Fields.Get("name")
	require.True(t, ok)
	assert.True(t, name.Required())

	thickness, ok := td.Fields.Get("thickness")
	require.True(t, ok)
	assert.False(t, thickness.Required())
	assert.Equal(t, 0.0125, thickness.Default.Value)
	require.NotNil(t, thickness.Min)
	assert.True(t, thickness.ExclusiveMin)

	note, ok := td.Fields.Get("note")
	require.True(t, ok)
	assert.False(t, note.Required())
	assert.Nil(t, note.Default.Value)
	assert.Equal(t, DefaultValue{Set: true}, note.Default)
	assert.Equal(t, DefaultValue{}, name.Default)
}

func TestParse_IntegerDefaultsBecomeFloats(t *testing.T) {
	s, err := Parse([]byte(`
types:
  EnergyWindowMaterialBlind:
    category: material
    fields:
      name: {kind: string}
      slat_angle: {kind: number, default: 45}
`))
	require.NoError(t, err)

	f, ok := s.Types["EnergyWindowMaterialBlind"].Field("slat_angle")
	require.True(t, ok)
	assert.Equal(t, 45.0, f.Default.Value)
}

func TestParse_AliasedNestedFields(t *testing.T) {
	s, err := Parse([]byte(`
types:
  Face:
    category: surface
    fields:
      name: {kind: string}
      boundary_condition: &bc
        kind: object
        fields:
          type: {kind: enum, values: [Outdoors, Ground]}
          sun_exposure: {kind: boolean, default: true}
  Door:
    category: sub_surface
    fields:
      name: {kind: string}
      boundary_condition: *bc
`))
	require.NoError(t, err)

	for _, typ := range []string{"Face", "Door"} {
		f, ok := s.Types[typ].Field("boundary_condition.sun_exposure")
		require.True(t, ok, typ)
		assert.Equal(t, true, f.Default.Value, typ)

		bcType, ok := s.Types[typ].Field("boundary_condition.type")
		require.True(t, ok, typ)
		assert.True(t, bcType.Required(), typ)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("types: [1, 2]"))
	require.Error(t, err)

	_, err = Parse([]byte(`
types:
  Face:
    category: surface
    fields: [name]
`))
	require.Error(t, err)

	_, err = Parse([]byte(`
types:
  Face:
    category: surface
    fields:
      name: string
`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types:\n  Face:\n    category: surface\n    fields:\n      name: {kind: string}\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Face"}, s.TypeNames())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	res := Validate(s)
	assert.True(t, res.IsValid(), res.ErrorMessages())

	for _, typ := range []string{
		"EnergyMaterial", "EnergyMaterialNoMass", "EnergyWindowMaterialGas",
		"EnergyWindowMaterialGasCustom", "EnergyWindowMaterialGasMixture",
		"EnergyWindowMaterialSimpleGlazSys", "EnergyWindowMaterialGlazing",
		"EnergyWindowMaterialBlind", "EnergyWindowMaterialShade",
		"OpaqueConstructionAbridged", "WindowConstructionAbridged",
		"AirBoundaryConstructionAbridged", "ScheduleTypeLimit", "ScheduleRulesetAbridged",
		"Face", "Aperture", "Door", "IdealAirSystemAbridged",
	} {
		_, ok := s.Type(typ)
		assert.True(t, ok, typ)
	}
}
