package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedDefaults(t *testing.T) *Defaults {
	t.Helper()

	s, err := Default()
	require.NoError(t, err)

	return NewDefaults(s)
}

func TestDefaultFor(t *testing.T) {
	d := embeddedDefaults(t)

	tests := []struct {
		typ, field string
		want       any
		ok         bool
	}{
		{"EnergyMaterial", "roughness", "MediumRough", true},
		{"EnergyMaterial", "thermal_absorptance", 0.9, true},
		{"EnergyMaterial", "thickness", nil, false},
		{"EnergyWindowMaterialGas", "thickness", 0.0125, true},
		{"EnergyWindowMaterialGas", "gas_type", "Air", true},
		{"EnergyWindowMaterialGlazing", "solar_reflectance_back", nil, false},
		{"EnergyWindowMaterialBlind", "slat_angle", 45.0, true},
		{"IdealAirSystemAbridged", "economizer_type", "DifferentialDryBulb", true},
		{"IdealAirSystemAbridged", "heating_air_temperature", 50.0, true},
		{"IdealAirSystemAbridged", "cooling_air_temperature", 13.0, true},
		{"IdealAirSystemAbridged", "heating_limit", "autosize", true},
		{"IdealAirSystemAbridged", "heating_availability", nil, false},
		{"Face", "boundary_condition.view_factor", "autocalculate", true},
		{"Face", "boundary_condition.sun_exposure", true, true},
		{"Face", "properties.energy.construction", nil, false},
		{"Face", "geometry.boundary", nil, false},
		{"Face", "no_such_field", nil, false},
		{"Zone", "name", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.field, func(t *testing.T) {
			got, ok := d.DefaultFor(tt.typ, tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_NullDefaultIsOptional(t *testing.T) {
	d := embeddedDefaults(t)

	f, ok := d.Lookup("EnergyWindowMaterialGlazing", "solar_reflectance_back")
	require.True(t, ok)
	assert.False(t, f.Required())

	f, ok = d.Lookup("EnergyWindowMaterialGlazing", "name")
	require.True(t, ok)
	assert.True(t, f.Required())

	cat, ok := d.Category("Aperture")
	require.True(t, ok)
	assert.Equal(t, "sub_surface", cat)
}
