package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/record"
	"energymodel-translator/internal/schema"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()

	s, err := schema.Default()
	require.NoError(t, err)

	return New(s)
}

func byPath(list []diagnostic.Diagnostic) map[string]diagnostic.Diagnostic {
	out := make(map[string]diagnostic.Diagnostic, len(list))
	for _, d := range list {
		out[d.FieldPath] = d
	}

	return out
}

func TestValidate_ValidMaterial(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate([]byte(`{"type": "EnergyMaterial", "name": "Concrete", "thickness": 0.2, "conductivity": 1.7, "density": 2400, "specific_heat": 840}`), "EnergyMaterial")
	require.NoError(t, err)
	assert.True(t, res.IsValid(), res.ErrorMessages())
	assert.Empty(t, res.Warnings)
}

func TestValidate_FieldErrors(t *testing.T) {
	v := newValidator(t)

	raw := `{
		"type": "EnergyMaterial", "name": "Bad",
		"thickness": 0, "conductivity": "high", "density": 2400,
		"roughness": "MediumRuff", "thermal_absorptance": 1.0
	}`

	res, err := v.Validate([]byte(raw), "EnergyMaterial")
	require.NoError(t, err)

	errs := byPath(res.Errors)
	assert.Equal(t, CodeOutOfRange, errs["thickness"].Code)
	assert.Equal(t, CodeWrongKind, errs["conductivity"].Code)
	assert.Equal(t, CodeRequiredMissing, errs["specific_heat"].Code)
	assert.Equal(t, CodeOutOfRange, errs["thermal_absorptance"].Code)

	rough := errs["roughness"]
	assert.Equal(t, CodeInvalidEnum, rough.Code)
	assert.Contains(t, rough.Suggestions, "MediumRough")

	assert.Equal(t, "EnergyMaterial:Bad", rough.Entity)
	assert.Len(t, res.Errors, 5)
}

func TestValidate_TypeMismatchAndUnknownFields(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate([]byte(`{"type": "EnergyWindowMaterialGas", "name": "Gap", "thicknes": 0.01}`), "EnergyMaterialNoMass")
	require.NoError(t, err)

	errs := byPath(res.Errors)
	assert.Equal(t, CodeTypeMismatch, errs["type"].Code)
	assert.Equal(t, CodeRequiredMissing, errs["r_value"].Code)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeUnknownField, res.Warnings[0].Code)
	assert.Equal(t, "thicknes", res.Warnings[0].FieldPath)
}

func TestValidate_NullDefaultIsOptional(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate([]byte(`{"type": "EnergyWindowMaterialGlazing", "name": "Clear", "solar_reflectance_back": null}`), "EnergyWindowMaterialGlazing")
	require.NoError(t, err)
	assert.True(t, res.IsValid(), res.ErrorMessages())
}

func TestValidate_NestedFace(t *testing.T) {
	v := newValidator(t)

	raw := `{
		"type": "Face", "name": "Wall 1", "face_type": "Wall",
		"geometry": {"type": "Face3D", "boundary": [[0,0,0],[10,0,0],[10,0,3],[0,0,3]]},
		"boundary_condition": {"type": "Outdoors", "view_factor": "autocalc"},
		"apertures": [
			{"type": "Aperture", "name": "Window 1",
			 "geometry": {"boundary": [[1,0,1],[2,0,1]]},
			 "boundary_condition": {"type": "Outdoors", "view_factor": 1.5}},
			{"type": "Door", "name": "Window 2",
			 "geometry": {"boundary": [[1,0,1],[2,0,1],[2,"x",2]]},
			 "boundary_condition": {"type": "Outdoors"}}
		]
	}`

	res, err := v.Validate([]byte(raw), "Face")
	require.NoError(t, err)

	errs := byPath(res.Errors)
	assert.Equal(t, CodeInvalidEnum, errs["boundary_condition.view_factor"].Code)
	assert.Equal(t, CodeItemCount, errs["apertures[0].geometry.boundary"].Code)
	assert.Equal(t, CodeOutOfRange, errs["apertures[0].boundary_condition.view_factor"].Code)
	assert.Equal(t, CodeTypeMismatch, errs["apertures[1].type"].Code)
	assert.Equal(t, CodeInvalidPoint, errs["apertures[1].geometry.boundary[2]"].Code)
	assert.Len(t, res.Errors, 5)
}

func TestValidate_Lists(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate([]byte(`{"type": "OpaqueConstructionAbridged", "name": "Empty", "layers": []}`), "OpaqueConstructionAbridged")
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeItemCount, res.Errors[0].Code)

	res, err = v.Validate([]byte(`{"type": "EnergyWindowMaterialGasMixture", "name": "Mix", "gas_types": ["Air", "Neon"], "gas_fractions": [0.5, 1.5]}`), "EnergyWindowMaterialGasMixture")
	require.NoError(t, err)

	errs := byPath(res.Errors)
	assert.Equal(t, CodeInvalidEnum, errs["gas_types[1]"].Code)
	assert.Equal(t, CodeOutOfRange, errs["gas_fractions[1]"].Code)
	assert.Len(t, res.Errors, 2)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	v := newValidator(t)

	raw := []byte(`{"type": "EnergyWindowMaterialGas", "name": "Gap"}`)
	before := string(raw)

	_, err := v.Validate(raw, "EnergyWindowMaterialGas")
	require.NoError(t, err)
	assert.Equal(t, before, string(raw))
}

func TestValidate_FatalErrors(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate([]byte(`{"type": `), "EnergyMaterial")
	require.ErrorIs(t, err, record.ErrMalformed)

	_, err = v.Validate([]byte(`[]`), "EnergyMaterial")
	require.ErrorIs(t, err, record.ErrMalformed)

	_, err = v.Validate([]byte(`{"type": "Zone", "name": "Z"}`), "Zone")
	require.ErrorIs(t, err, record.ErrUnknownType)
}
