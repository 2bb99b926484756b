package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics

	d.AddWarning("duplicate_name", "defined twice", "EnergyMaterial:Mat A", "name")
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: "note", Message: "informational"})
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	var other Diagnostics
	other.AddError("out_of_range", "thickness must be > 0", "", "thickness")
	other.Add(Diagnostic{Severity: DiagnosticWarning, Code: "unknown_field", Message: "field \"r_valu\" is not declared"})

	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, 4, d.Len())
	assert.EqualError(t, d.Error(), "thickness: [out_of_range] thickness must be > 0")
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "schema has no types"},
			want: "schema has no types",
		},
		{
			name: "entity only",
			diag: Diagnostic{Code: "duplicate_name", Message: "defined twice", Entity: "EnergyMaterial:Brick"},
			want: "[EnergyMaterial:Brick] [duplicate_name] defined twice",
		},
		{
			name: "full",
			diag: Diagnostic{
				Code:        "invalid_enum",
				Message:     "\"Rugh\" is not allowed",
				Entity:      "EnergyMaterial:Brick",
				FieldPath:   "roughness",
				Suggestions: []string{"Rough"},
			},
			want: `[EnergyMaterial:Brick] roughness: [invalid_enum] "Rugh" is not allowed (did you mean "Rough"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
