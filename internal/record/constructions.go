package record

// Field paths of construction references.
const (
	FieldLayers            = "layers"
	FieldAirMixingSchedule = "air_mixing_schedule"
)

// OpaqueConstructionAbridged is an ordered stack of opaque material names,
// outside to inside.
type OpaqueConstructionAbridged struct {
	Header

	Layers []string `json:"layers"`
}

func (c *OpaqueConstructionAbridged) References() []Reference { return layerRefs(c.Layers) }
func (c *OpaqueConstructionAbridged) Children() []Record      { return nil }

// WindowConstructionAbridged is an ordered stack of glazing, gas and shading
// material names, outside to inside.
type WindowConstructionAbridged struct {
	Header

	Layers []string `json:"layers"`
}

func (c *WindowConstructionAbridged) References() []Reference { return layerRefs(c.Layers) }
func (c *WindowConstructionAbridged) Children() []Record      { return nil }

// AirBoundaryConstructionAbridged is the construction of a virtual wall that
// only exchanges air between two spaces.
type AirBoundaryConstructionAbridged struct {
	Header

	AirMixingPerArea  *float64 `json:"air_mixing_per_area,omitempty"`
	AirMixingSchedule *string  `json:"air_mixing_schedule,omitempty"`
}

func (c *AirBoundaryConstructionAbridged) References() []Reference {
	return optionalRef(nil, FieldAirMixingSchedule, c.AirMixingSchedule)
}

func (c *AirBoundaryConstructionAbridged) Children() []Record { return nil }

func layerRefs(layers []string) []Reference {
	refs := make([]Reference, 0, len(layers))
	for _, name := range layers {
		refs = append(refs, Reference{Field: FieldLayers, Name: name})
	}

	return refs
}
