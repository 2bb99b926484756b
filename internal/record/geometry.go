package record

const FieldConstruction = "properties.energy.construction"

// Point is an [x, y, z] vertex.
type Point [3]float64

// Face3D is a planar boundary loop.
type Face3D struct {
	Type     string    `json:"type,omitempty"`
	Boundary []Point   `json:"boundary"`
	Holes    [][]Point `json:"holes,omitempty"`
}

// BoundaryCondition describes what lies on the outside of a face.
type BoundaryCondition struct {
	Type         string    `json:"type"`
	SunExposure  *bool     `json:"sun_exposure,omitempty"`
	WindExposure *bool     `json:"wind_exposure,omitempty"`
	ViewFactor   *Quantity `json:"view_factor,omitempty"`
	// BoundaryConditionObjects names the adjacent sub-face, face and room of a
	// Surface boundary condition, in that order.
	BoundaryConditionObjects []string `json:"boundary_condition_objects,omitempty"`
}

// Boundary condition types.
const (
	BoundaryOutdoors  = "Outdoors"
	BoundaryGround    = "Ground"
	BoundaryAdiabatic = "Adiabatic"
	BoundarySurface   = "Surface"
)

// EnergyProperties holds the energy-specific properties of a face, aperture or door.
type EnergyProperties struct {
	Type   string               `json:"type,omitempty"`
	Energy *EnergyPropertiesSet `json:"energy,omitempty"`
}

type EnergyPropertiesSet struct {
	Type         string  `json:"type,omitempty"`
	Construction *string `json:"construction,omitempty"`
}

// ConstructionName returns the explicitly assigned construction, if any.
func (p *EnergyProperties) ConstructionName() *string {
	if p == nil || p.Energy == nil {
		return nil
	}

	return p.Energy.Construction
}

// Face is a planar surface with optional apertures and doors.
type Face struct {
	Header

	Geometry          Face3D            `json:"geometry"`
	FaceType          *string           `json:"face_type,omitempty"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	Properties        *EnergyProperties `json:"properties,omitempty"`
	Apertures         []*Aperture       `json:"apertures,omitempty"`
	Doors             []*Door           `json:"doors,omitempty"`
}

func (f *Face) References() []Reference {
	return optionalRef(nil, FieldConstruction, f.Properties.ConstructionName())
}

// Children returns the apertures followed by the doors.
func (f *Face) Children() []Record {
	out := make([]Record, 0, len(f.Apertures)+len(f.Doors))
	for _, a := range f.Apertures {
		out = append(out, a)
	}

	for _, d := range f.Doors {
		out = append(out, d)
	}

	return out
}

// Aperture is a window in a face.
type Aperture struct {
	Header

	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	IsOperable        *bool             `json:"is_operable,omitempty"`
	Properties        *EnergyProperties `json:"properties,omitempty"`
}

func (a *Aperture) References() []Reference {
	return optionalRef(nil, FieldConstruction, a.Properties.ConstructionName())
}

func (a *Aperture) Children() []Record { return nil }

// Door is an opaque or glass door in a face.
type Door struct {
	Header

	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	IsGlass           *bool             `json:"is_glass,omitempty"`
	Properties        *EnergyProperties `json:"properties,omitempty"`
}

func (d *Door) References() []Reference {
	return optionalRef(nil, FieldConstruction, d.Properties.ConstructionName())
}

func (d *Door) Children() []Record { return nil }
