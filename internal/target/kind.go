package target

import "energymodel-translator/internal/common"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the concrete class of a target object.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindStandardOpaqueMaterial
	KindMasslessOpaqueMaterial
	KindGas
	KindGasMixture
	KindSimpleGlazing
	KindStandardGlazing
	KindBlind
	KindShade
	KindConstruction
	KindConstructionAirBoundary
	KindScheduleTypeLimits
	KindScheduleRuleset
	KindScheduleDay
	KindSurface
	KindSubSurface
	KindIdealLoadsAirSystem

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Category returns the lookup category objects of this kind are found under.
func (k Kind) Category() Category {
	switch k {
	case KindStandardOpaqueMaterial, KindMasslessOpaqueMaterial, KindGas, KindGasMixture,
		KindSimpleGlazing, KindStandardGlazing, KindBlind, KindShade:
		return CategoryMaterial
	case KindConstruction, KindConstructionAirBoundary:
		return CategoryConstruction
	case KindScheduleTypeLimits:
		return CategoryScheduleTypeLimit
	case KindScheduleRuleset:
		return CategorySchedule
	case KindScheduleDay:
		return CategoryScheduleDay
	case KindSurface:
		return CategorySurface
	case KindSubSurface:
		return CategorySubSurface
	case KindIdealLoadsAirSystem:
		return CategoryHVAC
	default:
		return CategoryInvalid
	}
}

// Category groups kinds that share one name space for lookups: a
// construction asks for "a material named X" whatever its concrete kind.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryMaterial
	CategoryConstruction
	CategoryScheduleTypeLimit
	CategorySchedule
	CategoryScheduleDay
	CategorySurface
	CategorySubSurface
	CategoryHVAC
)

var categoryNames = map[Category]string{
	CategoryMaterial:          "material",
	CategoryConstruction:      "construction",
	CategoryScheduleTypeLimit: "schedule_type_limit",
	CategorySchedule:          "schedule",
	CategoryScheduleDay:       "schedule_day",
	CategorySurface:           "surface",
	CategorySubSurface:        "sub_surface",
	CategoryHVAC:              "hvac",
}

// String returns the name used for the category in schema documents.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return common.UnknownStr
}

// ParseCategory converts a schema category name into a Category.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if name == s {
			return c, true
		}
	}

	return CategoryInvalid, false
}
