package target

import "fmt"

// Attr names a settable facet of a target object.
type Attr string

// Opaque materials.
const (
	AttrRoughness          Attr = "Roughness"
	AttrThickness          Attr = "Thickness"
	AttrConductivity       Attr = "Conductivity"
	AttrDensity            Attr = "Density"
	AttrSpecificHeat       Attr = "SpecificHeat"
	AttrThermalResistance  Attr = "ThermalResistance"
	AttrThermalAbsorptance Attr = "ThermalAbsorptance"
	AttrSolarAbsorptance   Attr = "SolarAbsorptance"
	AttrVisibleAbsorptance Attr = "VisibleAbsorptance"
)

// Window gases.
const (
	AttrGasType                 Attr = "GasType"
	AttrConductivityCoefficient Attr = "ConductivityCoefficient"
	AttrViscosityCoefficient    Attr = "ViscosityCoefficient"
	AttrSpecificHeatCoefficient Attr = "SpecificHeatCoefficient"
	AttrSpecificHeatRatio       Attr = "SpecificHeatRatio"
	AttrMolecularWeight         Attr = "MolecularWeight"
	AttrNumberOfGasesInMixture  Attr = "NumberOfGasesInMixture"
)

// MaxGasesInMixture is the number of gas slots a gas mixture carries.
const MaxGasesInMixture = 4

// CoefficientAttr returns the A, B or C coefficient attribute of a custom gas
// property, e.g. CoefficientAttr(AttrViscosityCoefficient, 'B').
func CoefficientAttr(base Attr, letter byte) Attr {
	return Attr(fmt.Sprintf("%s%c", base, letter))
}

// GasTypeAttr returns the gas type attribute of mixture slot i (1-based).
func GasTypeAttr(i int) Attr {
	return Attr(fmt.Sprintf("Gas%dType", i))
}

// GasFractionAttr returns the gas fraction attribute of mixture slot i (1-based).
func GasFractionAttr(i int) Attr {
	return Attr(fmt.Sprintf("Gas%dFraction", i))
}

// Glazing.
const (
	AttrUFactor                        Attr = "UFactor"
	AttrSolarHeatGainCoefficient       Attr = "SolarHeatGainCoefficient"
	AttrVisibleTransmittance           Attr = "VisibleTransmittance"
	AttrOpticalDataType                Attr = "OpticalDataType"
	AttrSolarTransmittance             Attr = "SolarTransmittance"
	AttrFrontSideSolarReflectance      Attr = "FrontSideSolarReflectance"
	AttrBackSideSolarReflectance       Attr = "BackSideSolarReflectance"
	AttrFrontSideVisibleReflectance    Attr = "FrontSideVisibleReflectance"
	AttrBackSideVisibleReflectance     Attr = "BackSideVisibleReflectance"
	AttrInfraredTransmittance          Attr = "InfraredTransmittance"
	AttrFrontSideInfraredEmissivity    Attr = "FrontSideInfraredHemisphericalEmissivity"
	AttrBackSideInfraredEmissivity     Attr = "BackSideInfraredHemisphericalEmissivity"
	AttrDirtCorrectionFactor           Attr = "DirtCorrectionFactor"
	AttrSolarDiffusing                 Attr = "SolarDiffusing"
	AttrSolarReflectance               Attr = "SolarReflectance"
	AttrVisibleReflectance             Attr = "VisibleReflectance"
	AttrThermalHemisphericalEmissivity Attr = "ThermalHemisphericalEmissivity"
	AttrThermalTransmittance           Attr = "ThermalTransmittance"
)

// Blinds and shades.
const (
	AttrSlatOrientation                     Attr = "SlatOrientation"
	AttrSlatWidth                           Attr = "SlatWidth"
	AttrSlatSeparation                      Attr = "SlatSeparation"
	AttrSlatThickness                       Attr = "SlatThickness"
	AttrSlatAngle                           Attr = "SlatAngle"
	AttrSlatConductivity                    Attr = "SlatConductivity"
	AttrSlatBeamSolarTransmittance          Attr = "SlatBeamSolarTransmittance"
	AttrFrontSideSlatBeamSolarReflectance   Attr = "FrontSideSlatBeamSolarReflectance"
	AttrFrontSideSlatBeamVisibleReflectance Attr = "FrontSideSlatBeamVisibleReflectance"
	AttrSlatInfraredTransmittance           Attr = "SlatInfraredHemisphericalTransmittance"
	AttrFrontSideSlatInfraredEmissivity     Attr = "FrontSideSlatInfraredHemisphericalEmissivity"
	AttrBlindToGlassDistance                Attr = "BlindToGlassDistance"
	AttrShadeToGlassDistance                Attr = "ShadeToGlassDistance"
	AttrTopOpeningMultiplier                Attr = "TopOpeningMultiplier"
	AttrBottomOpeningMultiplier             Attr = "BottomOpeningMultiplier"
	AttrLeftSideOpeningMultiplier           Attr = "LeftSideOpeningMultiplier"
	AttrRightSideOpeningMultiplier          Attr = "RightSideOpeningMultiplier"
	AttrAirflowPermeability                 Attr = "AirflowPermeability"
)

// Constructions.
const (
	AttrAirExchangeMethod    Attr = "AirExchangeMethod"
	AttrAirMixingFlowPerArea Attr = "AirMixingFlowPerArea"
	AttrAirMixingSchedule    Attr = "AirMixingSchedule"
)

// Schedules.
const (
	AttrLowerLimitValue    Attr = "LowerLimitValue"
	AttrUpperLimitValue    Attr = "UpperLimitValue"
	AttrNumericType        Attr = "NumericType"
	AttrUnitType           Attr = "UnitType"
	AttrScheduleTypeLimits Attr = "ScheduleTypeLimits"
	AttrDefaultDaySchedule Attr = "DefaultDaySchedule"
	AttrInterpolate        Attr = "InterpolatetoTimestep"
	AttrTimes              Attr = "Times"
	AttrValues             Attr = "Values"
)

// Surfaces and sub-surfaces.
const (
	AttrSurfaceType              Attr = "SurfaceType"
	AttrSubSurfaceType           Attr = "SubSurfaceType"
	AttrOutsideBoundaryCondition Attr = "OutsideBoundaryCondition"
	AttrSunExposure              Attr = "SunExposure"
	AttrWindExposure             Attr = "WindExposure"
	AttrViewFactorToGround       Attr = "ViewFactorToGround"
	AttrAdjacentSurfaceName      Attr = "AdjacentSurfaceName"
	AttrConstruction             Attr = "Construction"
)

// Ideal loads air system.
const (
	AttrOutdoorAirEconomizerType           Attr = "OutdoorAirEconomizerType"
	AttrSensibleHeatRecoveryEffectiveness  Attr = "SensibleHeatRecoveryEffectiveness"
	AttrLatentHeatRecoveryEffectiveness    Attr = "LatentHeatRecoveryEffectiveness"
	AttrHeatRecoveryType                   Attr = "HeatRecoveryType"
	AttrDemandControlledVentilationType    Attr = "DemandControlledVentilationType"
	AttrMaximumHeatingSupplyAirTemperature Attr = "MaximumHeatingSupplyAirTemperature"
	AttrMinimumCoolingSupplyAirTemperature Attr = "MinimumCoolingSupplyAirTemperature"
	AttrHeatingLimit                       Attr = "HeatingLimit"
	AttrMaximumSensibleHeatingCapacity     Attr = "MaximumSensibleHeatingCapacity"
	AttrCoolingLimit                       Attr = "CoolingLimit"
	AttrMaximumTotalCoolingCapacity        Attr = "MaximumTotalCoolingCapacity"
	AttrMaximumCoolingAirFlowRate          Attr = "MaximumCoolingAirFlowRate"
	AttrHeatingAvailabilitySchedule        Attr = "HeatingAvailabilitySchedule"
	AttrCoolingAvailabilitySchedule        Attr = "CoolingAvailabilitySchedule"
)

type valueKind int

const (
	numberValue valueKind = iota
	stringValue
	boolValue
	objectValue
	numberListValue
	stringListValue
)

func (v valueKind) String() string {
	switch v {
	case numberValue:
		return "number"
	case stringValue:
		return "string"
	case boolValue:
		return "bool"
	case objectValue:
		return "object"
	case numberListValue:
		return "number list"
	case stringListValue:
		return "string list"
	default:
		return "value"
	}
}

type attrSpec struct {
	kind     valueKind
	choices  []string
	category Category
	autosize bool
}

func number() attrSpec                 { return attrSpec{kind: numberValue} }
func autosizable() attrSpec            { return attrSpec{kind: numberValue, autosize: true} }
func flag() attrSpec                   { return attrSpec{kind: boolValue} }
func choice(values ...string) attrSpec { return attrSpec{kind: stringValue, choices: values} }
func object(c Category) attrSpec       { return attrSpec{kind: objectValue, category: c} }

var roughness = choice("VeryRough", "Rough", "MediumRough", "MediumSmooth", "Smooth", "VerySmooth")

var gasTypes = choice("Air", "Argon", "Krypton", "Xenon", "Custom")

// catalog lists the attributes each kind accepts.
var catalog = map[Kind]map[Attr]attrSpec{
	KindStandardOpaqueMaterial: {
		AttrRoughness:          roughness,
		AttrThickness:          number(),
		AttrConductivity:       number(),
		AttrDensity:            number(),
		AttrSpecificHeat:       number(),
		AttrThermalAbsorptance: number(),
		AttrSolarAbsorptance:   number(),
		AttrVisibleAbsorptance: number(),
	},
	KindMasslessOpaqueMaterial: {
		AttrRoughness:          roughness,
		AttrThermalResistance:  number(),
		AttrThermalAbsorptance: number(),
		AttrSolarAbsorptance:   number(),
		AttrVisibleAbsorptance: number(),
	},
	KindGas:        gasCatalog(),
	KindGasMixture: gasMixtureCatalog(),
	KindSimpleGlazing: {
		AttrUFactor:                  number(),
		AttrSolarHeatGainCoefficient: number(),
		AttrVisibleTransmittance:     number(),
	},
	KindStandardGlazing: {
		AttrOpticalDataType:             choice("SpectralAverage", "Spectral"),
		AttrThickness:                   number(),
		AttrSolarTransmittance:          number(),
		AttrFrontSideSolarReflectance:   number(),
		AttrBackSideSolarReflectance:    number(),
		AttrVisibleTransmittance:        number(),
		AttrFrontSideVisibleReflectance: number(),
		AttrBackSideVisibleReflectance:  number(),
		AttrInfraredTransmittance:       number(),
		AttrFrontSideInfraredEmissivity: number(),
		AttrBackSideInfraredEmissivity:  number(),
		AttrConductivity:                number(),
		AttrDirtCorrectionFactor:        number(),
		AttrSolarDiffusing:              flag(),
	},
	KindBlind: {
		AttrSlatOrientation:                     choice("Horizontal", "Vertical"),
		AttrSlatWidth:                           number(),
		AttrSlatSeparation:                      number(),
		AttrSlatThickness:                       number(),
		AttrSlatAngle:                           number(),
		AttrSlatConductivity:                    number(),
		AttrSlatBeamSolarTransmittance:          number(),
		AttrFrontSideSlatBeamSolarReflectance:   number(),
		AttrFrontSideSlatBeamVisibleReflectance: number(),
		AttrSlatInfraredTransmittance:           number(),
		AttrFrontSideSlatInfraredEmissivity:     number(),
		AttrBlindToGlassDistance:                number(),
	},
	KindShade: {
		AttrSolarTransmittance:             number(),
		AttrSolarReflectance:               number(),
		AttrVisibleTransmittance:           number(),
		AttrVisibleReflectance:             number(),
		AttrThermalHemisphericalEmissivity: number(),
		AttrThermalTransmittance:           number(),
		AttrThickness:                      number(),
		AttrConductivity:                   number(),
		AttrShadeToGlassDistance:           number(),
		AttrTopOpeningMultiplier:           number(),
		AttrBottomOpeningMultiplier:        number(),
		AttrLeftSideOpeningMultiplier:      number(),
		AttrRightSideOpeningMultiplier:     number(),
		AttrAirflowPermeability:            number(),
	},
	KindConstruction: {},
	KindConstructionAirBoundary: {
		AttrAirExchangeMethod:    choice("None", "SimpleMixing"),
		AttrAirMixingFlowPerArea: number(),
		AttrAirMixingSchedule:    object(CategorySchedule),
	},
	KindScheduleTypeLimits: {
		AttrLowerLimitValue: number(),
		AttrUpperLimitValue: number(),
		AttrNumericType:     choice("Continuous", "Discrete"),
		AttrUnitType: choice("Dimensionless", "Temperature", "DeltaTemperature", "PrecipitationRate",
			"Angle", "ConvectionCoefficient", "ActivityLevel", "Velocity", "Capacity", "Power",
			"Availability", "Percent", "Control", "Mode"),
	},
	KindScheduleRuleset: {
		AttrScheduleTypeLimits: object(CategoryScheduleTypeLimit),
		AttrDefaultDaySchedule: object(CategoryScheduleDay),
	},
	KindScheduleDay: {
		AttrInterpolate: flag(),
		AttrTimes:       {kind: stringListValue},
		AttrValues:      {kind: numberListValue},
	},
	KindSurface: {
		AttrSurfaceType:              choice("Wall", "Floor", "RoofCeiling"),
		AttrOutsideBoundaryCondition: choice("Outdoors", "Ground", "Adiabatic", "Surface"),
		AttrSunExposure:              choice("SunExposed", "NoSun"),
		AttrWindExposure:             choice("WindExposed", "NoWind"),
		AttrViewFactorToGround:       autosizable(),
		AttrAdjacentSurfaceName:      {kind: stringValue},
		AttrConstruction:             object(CategoryConstruction),
	},
	KindSubSurface: {
		AttrSubSurfaceType:      choice("FixedWindow", "OperableWindow", "Door", "GlassDoor"),
		AttrViewFactorToGround:  autosizable(),
		AttrAdjacentSurfaceName: {kind: stringValue},
		AttrConstruction:        object(CategoryConstruction),
	},
	KindIdealLoadsAirSystem: {
		AttrOutdoorAirEconomizerType:           choice("NoEconomizer", "DifferentialDryBulb", "DifferentialEnthalpy"),
		AttrSensibleHeatRecoveryEffectiveness:  number(),
		AttrLatentHeatRecoveryEffectiveness:    number(),
		AttrHeatRecoveryType:                   choice("None", "Sensible", "Enthalpy"),
		AttrDemandControlledVentilationType:    choice("None", "OccupancySchedule", "CO2Setpoint"),
		AttrMaximumHeatingSupplyAirTemperature: number(),
		AttrMinimumCoolingSupplyAirTemperature: number(),
		AttrHeatingLimit:                       choice("NoLimit", "LimitFlowRate", "LimitCapacity", "LimitFlowRateAndCapacity"),
		AttrMaximumSensibleHeatingCapacity:     autosizable(),
		AttrCoolingLimit:                       choice("NoLimit", "LimitFlowRate", "LimitCapacity", "LimitFlowRateAndCapacity"),
		AttrMaximumTotalCoolingCapacity:        autosizable(),
		AttrMaximumCoolingAirFlowRate:          autosizable(),
		AttrHeatingAvailabilitySchedule:        object(CategorySchedule),
		AttrCoolingAvailabilitySchedule:        object(CategorySchedule),
	},
}

func gasCatalog() map[Attr]attrSpec {
	specs := map[Attr]attrSpec{
		AttrGasType:           gasTypes,
		AttrThickness:         number(),
		AttrSpecificHeatRatio: number(),
		AttrMolecularWeight:   number(),
	}

	for _, base := range []Attr{AttrConductivityCoefficient, AttrViscosityCoefficient, AttrSpecificHeatCoefficient} {
		for _, letter := range []byte("ABC") {
			specs[CoefficientAttr(base, letter)] = number()
		}
	}

	return specs
}

func gasMixtureCatalog() map[Attr]attrSpec {
	specs := map[Attr]attrSpec{
		AttrThickness:              number(),
		AttrNumberOfGasesInMixture: number(),
	}

	for i := 1; i <= MaxGasesInMixture; i++ {
		specs[GasTypeAttr(i)] = choice("Air", "Argon", "Krypton", "Xenon")
		specs[GasFractionAttr(i)] = number()
	}

	return specs
}
