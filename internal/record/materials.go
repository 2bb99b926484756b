package record

// EnergyMaterial is an opaque material with mass.
type EnergyMaterial struct {
	Header
	leaf

	Roughness          *string  `json:"roughness,omitempty"`
	Thickness          *float64 `json:"thickness,omitempty"`
	Conductivity       *float64 `json:"conductivity,omitempty"`
	Density            *float64 `json:"density,omitempty"`
	SpecificHeat       *float64 `json:"specific_heat,omitempty"`
	ThermalAbsorptance *float64 `json:"thermal_absorptance,omitempty"`
	SolarAbsorptance   *float64 `json:"solar_absorptance,omitempty"`
	VisibleAbsorptance *float64 `json:"visible_absorptance,omitempty"`
}

// EnergyMaterialNoMass is an opaque material described by its R-value only.
type EnergyMaterialNoMass struct {
	Header
	leaf

	RValue             *float64 `json:"r_value,omitempty"`
	Roughness          *string  `json:"roughness,omitempty"`
	ThermalAbsorptance *float64 `json:"thermal_absorptance,omitempty"`
	SolarAbsorptance   *float64 `json:"solar_absorptance,omitempty"`
	VisibleAbsorptance *float64 `json:"visible_absorptance,omitempty"`
}

type EnergyWindowMaterialGas struct {
	Header
	leaf

	Thickness *float64 `json:"thickness,omitempty"`
	GasType   *string  `json:"gas_type,omitempty"`
}

// EnergyWindowMaterialGasCustom is a gas layer with user-supplied property
// coefficients.
type EnergyWindowMaterialGasCustom struct {
	Header
	leaf

	Thickness          *float64 `json:"thickness,omitempty"`
	ConductivityCoeffA *float64 `json:"conductivity_coeff_a,omitempty"`
	ViscosityCoeffA    *float64 `json:"viscosity_coeff_a,omitempty"`
	SpecificHeatCoeffA *float64 `json:"specific_heat_coeff_a,omitempty"`
	ConductivityCoeffB *float64 `json:"conductivity_coeff_b,omitempty"`
	ConductivityCoeffC *float64 `json:"conductivity_coeff_c,omitempty"`
	ViscosityCoeffB    *float64 `json:"viscosity_coeff_b,omitempty"`
	ViscosityCoeffC    *float64 `json:"viscosity_coeff_c,omitempty"`
	SpecificHeatCoeffB *float64 `json:"specific_heat_coeff_b,omitempty"`
	SpecificHeatCoeffC *float64 `json:"specific_heat_coeff_c,omitempty"`
	SpecificHeatRatio  *float64 `json:"specific_heat_ratio,omitempty"`
	MolecularWeight    *float64 `json:"molecular_weight,omitempty"`
}

type EnergyWindowMaterialGasMixture struct {
	Header
	leaf

	Thickness    *float64  `json:"thickness,omitempty"`
	GasTypes     []string  `json:"gas_types,omitempty"`
	GasFractions []float64 `json:"gas_fractions,omitempty"`
}

type EnergyWindowMaterialSimpleGlazSys struct {
	Header
	leaf

	UFactor *float64 `json:"u_factor,omitempty"`
	SHGC    *float64 `json:"shgc,omitempty"`
	VT      *float64 `json:"vt,omitempty"`
}

type EnergyWindowMaterialGlazing struct {
	Header
	leaf

	Thickness              *float64 `json:"thickness,omitempty"`
	SolarTransmittance     *float64 `json:"solar_transmittance,omitempty"`
	SolarReflectance       *float64 `json:"solar_reflectance,omitempty"`
	SolarReflectanceBack   *float64 `json:"solar_reflectance_back,omitempty"`
	VisibleTransmittance   *float64 `json:"visible_transmittance,omitempty"`
	VisibleReflectance     *float64 `json:"visible_reflectance,omitempty"`
	VisibleReflectanceBack *float64 `json:"visible_reflectance_back,omitempty"`
	InfraredTransmittance  *float64 `json:"infrared_transmittance,omitempty"`
	Emissivity             *float64 `json:"emissivity,omitempty"`
	EmissivityBack         *float64 `json:"emissivity_back,omitempty"`
	Conductivity           *float64 `json:"conductivity,omitempty"`
	DirtCorrection         *float64 `json:"dirt_correction,omitempty"`
	SolarDiffusing         *bool    `json:"solar_diffusing,omitempty"`
}

type EnergyWindowMaterialBlind struct {
	Header
	leaf

	SlatOrientation        *string  `json:"slat_orientation,omitempty"`
	SlatWidth              *float64 `json:"slat_width,omitempty"`
	SlatSeparation         *float64 `json:"slat_separation,omitempty"`
	SlatThickness          *float64 `json:"slat_thickness,omitempty"`
	SlatAngle              *float64 `json:"slat_angle,omitempty"`
	SlatConductivity       *float64 `json:"slat_conductivity,omitempty"`
	BeamSolarTransmittance *float64 `json:"beam_solar_transmittance,omitempty"`
	BeamSolarReflectance   *float64 `json:"beam_solar_reflectance,omitempty"`
	BeamVisibleReflectance *float64 `json:"beam_visible_reflectance,omitempty"`
	InfraredTransmittance  *float64 `json:"infrared_transmittance,omitempty"`
	Emissivity             *float64 `json:"emissivity,omitempty"`
	DistanceToGlass        *float64 `json:"distance_to_glass,omitempty"`
}

type EnergyWindowMaterialShade struct {
	Header
	leaf

	SolarTransmittance      *float64 `json:"solar_transmittance,omitempty"`
	SolarReflectance        *float64 `json:"solar_reflectance,omitempty"`
	VisibleTransmittance    *float64 `json:"visible_transmittance,omitempty"`
	VisibleReflectance      *float64 `json:"visible_reflectance,omitempty"`
	Emissivity              *float64 `json:"emissivity,omitempty"`
	InfraredTransmittance   *float64 `json:"infrared_transmittance,omitempty"`
	Thickness               *float64 `json:"thickness,omitempty"`
	Conductivity            *float64 `json:"conductivity,omitempty"`
	DistanceToGlass         *float64 `json:"distance_to_glass,omitempty"`
	TopOpeningMultiplier    *float64 `json:"top_opening_multiplier,omitempty"`
	BottomOpeningMultiplier *float64 `json:"bottom_opening_multiplier,omitempty"`
	LeftOpeningMultiplier   *float64 `json:"left_opening_multiplier,omitempty"`
	RightOpeningMultiplier  *float64 `json:"right_opening_multiplier,omitempty"`
	AirflowPermeability     *float64 `json:"airflow_permeability,omitempty"`
}
