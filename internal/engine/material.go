package engine

import (
	"fmt"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

func opaqueMaterial(b *Build, m *record.EnergyMaterial) (target.Object, error) {
	obj, err := b.Create(target.KindStandardOpaqueMaterial, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Text(target.AttrRoughness, "roughness", m.Roughness)
	s.Number(target.AttrThickness, "thickness", m.Thickness)
	s.Number(target.AttrConductivity, "conductivity", m.Conductivity)
	s.Number(target.AttrDensity, "density", m.Density)
	s.Number(target.AttrSpecificHeat, "specific_heat", m.SpecificHeat)
	s.Number(target.AttrThermalAbsorptance, "thermal_absorptance", m.ThermalAbsorptance)
	s.Number(target.AttrSolarAbsorptance, "solar_absorptance", m.SolarAbsorptance)
	s.Number(target.AttrVisibleAbsorptance, "visible_absorptance", m.VisibleAbsorptance)

	return obj, s.Err()
}

func masslessMaterial(b *Build, m *record.EnergyMaterialNoMass) (target.Object, error) {
	obj, err := b.Create(target.KindMasslessOpaqueMaterial, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Number(target.AttrThermalResistance, "r_value", m.RValue)
	s.Text(target.AttrRoughness, "roughness", m.Roughness)
	s.Number(target.AttrThermalAbsorptance, "thermal_absorptance", m.ThermalAbsorptance)
	s.Number(target.AttrSolarAbsorptance, "solar_absorptance", m.SolarAbsorptance)
	s.Number(target.AttrVisibleAbsorptance, "visible_absorptance", m.VisibleAbsorptance)

	return obj, s.Err()
}

func gasMaterial(b *Build, m *record.EnergyWindowMaterialGas) (target.Object, error) {
	obj, err := b.Create(target.KindGas, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Text(target.AttrGasType, "gas_type", m.GasType)
	s.Number(target.AttrThickness, "thickness", m.Thickness)

	return obj, s.Err()
}

func customGasMaterial(b *Build, m *record.EnergyWindowMaterialGasCustom) (target.Object, error) {
	obj, err := b.Create(target.KindGas, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Value(target.AttrGasType, "Custom")
	s.Number(target.AttrThickness, "thickness", m.Thickness)

	coefficients := []struct {
		base   target.Attr
		prefix string
		abc    [3]*float64
	}{
		{target.AttrConductivityCoefficient, "conductivity_coeff_", [3]*float64{m.ConductivityCoeffA, m.ConductivityCoeffB, m.ConductivityCoeffC}},
		{target.AttrViscosityCoefficient, "viscosity_coeff_", [3]*float64{m.ViscosityCoeffA, m.ViscosityCoeffB, m.ViscosityCoeffC}},
		{target.AttrSpecificHeatCoefficient, "specific_heat_coeff_", [3]*float64{m.SpecificHeatCoeffA, m.SpecificHeatCoeffB, m.SpecificHeatCoeffC}},
	}

	for _, c := range coefficients {
		for i, letter := range []byte("ABC") {
			field := fmt.Sprintf("%s%c", c.prefix, letter+('a'-'A'))
			s.Number(target.CoefficientAttr(c.base, letter), field, c.abc[i])
		}
	}

	s.Number(target.AttrSpecificHeatRatio, "specific_heat_ratio", m.SpecificHeatRatio)
	s.Number(target.AttrMolecularWeight, "molecular_weight", m.MolecularWeight)

	return obj, s.Err()
}

func gasMixtureMaterial(b *Build, m *record.EnergyWindowMaterialGasMixture) (target.Object, error) {
	if len(m.GasTypes) == 0 {
		return nil, newError(ErrMissingField, m, "gas_types", nil)
	}

	if len(m.GasTypes) != len(m.GasFractions) {
		return nil, newError(ErrValidation, m, "gas_fractions",
			fmt.Errorf("%d gas types but %d fractions", len(m.GasTypes), len(m.GasFractions)))
	}

	if len(m.GasTypes) > target.MaxGasesInMixture {
		return nil, newError(ErrValidation, m, "gas_types",
			fmt.Errorf("at most %d gases, got %d", target.MaxGasesInMixture, len(m.GasTypes)))
	}

	obj, err := b.Create(target.KindGasMixture, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Number(target.AttrThickness, "thickness", m.Thickness)
	s.Value(target.AttrNumberOfGasesInMixture, float64(len(m.GasTypes)))

	for i, gas := range m.GasTypes {
		s.Value(target.GasTypeAttr(i+1), gas)
		s.Value(target.GasFractionAttr(i+1), m.GasFractions[i])
	}

	return obj, s.Err()
}

func simpleGlazing(b *Build, m *record.EnergyWindowMaterialSimpleGlazSys) (target.Object, error) {
	obj, err := b.Create(target.KindSimpleGlazing, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Number(target.AttrUFactor, "u_factor", m.UFactor)
	s.Number(target.AttrSolarHeatGainCoefficient, "shgc", m.SHGC)
	s.Number(target.AttrVisibleTransmittance, "vt", m.VT)

	return obj, s.Err()
}

func standardGlazing(b *Build, m *record.EnergyWindowMaterialGlazing) (target.Object, error) {
	obj, err := b.Create(target.KindStandardGlazing, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Value(target.AttrOpticalDataType, "SpectralAverage")
	s.Number(target.AttrThickness, "thickness", m.Thickness)
	s.Number(target.AttrSolarTransmittance, "solar_transmittance", m.SolarTransmittance)
	s.Number(target.AttrFrontSideSolarReflectance, "solar_reflectance", m.SolarReflectance)
	s.Number(target.AttrBackSideSolarReflectance, "solar_reflectance_back", m.SolarReflectanceBack)
	s.Number(target.AttrVisibleTransmittance, "visible_transmittance", m.VisibleTransmittance)
	s.Number(target.AttrFrontSideVisibleReflectance, "visible_reflectance", m.VisibleReflectance)
	s.Number(target.AttrBackSideVisibleReflectance, "visible_reflectance_back", m.VisibleReflectanceBack)
	s.Number(target.AttrInfraredTransmittance, "infrared_transmittance", m.InfraredTransmittance)
	s.Number(target.AttrFrontSideInfraredEmissivity, "emissivity", m.Emissivity)
	s.Number(target.AttrBackSideInfraredEmissivity, "emissivity_back", m.EmissivityBack)
	s.Number(target.AttrConductivity, "conductivity", m.Conductivity)
	s.Number(target.AttrDirtCorrectionFactor, "dirt_correction", m.DirtCorrection)
	s.Flag(target.AttrSolarDiffusing, "solar_diffusing", m.SolarDiffusing)

	return obj, s.Err()
}

func blindMaterial(b *Build, m *record.EnergyWindowMaterialBlind) (target.Object, error) {
	obj, err := b.Create(target.KindBlind, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Text(target.AttrSlatOrientation, "slat_orientation", m.SlatOrientation)
	s.Number(target.AttrSlatWidth, "slat_width", m.SlatWidth)
	s.Number(target.AttrSlatSeparation, "slat_separation", m.SlatSeparation)
	s.Number(target.AttrSlatThickness, "slat_thickness", m.SlatThickness)
	s.Number(target.AttrSlatAngle, "slat_angle", m.SlatAngle)
	s.Number(target.AttrSlatConductivity, "slat_conductivity", m.SlatConductivity)
	s.Number(target.AttrSlatBeamSolarTransmittance, "beam_solar_transmittance", m.BeamSolarTransmittance)
	s.Number(target.AttrFrontSideSlatBeamSolarReflectance, "beam_solar_reflectance", m.BeamSolarReflectance)
	s.Number(target.AttrFrontSideSlatBeamVisibleReflectance, "beam_visible_reflectance", m.BeamVisibleReflectance)
	s.Number(target.AttrSlatInfraredTransmittance, "infrared_transmittance", m.InfraredTransmittance)
	s.Number(target.AttrFrontSideSlatInfraredEmissivity, "emissivity", m.Emissivity)
	s.Number(target.AttrBlindToGlassDistance, "distance_to_glass", m.DistanceToGlass)

	return obj, s.Err()
}

func shadeMaterial(b *Build, m *record.EnergyWindowMaterialShade) (target.Object, error) {
	obj, err := b.Create(target.KindShade, m.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Number(target.AttrSolarTransmittance, "solar_transmittance", m.SolarTransmittance)
	s.Number(target.AttrSolarReflectance, "solar_reflectance", m.SolarReflectance)
	s.Number(target.AttrVisibleTransmittance, "visible_transmittance", m.VisibleTransmittance)
	s.Number(target.AttrVisibleReflectance, "visible_reflectance", m.VisibleReflectance)
	s.Number(target.AttrThermalHemisphericalEmissivity, "emissivity", m.Emissivity)
	s.Number(target.AttrThermalTransmittance, "infrared_transmittance", m.InfraredTransmittance)
	s.Number(target.AttrThickness, "thickness", m.Thickness)
	s.Number(target.AttrConductivity, "conductivity", m.Conductivity)
	s.Number(target.AttrShadeToGlassDistance, "distance_to_glass", m.DistanceToGlass)
	s.Number(target.AttrTopOpeningMultiplier, "top_opening_multiplier", m.TopOpeningMultiplier)
	s.Number(target.AttrBottomOpeningMultiplier, "bottom_opening_multiplier", m.BottomOpeningMultiplier)
	s.Number(target.AttrLeftSideOpeningMultiplier, "left_opening_multiplier", m.LeftOpeningMultiplier)
	s.Number(target.AttrRightSideOpeningMultiplier, "right_opening_multiplier", m.RightOpeningMultiplier)
	s.Number(target.AttrAirflowPermeability, "airflow_permeability", m.AirflowPermeability)

	return obj, s.Err()
}
