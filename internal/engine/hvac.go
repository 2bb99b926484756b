package engine

import (
	"fmt"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

const autosize = "autosize"

func idealAirSystem(b *Build, h *record.IdealAirSystemAbridged) (target.Object, error) {
	obj, err := b.Create(target.KindIdealLoadsAirSystem, h.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Text(target.AttrOutdoorAirEconomizerType, "economizer_type", h.EconomizerType)
	heatRecovery(b, s, h)

	dcv, _, err := b.Flag("demand_controlled_ventilation", h.DemandControlledVentilation)
	if err != nil {
		s.Fail(err)
	} else if dcv {
		s.Value(target.AttrDemandControlledVentilationType, "OccupancySchedule")
	} else {
		s.Value(target.AttrDemandControlledVentilationType, "None")
	}

	s.Number(target.AttrMaximumHeatingSupplyAirTemperature, "heating_air_temperature", h.HeatingAirTemperature)
	s.Number(target.AttrMinimumCoolingSupplyAirTemperature, "cooling_air_temperature", h.CoolingAirTemperature)

	heatingLimit(b, s, h.HeatingLimit)
	coolingLimit(b, s, h.CoolingLimit)

	if schedule, ok := b.Ref(record.FieldHeatingAvailability); ok {
		s.Value(target.AttrHeatingAvailabilitySchedule, schedule)
	}

	if schedule, ok := b.Ref(record.FieldCoolingAvailability); ok {
		s.Value(target.AttrCoolingAvailabilitySchedule, schedule)
	}

	return obj, s.Err()
}

// heatRecovery sets both effectiveness values. A supplied 0 falls back to the
// schema default; the recovery type follows the effective values, latent first.
func heatRecovery(b *Build, s *Setter, h *record.IdealAirSystemAbridged) {
	recoveryType := "None"

	sensible, ok, err := b.Float("sensible_heat_recovery", h.SensibleHeatRecovery)
	s.apply(target.AttrSensibleHeatRecoveryEffectiveness, "sensible_heat_recovery", sensible, ok, err)

	if ok && sensible != 0 {
		recoveryType = "Sensible"
	}

	latent, ok, err := b.Float("latent_heat_recovery", h.LatentHeatRecovery)
	s.apply(target.AttrLatentHeatRecoveryEffectiveness, "latent_heat_recovery", latent, ok, err)

	if ok && latent != 0 {
		recoveryType = "Enthalpy"
	}

	s.Value(target.AttrHeatRecoveryType, recoveryType)
}

// heatingLimit: NoLimit leaves the capacity unconstrained; anything else limits
// it to the given magnitude or to an autosized one.
func heatingLimit(b *Build, s *Setter, v *record.Quantity) {
	q, ok := capacity(b, s, "heating_limit", v)
	if !ok {
		return
	}

	if q.IsKeyword(noLimit) {
		s.Value(target.AttrHeatingLimit, noLimit)
		return
	}

	s.Value(target.AttrHeatingLimit, "LimitCapacity")

	if n, isNum := q.Float(); isNum {
		s.Value(target.AttrMaximumSensibleHeatingCapacity, n)
	} else {
		s.Autosize(target.AttrMaximumSensibleHeatingCapacity)
	}
}

// coolingLimit follows heatingLimit but also limits the air flow rate, which
// is always autosized.
func coolingLimit(b *Build, s *Setter, v *record.Quantity) {
	q, ok := capacity(b, s, "cooling_limit", v)
	if !ok {
		return
	}

	if q.IsKeyword(noLimit) {
		s.Value(target.AttrCoolingLimit, noLimit)
		return
	}

	s.Value(target.AttrCoolingLimit, "LimitFlowRateAndCapacity")

	if n, isNum := q.Float(); isNum {
		s.Value(target.AttrMaximumTotalCoolingCapacity, n)
	} else {
		s.Autosize(target.AttrMaximumTotalCoolingCapacity)
	}

	s.Autosize(target.AttrMaximumCoolingAirFlowRate)
}

func capacity(b *Build, s *Setter, field string, v *record.Quantity) (record.Quantity, bool) {
	q, ok, err := b.Quantity(field, v)
	if err != nil {
		s.Fail(err)
		return q, false
	}

	if !ok {
		return q, false
	}

	if q.Keyword != "" && q.Keyword != noLimit && q.Keyword != autosize {
		s.Fail(newError(ErrValidation, b.Record(), field, fmt.Errorf("unsupported keyword %q", q.Keyword)))
		return q, false
	}

	return q, true
}
