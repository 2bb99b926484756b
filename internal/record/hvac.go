package record

const (
	FieldHeatingAvailability = "heating_availability"
	FieldCoolingAvailability = "cooling_availability"
)

// IdealAirSystemAbridged is an ideal loads air system.
type IdealAirSystemAbridged struct {
	Header

	EconomizerType              *string   `json:"economizer_type,omitempty"`
	DemandControlledVentilation *bool     `json:"demand_controlled_ventilation,omitempty"`
	SensibleHeatRecovery        *float64  `json:"sensible_heat_recovery,omitempty"`
	LatentHeatRecovery          *float64  `json:"latent_heat_recovery,omitempty"`
	HeatingAirTemperature       *float64  `json:"heating_air_temperature,omitempty"`
	CoolingAirTemperature       *float64  `json:"cooling_air_temperature,omitempty"`
	HeatingLimit                *Quantity `json:"heating_limit,omitempty"`
	CoolingLimit                *Quantity `json:"cooling_limit,omitempty"`
	HeatingAvailability         *string   `json:"heating_availability,omitempty"`
	CoolingAvailability         *string   `json:"cooling_availability,omitempty"`
}

func (h *IdealAirSystemAbridged) References() []Reference {
	refs := optionalRef(nil, FieldHeatingAvailability, h.HeatingAvailability)
	return optionalRef(refs, FieldCoolingAvailability, h.CoolingAvailability)
}

func (h *IdealAirSystemAbridged) Children() []Record { return nil }
