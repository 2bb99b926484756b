package record

const FieldScheduleTypeLimit = "schedule_type_limit"

// ScheduleTypeLimit bounds the values of the schedules that use it.
type ScheduleTypeLimit struct {
	Header
	leaf

	LowerLimit  *Quantity `json:"lower_limit,omitempty"`
	UpperLimit  *Quantity `json:"upper_limit,omitempty"`
	NumericType *string   `json:"numeric_type,omitempty"`
	UnitType    *string   `json:"unit_type,omitempty"`
}

// ScheduleRulesetAbridged is a schedule made of named day schedules. Only the
// default day schedule is applied; day rules and holidays are not modeled.
type ScheduleRulesetAbridged struct {
	Header

	DaySchedules       []ScheduleDay `json:"day_schedules"`
	DefaultDaySchedule *string       `json:"default_day_schedule,omitempty"`
	ScheduleTypeLimit  *string       `json:"schedule_type_limit,omitempty"`
}

func (s *ScheduleRulesetAbridged) References() []Reference {
	return optionalRef(nil, FieldScheduleTypeLimit, s.ScheduleTypeLimit)
}

func (s *ScheduleRulesetAbridged) Children() []Record { return nil }

// DaySchedule returns the day schedule with the given name.
func (s *ScheduleRulesetAbridged) DaySchedule(name string) (*ScheduleDay, bool) {
	for i := range s.DaySchedules {
		if s.DaySchedules[i].Name == name {
			return &s.DaySchedules[i], true
		}
	}

	return nil, false
}

// ScheduleDay is a 24-hour profile. Times are [hour, minute] pairs marking
// where each value starts; the first value starts at midnight.
type ScheduleDay struct {
	Type        string    `json:"type,omitempty"`
	Name        string    `json:"name"`
	Values      []float64 `json:"values"`
	Times       [][2]int  `json:"times,omitempty"`
	Interpolate *bool     `json:"interpolate,omitempty"`
}
