package engine

import (
	"errors"
	"fmt"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

const noLimit = "NoLimit"

func scheduleTypeLimit(b *Build, l *record.ScheduleTypeLimit) (target.Object, error) {
	obj, err := b.Create(target.KindScheduleTypeLimits, l.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	limit(b, s, target.AttrLowerLimitValue, "lower_limit", l.LowerLimit)
	limit(b, s, target.AttrUpperLimitValue, "upper_limit", l.UpperLimit)
	s.Text(target.AttrNumericType, "numeric_type", l.NumericType)
	s.Text(target.AttrUnitType, "unit_type", l.UnitType)

	return obj, s.Err()
}

// limit sets a schedule bound unless it is NoLimit.
func limit(b *Build, s *Setter, attr target.Attr, field string, v *record.Quantity) {
	q, ok, err := b.Quantity(field, v)
	if err != nil {
		s.Fail(err)
		return
	}

	if !ok || q.IsKeyword(noLimit) {
		return
	}

	n, isNum := q.Float()
	if !isNum {
		s.Fail(newError(ErrValidation, b.Record(), field, fmt.Errorf("unsupported keyword %q", q.Keyword)))
		return
	}

	s.Value(attr, n)
}

func scheduleRuleset(b *Build, r *record.ScheduleRulesetAbridged) (target.Object, error) {
	if r.DefaultDaySchedule == nil || *r.DefaultDaySchedule == "" {
		return nil, newError(ErrMissingField, r, "default_day_schedule", nil)
	}

	day, ok := r.DaySchedule(*r.DefaultDaySchedule)
	if !ok {
		return nil, &Error{
			Kind:  ErrUnresolvedReference,
			Type:  r.Type,
			Name:  r.Name,
			Field: "default_day_schedule",
			Ref:   *r.DefaultDaySchedule,
		}
	}

	obj, err := b.Create(target.KindScheduleRuleset, r.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)

	if limits, ok := b.Ref(record.FieldScheduleTypeLimit); ok {
		s.Value(target.AttrScheduleTypeLimits, limits)
	}

	dayObj, err := scheduleDay(b, day)
	if err != nil {
		return nil, err
	}

	s.Value(target.AttrDefaultDaySchedule, dayObj)

	return obj, s.Err()
}

// scheduleDay creates the day profile of a ruleset.
func scheduleDay(b *Build, d *record.ScheduleDay) (target.Object, error) {
	if len(d.Values) == 0 {
		return nil, newError(ErrMissingField, b.Record(), "day_schedules.values", nil)
	}

	times, err := dayTimes(d)
	if err != nil {
		return nil, newError(ErrValidation, b.Record(), "day_schedules.times", err)
	}

	obj, err := b.Create(target.KindScheduleDay, d.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Flag(target.AttrInterpolate, "day_schedules.interpolate", d.Interpolate)
	s.Value(target.AttrValues, append([]float64(nil), d.Values...))
	s.Value(target.AttrTimes, times)

	return obj, s.Err()
}

// dayTimes returns the "HH:MM" start time of each value. Without explicit times
// the values are spread evenly over the day.
func dayTimes(d *record.ScheduleDay) ([]string, error) {
	n := len(d.Values)

	if len(d.Times) == 0 {
		out := make([]string, n)
		for i := range n {
			minutes := i * 24 * 60 / n
			out[i] = fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		}

		return out, nil
	}

	if len(d.Times) != n {
		return nil, fmt.Errorf("%d times for %d values", len(d.Times), n)
	}

	out := make([]string, n)
	prev := -1

	for i, t := range d.Times {
		hour, minute := t[0], t[1]
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("invalid time %02d:%02d", hour, minute)
		}

		at := hour*60 + minute
		if at <= prev {
			return nil, errors.New("times must be increasing")
		}

		prev = at
		out[i] = fmt.Sprintf("%02d:%02d", hour, minute)
	}

	return out, nil
}
