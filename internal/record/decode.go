package record

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
)

var factories = map[Type]func() Record{
	TypeEnergyMaterial:                    func() Record { return &EnergyMaterial{} },
	TypeEnergyMaterialNoMass:              func() Record { return &EnergyMaterialNoMass{} },
	TypeEnergyWindowMaterialGas:           func() Record { return &EnergyWindowMaterialGas{} },
	TypeEnergyWindowMaterialGasCustom:     func() Record { return &EnergyWindowMaterialGasCustom{} },
	TypeEnergyWindowMaterialGasMixture:    func() Record { return &EnergyWindowMaterialGasMixture{} },
	TypeEnergyWindowMaterialSimpleGlazSys: func() Record { return &EnergyWindowMaterialSimpleGlazSys{} },
	TypeEnergyWindowMaterialGlazing:       func() Record { return &EnergyWindowMaterialGlazing{} },
	TypeEnergyWindowMaterialBlind:         func() Record { return &EnergyWindowMaterialBlind{} },
	TypeEnergyWindowMaterialShade:         func() Record { return &EnergyWindowMaterialShade{} },
	TypeOpaqueConstructionAbridged:        func() Record { return &OpaqueConstructionAbridged{} },
	TypeWindowConstructionAbridged:        func() Record { return &WindowConstructionAbridged{} },
	TypeAirBoundaryConstructionAbridged:   func() Record { return &AirBoundaryConstructionAbridged{} },
	TypeScheduleTypeLimit:                 func() Record { return &ScheduleTypeLimit{} },
	TypeScheduleRulesetAbridged:           func() Record { return &ScheduleRulesetAbridged{} },
	TypeFace:                              func() Record { return &Face{} },
	TypeAperture:                          func() Record { return &Aperture{} },
	TypeDoor:                              func() Record { return &Door{} },
	TypeIdealAirSystemAbridged:            func() Record { return &IdealAirSystemAbridged{} },
}

var declared = func() map[reflect.Type]Type {
	out := make(map[reflect.Type]Type, len(factories))
	for t, newRecord := range factories {
		out[reflect.TypeOf(newRecord())] = t
	}

	return out
}()

// DeclaredType returns the type a record variant is declared for, which can
// differ from the discriminator it was decoded with.
func DeclaredType(rec Record) (Type, bool) {
	t, ok := declared[reflect.TypeOf(rec)]
	return t, ok
}

// Known reports whether t is a decodable record type.
func Known(t Type) bool {
	_, ok := factories[t]
	return ok
}

// Peek reads the type and name of a raw record without decoding it.
func Peek(raw []byte) (Type, string, error) {
	if !gjson.ValidBytes(raw) {
		return "", "", fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return "", "", fmt.Errorf("%w: expected an object", ErrMalformed)
	}

	return Type(res.Get("type").String()), res.Get("name").String(), nil
}

// Decode decodes a raw record into its typed variant.
func Decode(raw []byte) (Record, error) {
	typ, _, err := Peek(raw)
	if err != nil {
		return nil, err
	}

	newRecord, ok := factories[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	rec := newRecord()
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, typ, err)
	}

	return rec, nil
}

// Entry is one raw record extracted from an input document.
type Entry struct {
	Type Type
	Name string
	// Path locates the entry in the input document, e.g. "[2]" or
	// "properties.energy.materials[0]".
	Path string
	Raw  []byte
}

// ModelFamilies lists the Model document arrays flattened by Split, in order.
var ModelFamilies = []string{
	"properties.energy.materials",
	"properties.energy.constructions",
	"properties.energy.schedule_type_limits",
	"properties.energy.schedules",
	"properties.energy.hvacs",
	"faces",
}

// Split breaks an input document into its raw records.
func Split(raw []byte) ([]Entry, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	doc := gjson.ParseBytes(raw)

	switch {
	case doc.IsArray():
		return splitArray(doc, "")
	case doc.IsObject() && Type(doc.Get("type").String()) == TypeModel:
		var out []Entry

		for _, family := range ModelFamilies {
			list := doc.Get(family)
			if !list.Exists() {
				continue
			}

			if !list.IsArray() {
				return nil, fmt.Errorf("%w: %s must be an array", ErrMalformed, family)
			}

			entries, err := splitArray(list, family)
			if err != nil {
				return nil, err
			}

			out = append(out, entries...)
		}

		return out, nil
	case doc.IsObject():
		return []Entry{entryOf(doc, "")}, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or array", ErrMalformed)
	}
}

func splitArray(list gjson.Result, prefix string) ([]Entry, error) {
	var (
		out []Entry
		err error
	)

	i := 0

	list.ForEach(func(_, item gjson.Result) bool {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		i++

		if !item.IsObject() {
			err = fmt.Errorf("%w: %s is not an object", ErrMalformed, path)
			return false
		}

		out = append(out, entryOf(item, path))

		return true
	})

	return out, err
}

func entryOf(obj gjson.Result, path string) Entry {
	return Entry{
		Type: Type(obj.Get("type").String()),
		Name: obj.Get("name").String(),
		Path: path,
		Raw:  []byte(obj.Raw),
	}
}
