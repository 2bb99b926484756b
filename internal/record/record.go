package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformed   = errors.New("malformed record")
	ErrUnknownType = errors.New("unknown record type")
)

// Type is a record discriminator.
type Type string

const (
	TypeEnergyMaterial                    Type = "EnergyMaterial"
	TypeEnergyMaterialNoMass              Type = "EnergyMaterialNoMass"
	TypeEnergyWindowMaterialGas           Type = "EnergyWindowMaterialGas"
	TypeEnergyWindowMaterialGasCustom     Type = "EnergyWindowMaterialGasCustom"
	TypeEnergyWindowMaterialGasMixture    Type = "EnergyWindowMaterialGasMixture"
	TypeEnergyWindowMaterialSimpleGlazSys Type = "EnergyWindowMaterialSimpleGlazSys"
	TypeEnergyWindowMaterialGlazing       Type = "EnergyWindowMaterialGlazing"
	TypeEnergyWindowMaterialBlind         Type = "EnergyWindowMaterialBlind"
	TypeEnergyWindowMaterialShade         Type = "EnergyWindowMaterialShade"
	TypeOpaqueConstructionAbridged        Type = "OpaqueConstructionAbridged"
	TypeWindowConstructionAbridged        Type = "WindowConstructionAbridged"
	TypeAirBoundaryConstructionAbridged   Type = "AirBoundaryConstructionAbridged"
	TypeScheduleTypeLimit                 Type = "ScheduleTypeLimit"
	TypeScheduleRulesetAbridged           Type = "ScheduleRulesetAbridged"
	TypeFace                              Type = "Face"
	TypeAperture                          Type = "Aperture"
	TypeDoor                              Type = "Door"
	TypeIdealAirSystemAbridged            Type = "IdealAirSystemAbridged"

	// TypeModel is the envelope document flattened by Split.
	TypeModel Type = "Model"
)

func (t Type) String() string { return string(t) }

// Record is a decoded entity record.
type Record interface {
	RecordType() Type
	RecordName() string
	// References lists the names this record points at, in declared order.
	References() []Reference
	// Children lists nested records materialized after the record itself.
	Children() []Record
}

// Reference is a by-name pointer from a record field to another record.
// Field is the dotted schema path of the referencing field.
type Reference struct {
	Field string
	Name  string
}

// Header holds the discriminator and name shared by every record.
type Header struct {
	Type Type   `json:"type"`
	Name string `json:"name"`
}

func (h *Header) RecordType() Type   { return h.Type }
func (h *Header) RecordName() string { return h.Name }

// leaf is embedded by records that have neither references nor children.
type leaf struct{}

func (leaf) References() []Reference { return nil }
func (leaf) Children() []Record      { return nil }

func optionalRef(refs []Reference, field string, name *string) []Reference {
	if name == nil || *name == "" {
		return refs
	}

	return append(refs, Reference{Field: field, Name: *name})
}

// Quantity is a field that holds either a number or a keyword such as
// "autosize" or "NoLimit".
type Quantity struct {
	Keyword string
	Number  float64
}

// Num returns a numeric quantity.
func Num(v float64) Quantity { return Quantity{Number: v} }

// Keyword returns a keyword quantity.
func Keyword(k string) Quantity { return Quantity{Keyword: k} }

// IsKeyword reports whether q holds the given keyword.
func (q Quantity) IsKeyword(k string) bool {
	return q.Keyword != "" && q.Keyword == k
}

// Float returns the number held by q, or false when q is a keyword.
func (q Quantity) Float() (float64, bool) {
	if q.Keyword != "" {
		return 0, false
	}

	return q.Number, true
}

func (q Quantity) String() string {
	if q.Keyword != "" {
		return q.Keyword
	}

	return strconv.FormatFloat(q.Number, 'g', -1, 64)
}

// UnmarshalJSON accepts a JSON number or string.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var k string
		if err := json.Unmarshal(data, &k); err != nil {
			return err
		}

		if k == "" {
			return fmt.Errorf("%w: empty keyword", ErrMalformed)
		}

		*q = Keyword(k)

		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: expected number or keyword, got %s", ErrMalformed, data)
	}

	*q = Num(n)

	return nil
}

// MarshalJSON writes the number or the keyword string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Keyword != "" {
		return json.Marshal(q.Keyword)
	}

	return json.Marshal(q.Number)
}

// QuantityOf converts a decoded default value (string or float64) into a Quantity.
func QuantityOf(v any) (Quantity, error) {
	switch t := v.(type) {
	case string:
		return Keyword(t), nil
	case float64:
		return Num(t), nil
	case int:
		return Num(float64(t)), nil
	case Quantity:
		return t, nil
	default:
		return Quantity{}, fmt.Errorf("%w: %v is neither a number nor a keyword", ErrMalformed, v)
	}
}
