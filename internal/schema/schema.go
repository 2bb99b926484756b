package schema

import (
	"slices"
	"strings"
)

// FieldKind is the JSON shape a field accepts.
type FieldKind string

const (
	KindString          FieldKind = "string"
	KindNumber          FieldKind = "number"
	KindInteger         FieldKind = "integer"
	KindBoolean         FieldKind = "boolean"
	KindEnum            FieldKind = "enum"
	KindEnumList        FieldKind = "enum_list"
	KindNumberOrKeyword FieldKind = "number_or_keyword"
	KindNumberList      FieldKind = "number_list"
	KindPointList       FieldKind = "point_list"
	KindArray           FieldKind = "array"
	KindReference       FieldKind = "reference"
	KindReferenceList   FieldKind = "reference_list"
	KindObject          FieldKind = "object"
	KindObjectList      FieldKind = "object_list"
	KindRecordList      FieldKind = "record_list"
)

var fieldKinds = []FieldKind{
	KindString, KindNumber, KindInteger, KindBoolean, KindEnum, KindEnumList,
	KindNumberOrKeyword, KindNumberList, KindPointList, KindArray,
	KindReference, KindReferenceList, KindObject, KindObjectList, KindRecordList,
}

// IsValid reports whether k is a known field kind.
func (k FieldKind) IsValid() bool {
	return slices.Contains(fieldKinds, k)
}

// IsReference reports whether the field holds record names.
func (k FieldKind) IsReference() bool {
	return k == KindReference || k == KindReferenceList
}

// IsNested reports whether the field carries its own field definitions.
func (k FieldKind) IsNested() bool {
	return k == KindObject || k == KindObjectList
}

// Schema is the parsed schema document.
type Schema struct {
	Version string              `yaml:"version,omitempty"`
	Types   map[string]*TypeDef `yaml:"types"`
}

// TypeDef describes one record type.
type TypeDef struct {
	Name        string `yaml:"-"`
	Category    string `yaml:"category"`
	Description string `yaml:"description,omitempty"`
	Fields      Fields `yaml:"fields"`
}

// Fields is an ordered list of field definitions, written in YAML as a mapping
// from field name to definition.
type Fields []*FieldDef

// FieldDef describes one field of a record type or nested object.
type FieldDef struct {
	Name         string       `yaml:"-"`
	Kind         FieldKind    `yaml:"kind"`
	Default      DefaultValue `yaml:"-"`
	Values       []string     `yaml:"values,omitempty"`
	Min          *float64     `yaml:"min,omitempty"`
	Max          *float64     `yaml:"max,omitempty"`
	ExclusiveMin bool         `yaml:"exclusive_min,omitempty"`
	ExclusiveMax bool         `yaml:"exclusive_max,omitempty"`
	MinItems     *int         `yaml:"min_items,omitempty"`
	MaxItems     *int         `yaml:"max_items,omitempty"`
	// Reference is the target category a reference field points into.
	Reference string `yaml:"reference,omitempty"`
	// Strict references fail when unresolved; others are skipped with a warning.
	Strict bool `yaml:"strict,omitempty"`
	// ZeroIsUnset treats a supplied 0 as if the field were absent.
	ZeroIsUnset bool `yaml:"zero_is_unset,omitempty"`
	// Item is the record type of a record_list.
	Item   string `yaml:"item,omitempty"`
	Fields Fields `yaml:"fields,omitempty"`
}

// DefaultValue is a field's declared default. Set is false when the schema
// declares no default at all; a declared `null` leaves Set true and Value nil.
type DefaultValue struct {
	Set   bool
	Value any
}

// Required reports whether the field has no declared default.
func (f *FieldDef) Required() bool {
	return !f.Default.Set
}

// Allows reports whether v is one of the field's enumerated values or keywords.
func (f *FieldDef) Allows(v string) bool {
	return slices.Contains(f.Values, v)
}

// Get returns the field with the given name.
func (fs Fields) Get(name string) (*FieldDef, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}

// Names returns the field names in declaration order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}

	return names
}

// Type returns the definition of a record type.
func (s *Schema) Type(name string) (*TypeDef, bool) {
	if s == nil {
		return nil, false
	}

	td, ok := s.Types[name]

	return td, ok
}

// TypeNames returns every declared record type, sorted.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Field resolves a dotted field path such as "boundary_condition.view_factor".
func (td *TypeDef) Field(path string) (*FieldDef, bool) {
	fields := td.Fields

	var (
		field *FieldDef
		ok    bool
	)

	for _, part := range strings.Split(path, ".") {
		if field != nil {
			if !field.Kind.IsNested() {
				return nil, false
			}

			fields = field.Fields
		}

		field, ok = fields.Get(part)
		if !ok {
			return nil, false
		}
	}

	return field, field != nil
}
