package schema

// Defaults answers default-value lookups against a schema.
type Defaults struct {
	schema *Schema
}

// NewDefaults wraps a schema for default lookups.
func NewDefaults(s *Schema) *Defaults {
	return &Defaults{schema: s}
}

// Schema returns the underlying schema.
func (d *Defaults) Schema() *Schema {
	return d.schema
}

// DefaultFor returns the declared default of a field. The field may be a dotted
// path into nested objects. It reports false when the type or field is unknown,
// when the field is mandatory, and when the declared default is null.
func (d *Defaults) DefaultFor(typ, field string) (any, bool) {
	f, ok := d.Lookup(typ, field)
	if !ok || !f.Default.Set || f.Default.Value == nil {
		return nil, false
	}

	return f.Default.Value, true
}

// Lookup returns the definition of a field of a record type.
func (d *Defaults) Lookup(typ, field string) (*FieldDef, bool) {
	td, ok := d.schema.Type(typ)
	if !ok {
		return nil, false
	}

	return td.Field(field)
}

// Category returns the target category a record type materializes into.
func (d *Defaults) Category(typ string) (string, bool) {
	td, ok := d.schema.Type(typ)
	if !ok {
		return "", false
	}

	return td.Category, true
}
