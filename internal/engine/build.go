package engine

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/schema"
	"energymodel-translator/internal/target"
)

// Build is the context a Resolver works in: the record's schema type, its
// resolved references, the parent object for nested records, and the objects
// created so far for rollback.
type Build struct {
	session *Session
	rec     record.Record
	typ     *schema.TypeDef
	parent  target.Object
	refs    map[string][]target.Object
	created []target.Object
}

// Record returns the record being materialized.
func (b *Build) Record() record.Record {
	return b.rec
}

// Parent returns the object a nested record is attached to.
func (b *Build) Parent() (target.Object, bool) {
	return b.parent, b.parent != nil
}

// Ref returns the first resolved object of a reference field.
func (b *Build) Ref(field string) (target.Object, bool) {
	refs := b.refs[field]
	if len(refs) == 0 {
		return nil, false
	}

	return refs[0], true
}

// Refs returns every resolved object of a reference field, in declared order.
func (b *Build) Refs(field string) []target.Object {
	return b.refs[field]
}

// Create adds a named object of the given kind to the model. The object is
// removed again if the entity fails later on.
func (b *Build) Create(kind target.Kind, name string) (target.Object, error) {
	obj, err := b.session.model.Create(kind)
	if err != nil {
		return nil, b.targetErr("", err)
	}

	b.created = append(b.created, obj)

	if err := obj.SetName(name); err != nil {
		return nil, b.targetErr("name", err)
	}

	return obj, nil
}

// Set starts a batch of attribute assignments on obj.
func (b *Build) Set(obj target.Object) *Setter {
	return &Setter{b: b, obj: obj}
}

// Float returns the record value, else the schema default. ok is false when
// the field is optional with a null default. Fields declared zero_is_unset
// treat a supplied 0 as absent.
func (b *Build) Float(field string, v *float64) (value float64, ok bool, err error) {
	def, err := b.field(field)
	if err != nil {
		return 0, false, err
	}

	if v != nil && !(def.ZeroIsUnset && *v == 0) {
		return *v, true, nil
	}

	d, ok, err := b.fallback(def, field)
	if !ok || err != nil {
		return 0, false, err
	}

	f, isNum := d.(float64)
	if !isNum {
		return 0, false, b.schemaErr(field, fmt.Errorf("default %v is not a number", d))
	}

	return f, true, nil
}

// Text returns the record value, else the schema default.
func (b *Build) Text(field string, v *string) (value string, ok bool, err error) {
	def, err := b.field(field)
	if err != nil {
		return "", false, err
	}

	if v != nil {
		return *v, true, nil
	}

	d, ok, err := b.fallback(def, field)
	if !ok || err != nil {
		return "", false, err
	}

	s, isStr := d.(string)
	if !isStr {
		return "", false, b.schemaErr(field, fmt.Errorf("default %v is not a string", d))
	}

	return s, true, nil
}

// Flag returns the record value, else the schema default.
func (b *Build) Flag(field string, v *bool) (value, ok bool, err error) {
	def, err := b.field(field)
	if err != nil {
		return false, false, err
	}

	if v != nil {
		return *v, true, nil
	}

	d, ok, err := b.fallback(def, field)
	if !ok || err != nil {
		return false, false, err
	}

	f, isBool := d.(bool)
	if !isBool {
		return false, false, b.schemaErr(field, fmt.Errorf("default %v is not a boolean", d))
	}

	return f, true, nil
}

// Quantity returns the record value, else the schema default.
func (b *Build) Quantity(field string, v *record.Quantity) (value record.Quantity, ok bool, err error) {
	def, err := b.field(field)
	if err != nil {
		return record.Quantity{}, false, err
	}

	if v != nil {
		return *v, true, nil
	}

	d, ok, err := b.fallback(def, field)
	if !ok || err != nil {
		return record.Quantity{}, false, err
	}

	q, err := record.QuantityOf(d)
	if err != nil {
		return record.Quantity{}, false, b.schemaErr(field, err)
	}

	return q, true, nil
}

func (b *Build) field(path string) (*schema.FieldDef, error) {
	def, ok := b.typ.Field(path)
	if !ok {
		return nil, b.schemaErr(path, errors.New("field is not declared"))
	}

	return def, nil
}

// fallback returns the schema default of an absent field.
func (b *Build) fallback(def *schema.FieldDef, path string) (any, bool, error) {
	if def.Required() {
		return nil, false, newError(ErrMissingField, b.rec, path, nil)
	}

	d, ok := b.session.engine.defaults.DefaultFor(b.typ.Name, path)

	return d, ok, nil
}

func (b *Build) targetErr(field string, err error) error {
	return newError(ErrTargetCreation, b.rec, field, err)
}

func (b *Build) schemaErr(field string, err error) error {
	return newError(ErrValidation, b.rec, field, err)
}

// Setter applies attributes to one object and collects every failure, so a
// resolver can run its whole mapping and report all problems at once.
type Setter struct {
	b   *Build
	obj target.Object
	err error
}

// Number sets attr from a numeric field, falling back to the schema default.
// Optional fields without a default are left unset.
func (s *Setter) Number(attr target.Attr, field string, v *float64) {
	f, ok, err := s.b.Float(field, v)
	s.apply(attr, field, f, ok, err)
}

// Text sets attr from a string or enum field, falling back to the schema default.
func (s *Setter) Text(attr target.Attr, field string, v *string) {
	t, ok, err := s.b.Text(field, v)
	s.apply(attr, field, t, ok, err)
}

// Flag sets attr from a boolean field, falling back to the schema default.
func (s *Setter) Flag(attr target.Attr, field string, v *bool) {
	f, ok, err := s.b.Flag(field, v)
	s.apply(attr, field, f, ok, err)
}

// Value sets attr to a computed value.
func (s *Setter) Value(attr target.Attr, value any) {
	s.apply(attr, "", value, true, nil)
}

// Autosize defers attr to the simulation engine's sizing.
func (s *Setter) Autosize(attr target.Attr) {
	if err := s.obj.Autosize(attr); err != nil {
		s.fail(s.b.targetErr("", err))
	}
}

// Fail records an error produced outside the setter.
func (s *Setter) Fail(err error) {
	s.fail(err)
}

// Err returns every collected failure, or nil.
func (s *Setter) Err() error {
	return s.err
}

func (s *Setter) apply(attr target.Attr, field string, value any, ok bool, err error) {
	if err != nil {
		s.fail(err)
		return
	}

	if !ok {
		return
	}

	if err := s.obj.SetAttr(attr, value); err != nil {
		s.fail(s.b.targetErr(field, err))
	}
}

func (s *Setter) fail(err error) {
	s.err = multierr.Append(s.err, err)
}
