package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/tidwall/gjson"

	"energymodel-translator/internal/common"
	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/match"
	"energymodel-translator/internal/record"
	"energymodel-translator/internal/schema"
)

// Diagnostic codes.
const (
	CodeTypeMismatch    = "type_mismatch"
	CodeRequiredMissing = "required_field_missing"
	CodeWrongKind       = "wrong_kind"
	CodeOutOfRange      = "out_of_range"
	CodeInvalidEnum     = "invalid_enum"
	CodeItemCount       = "item_count"
	CodeInvalidPoint    = "invalid_point"
	CodeEmptyName       = "empty_name"
	CodeUnknownField    = "unknown_field"
)

// Validator validates raw records against a schema.
type Validator struct {
	schema *schema.Schema
}

// New creates a validator for the given schema.
func New(s *schema.Schema) *Validator {
	return &Validator{schema: s}
}

// Validate checks raw against the declared fields of typ.
func (v *Validator) Validate(raw []byte, typ string) (*diagnostic.Diagnostics, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", record.ErrMalformed)
	}

	td, ok := v.schema.Type(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", record.ErrUnknownType, typ)
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object, got %s", record.ErrMalformed, root.Type)
	}

	w := &walker{
		schema: v.schema,
		res:    &diagnostic.Diagnostics{},
		entity: common.EntityKey(typ, root.Get("name").String()),
	}

	w.record(td, root, "")

	return w.res, nil
}

type walker struct {
	schema *schema.Schema
	res    *diagnostic.Diagnostics
	entity string
}

func (w *walker) errorf(code, path, format string, args ...any) {
	w.res.AddError(code, fmt.Sprintf(format, args...), w.entity, path)
}

// record validates one record object, top-level or nested.
func (w *walker) record(td *schema.TypeDef, obj gjson.Result, prefix string) {
	if got := obj.Get("type"); got.Exists() && got.String() != td.Name {
		w.errorf(CodeTypeMismatch, joinPath(prefix, "type"), "type %q does not match expected %q", got.String(), td.Name)
	}

	if name := obj.Get("name"); name.Type == gjson.String && name.String() == "" {
		w.errorf(CodeEmptyName, joinPath(prefix, "name"), "name must not be empty")
	}

	w.object(td.Fields, obj, prefix)
}

// object validates the members of obj against fields and warns about members
// that no field declares.
func (w *walker) object(fields schema.Fields, obj gjson.Result, prefix string) {
	members := map[string]gjson.Result{}
	var order []string

	obj.ForEach(func(key, value gjson.Result) bool {
		members[key.String()] = value
		order = append(order, key.String())

		return true
	})

	for _, f := range fields {
		path := joinPath(prefix, f.Name)

		value, ok := members[f.Name]
		if !ok || value.Type == gjson.Null {
			if f.Required() {
				w.errorf(CodeRequiredMissing, path, "required field %q is missing", f.Name)
			}

			continue
		}

		w.field(f, value, path)
	}

	known := fields.Names()

	sort.Strings(order)

	for _, key := range order {
		if _, ok := fields.Get(key); ok {
			continue
		}

		w.res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        CodeUnknownField,
			Message:     fmt.Sprintf("field %q is not declared by the schema", key),
			Entity:      w.entity,
			FieldPath:   joinPath(prefix, key),
			Suggestions: match.Suggest(key, known, match.DefaultMinScore, match.DefaultMaxSuggestions),
		})
	}
}

func (w *walker) field(f *schema.FieldDef, value gjson.Result, path string) {
	switch f.Kind {
	case schema.KindString:
		w.expect(value, gjson.String, "string", path)
	case schema.KindNumber, schema.KindInteger:
		w.number(f, value, path)
	case schema.KindBoolean:
		if value.Type != gjson.True && value.Type != gjson.False {
			w.errorf(CodeWrongKind, path, "expected boolean, got %s", describe(value))
		}
	case schema.KindEnum:
		w.enum(f, value, path)
	case schema.KindNumberOrKeyword:
		if value.Type == gjson.String {
			w.enum(f, value, path)
		} else {
			w.number(f, value, path)
		}
	case schema.KindReference:
		if w.expect(value, gjson.String, "name", path) && value.String() == "" {
			w.errorf(CodeEmptyName, path, "referenced name must not be empty")
		}
	case schema.KindEnumList, schema.KindNumberList, schema.KindPointList,
		schema.KindArray, schema.KindReferenceList, schema.KindObjectList, schema.KindRecordList:
		w.list(f, value, path)
	case schema.KindObject:
		if !value.IsObject() {
			w.errorf(CodeWrongKind, path, "expected object, got %s", describe(value))
			return
		}

		w.object(f.Fields, value, path)
	}
}

func (w *walker) list(f *schema.FieldDef, value gjson.Result, path string) {
	if !value.IsArray() {
		w.errorf(CodeWrongKind, path, "expected array, got %s", describe(value))
		return
	}

	items := value.Array()

	if f.MinItems != nil && len(items) < *f.MinItems {
		w.errorf(CodeItemCount, path, "expected at least %d items, got %d", *f.MinItems, len(items))
	}

	if f.MaxItems != nil && len(items) > *f.MaxItems {
		w.errorf(CodeItemCount, path, "expected at most %d items, got %d", *f.MaxItems, len(items))
	}

	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)

		switch f.Kind {
		case schema.KindEnumList:
			w.enum(f, item, itemPath)
		case schema.KindNumberList:
			w.number(f, item, itemPath)
		case schema.KindPointList:
			w.point(item, itemPath)
		case schema.KindReferenceList:
			if w.expect(item, gjson.String, "name", itemPath) && item.String() == "" {
				w.errorf(CodeEmptyName, itemPath, "referenced name must not be empty")
			}
		case schema.KindObjectList:
			if w.expectObject(item, itemPath) {
				w.object(f.Fields, item, itemPath)
			}
		case schema.KindRecordList:
			td, ok := w.schema.Type(f.Item)
			if ok && w.expectObject(item, itemPath) {
				w.record(td, item, itemPath)
			}
		}
	}
}

func (w *walker) number(f *schema.FieldDef, value gjson.Result, path string) {
	if !w.expect(value, gjson.Number, "number", path) {
		return
	}

	n := value.Float()

	if f.Kind == schema.KindInteger && n != math.Trunc(n) {
		w.errorf(CodeWrongKind, path, "expected integer, got %v", n)
		return
	}

	if msg := f.CheckRange(n); msg != "" {
		w.errorf(CodeOutOfRange, path, "%s", msg)
	}
}

func (w *walker) enum(f *schema.FieldDef, value gjson.Result, path string) {
	if !w.expect(value, gjson.String, "string", path) {
		return
	}

	s := value.String()
	if f.Allows(s) {
		return
	}

	w.res.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        CodeInvalidEnum,
		Message:     fmt.Sprintf("%q is not one of %v", s, f.Values),
		Entity:      w.entity,
		FieldPath:   path,
		Suggestions: match.Suggest(s, f.Values, match.DefaultMinScore, match.DefaultMaxSuggestions),
	})
}

func (w *walker) point(value gjson.Result, path string) {
	if !value.IsArray() {
		w.errorf(CodeInvalidPoint, path, "expected [x, y, z], got %s", describe(value))
		return
	}

	coords := value.Array()
	if len(coords) != 3 {
		w.errorf(CodeInvalidPoint, path, "expected 3 coordinates, got %d", len(coords))
		return
	}

	for _, c := range coords {
		if c.Type != gjson.Number {
			w.errorf(CodeInvalidPoint, path, "coordinate %s is not a number", describe(c))
			return
		}
	}
}

func (w *walker) expect(value gjson.Result, typ gjson.Type, what, path string) bool {
	if value.Type == typ {
		return true
	}

	w.errorf(CodeWrongKind, path, "expected %s, got %s", what, describe(value))

	return false
}

func (w *walker) expectObject(value gjson.Result, path string) bool {
	if value.IsObject() {
		return true
	}

	w.errorf(CodeWrongKind, path, "expected object, got %s", describe(value))

	return false
}

func describe(value gjson.Result) string {
	switch {
	case value.IsObject():
		return "object"
	case value.IsArray():
		return "array"
	case value.Type == gjson.True || value.Type == gjson.False:
		return "boolean"
	default:
		return value.Type.String()
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
