package schema

import (
	"fmt"

	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/target"
)

// Validate checks the schema document for internal consistency: known field
// kinds and categories, defaults that satisfy their own constraints, and
// references to categories and record types that exist.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	if len(s.Types) == 0 {
		res.AddWarning("no_types", "schema declares no record types", "", "")
	}

	for _, name := range s.TypeNames() {
		td := s.Types[name]

		if _, ok := target.ParseCategory(td.Category); !ok {
			res.AddError("unknown_category", fmt.Sprintf("unknown category %q", td.Category), name, "category")
		}

		if _, ok := td.Fields.Get("name"); !ok {
			res.AddError("missing_name_field", "record types must declare a name field", name, "")
		}

		validateFields(res, s, name, "", td.Fields)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, s *Schema, typ, prefix string, fields Fields) {
	seen := map[string]struct{}{}

	for _, f := range fields {
		path := joinPath(prefix, f.Name)

		if _, dup := seen[f.Name]; dup {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), typ, path)
			continue
		}

		seen[f.Name] = struct{}{}

		validateField(res, s, typ, path, f)
	}
}

func validateField(res *diagnostic.Diagnostics, s *Schema, typ, path string, f *FieldDef) {
	if !f.Kind.IsValid() {
		res.AddError("unknown_field_kind", fmt.Sprintf("unknown field kind %q", f.Kind), typ, path)
		return
	}

	switch f.Kind {
	case KindEnum, KindEnumList, KindNumberOrKeyword:
		if len(f.Values) == 0 {
			res.AddError("missing_values", fmt.Sprintf("%s field needs values", f.Kind), typ, path)
		}
	case KindReference, KindReferenceList:
		if _, ok := target.ParseCategory(f.Reference); !ok {
			res.AddError("unknown_reference_category",
				fmt.Sprintf("reference category %q does not exist", f.Reference), typ, path)
		}
	case KindRecordList:
		if _, ok := s.Type(f.Item); !ok {
			res.AddError("unknown_item_type", fmt.Sprintf("item type %q is not declared", f.Item), typ, path)
		}
	case KindObject, KindObjectList:
		if len(f.Fields) == 0 {
			res.AddError("missing_fields", fmt.Sprintf("%s field needs nested fields", f.Kind), typ, path)
		}

		validateFields(res, s, typ, path, f.Fields)
	}

	if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
		res.AddError("invalid_bounds", fmt.Sprintf("min %v exceeds max %v", *f.Min, *f.Max), typ, path)
	}

	if f.MinItems != nil && f.MaxItems != nil && *f.MinItems > *f.MaxItems {
		res.AddError("invalid_bounds",
			fmt.Sprintf("min_items %d exceeds max_items %d", *f.MinItems, *f.MaxItems), typ, path)
	}

	if f.ZeroIsUnset && f.Kind != KindNumber && f.Kind != KindInteger {
		res.AddError("invalid_zero_is_unset", "zero_is_unset only applies to numeric fields", typ, path)
	}

	if f.Default.Set && f.Default.Value != nil {
		if msg := checkDefault(f); msg != "" {
			res.AddError("invalid_default", msg, typ, path)
		}
	}
}

// checkDefault returns a message when the declared default violates the field's
// own constraints.
func checkDefault(f *FieldDef) string {
	v := f.Default.Value

	switch f.Kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("default %v is not a string", v)
		}
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("default %v is not a boolean", v)
		}
	case KindEnum:
		s, ok := v.(string)
		if !ok || !f.Allows(s) {
			return fmt.Sprintf("default %v is not one of %v", v, f.Values)
		}
	case KindNumber, KindInteger:
		n, ok := v.(float64)
		if !ok {
			return fmt.Sprintf("default %v is not a number", v)
		}

		return f.CheckRange(n)
	case KindNumberOrKeyword:
		switch t := v.(type) {
		case string:
			if !f.Allows(t) {
				return fmt.Sprintf("default %q is not one of %v", t, f.Values)
			}
		case float64:
			return f.CheckRange(t)
		default:
			return fmt.Sprintf("default %v is neither a number nor a keyword", v)
		}
	case KindReference:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("default %v is not a name", v)
		}
	}

	return ""
}

// CheckRange returns a message when n falls outside the field's bounds.
func (f *FieldDef) CheckRange(n float64) string {
	if f.Min != nil {
		if f.ExclusiveMin && n <= *f.Min {
			return fmt.Sprintf("%v must be greater than %v", n, *f.Min)
		}

		if !f.ExclusiveMin && n < *f.Min {
			return fmt.Sprintf("%v must be at least %v", n, *f.Min)
		}
	}

	if f.Max != nil {
		if f.ExclusiveMax && n >= *f.Max {
			return fmt.Sprintf("%v must be less than %v", n, *f.Max)
		}

		if !f.ExclusiveMax && n > *f.Max {
			return fmt.Sprintf("%v must be at most %v", n, *f.Max)
		}
	}

	return ""
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
