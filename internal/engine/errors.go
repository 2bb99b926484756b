package engine

import (
	"errors"
	"fmt"
	"strings"

	"energymodel-translator/internal/common"
	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/record"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrTargetCreation      = errors.New("target creation failed")
	ErrCyclicReference     = errors.New("cyclic reference")
	ErrMissingField        = errors.New("missing mandatory field")

	// ErrDepthExceeded is the cause of an ErrCyclicReference raised by the
	// nesting limit rather than by a revisited entity.
	ErrDepthExceeded = errors.New("depth limit exceeded")
)

// Error is a materialization failure of one entity. It unwraps to both its
// Kind sentinel and its cause, so errors.Is sees the whole chain from a
// failing material up to the face that needed it.
type Error struct {
	Kind error
	Type record.Type
	Name string
	// Field is the dotted path of the field involved, if any.
	Field string
	// Ref is the referenced name for reference failures.
	Ref         string
	Suggestions []string
	// Diagnostics holds the validation report for ErrValidation.
	Diagnostics *diagnostic.Diagnostics
	Err         error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(common.EntityKey(string(e.Type), e.Name))

	if e.Field != "" {
		b.WriteString(" ")
		b.WriteString(e.Field)
	}

	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	if e.Ref != "" {
		fmt.Fprintf(&b, " %q", e.Ref)
	}

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}

		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoted, ", "))
	}

	if e.Diagnostics != nil && e.Diagnostics.HasErrors() {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Diagnostics.ErrorMessages(), "; "))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func newError(kind error, rec record.Record, field string, cause error) *Error {
	e := &Error{Kind: kind, Field: field, Err: cause}
	if rec != nil {
		e.Type = rec.RecordType()
		e.Name = rec.RecordName()
	}

	return e
}
