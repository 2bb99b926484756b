package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"energymodel-translator/internal/common"
)

// Diagnostics collects the findings of validating a schema or a record, and
// the warnings raised while translating a batch.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one finding.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a stable identifier such as "out_of_range" or "duplicate_name".
	Code    string
	Message string
	// Entity is the "Type:Name" of the record concerned, if any.
	Entity string
	// FieldPath is the dotted path of the field concerned, if any.
	FieldPath string
	// Suggestions are did-you-mean candidates.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error about entity and fieldPath, either may be empty.
func (d *Diagnostics) AddError(code, message, entity, fieldPath string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Entity: entity, FieldPath: fieldPath})
}

// AddWarning records a warning about entity and fieldPath, either may be empty.
func (d *Diagnostics) AddWarning(code, message, entity, fieldPath string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Entity: entity, FieldPath: fieldPath})
}

// Add appends diag to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid reports whether there are no errors. Warnings do not count.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Len returns the number of findings of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

func (d *Diagnostics) ErrorMessages() []string {
	return messages(d.Errors)
}

func (d *Diagnostics) WarningMessages() []string {
	return messages(d.Warnings)
}

// Error joins every error finding into one error, or returns nil.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	return errors.New(strings.Join(d.ErrorMessages(), "; "))
}

func messages(list []Diagnostic) []string {
	if len(list) == 0 {
		return nil
	}

	out := make([]string, len(list))
	for i, diag := range list {
		out[i] = diag.String()
	}

	return out
}

// String formats the finding as "[Entity] field: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Entity != "" {
		fmt.Fprintf(&b, "[%s] ", d.Entity)
	}

	if d.FieldPath != "" {
		b.WriteString(d.FieldPath)
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		quoted := make([]string, len(d.Suggestions))
		for i, s := range d.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}

		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoted, ", "))
	}

	return b.String()
}
