package engine

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

// Outcome is the result of one top-level input record.
type Outcome struct {
	Entry  record.Entry
	Object target.Object
	// Skipped is set for duplicate names that lost to an earlier definition.
	Skipped bool
	Err     error
}

// Result is the outcome of a batch translation.
type Result struct {
	Outcomes    []Outcome
	Diagnostics diagnostic.Diagnostics
}

// Objects returns the materialized top-level objects in input order.
func (r *Result) Objects() []target.Object {
	var out []target.Object

	for _, o := range r.Outcomes {
		if o.Object != nil {
			out = append(out, o.Object)
		}
	}

	return out
}

// Failed returns the outcomes that did not materialize.
func (r *Result) Failed() []Outcome {
	var out []Outcome

	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}

	return out
}

// Err combines every per-record failure, or returns nil.
func (r *Result) Err() error {
	var err error
	for _, o := range r.Outcomes {
		err = multierr.Append(err, o.Err)
	}

	return err
}

type candidate struct {
	index int
	rec   record.Record
}

// Translate validates, decodes and materializes every record of an input
// document into model. Records that fail do not stop the batch; their errors
// are reported per outcome. The returned error is set only when the document
// cannot be read at all, or when its single record failed.
func (e *Engine) Translate(model target.Model, raw []byte) (*Result, error) {
	entries, err := record.Split(raw)
	if err != nil {
		return nil, err
	}

	res := &Result{Outcomes: make([]Outcome, len(entries))}
	session := e.NewSession(model)

	var queue []candidate

	for i, entry := range entries {
		res.Outcomes[i].Entry = entry

		rec, err := e.decodeEntry(entry, &res.Diagnostics)
		if err != nil {
			res.Outcomes[i].Err = err
			session.Fail(entry.Type, entry.Name, err)

			continue
		}

		added, err := session.Add(rec)
		if err != nil {
			res.Outcomes[i].Err = err
			continue
		}

		if !added {
			res.Outcomes[i].Skipped = true
			continue
		}

		queue = append(queue, candidate{index: i, rec: rec})
	}

	for _, c := range queue {
		obj, err := session.Materialize(c.rec.RecordType(), c.rec)
		if err != nil {
			res.Outcomes[c.index].Err = err
			continue
		}

		res.Outcomes[c.index].Object = obj
	}

	res.Diagnostics.Merge(*session.Diagnostics())

	e.logger.Info("translated input",
		zap.Int("records", len(entries)),
		zap.Int("objects", len(res.Objects())),
		zap.Int("failed", len(res.Failed())),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	if len(entries) == 1 && res.Outcomes[0].Err != nil {
		return res, res.Outcomes[0].Err
	}

	return res, nil
}

// decodeEntry validates one raw record and decodes it. Validation warnings go
// to diags; validation errors fail the record.
func (e *Engine) decodeEntry(entry record.Entry, diags *diagnostic.Diagnostics) (record.Record, error) {
	if entry.Type == "" {
		return nil, &Error{Kind: ErrMissingField, Name: entry.Name, Field: "type"}
	}

	report, err := e.validator.Validate(entry.Raw, string(entry.Type))
	if err != nil {
		return nil, &Error{Kind: ErrValidation, Type: entry.Type, Name: entry.Name, Err: err}
	}

	diags.Warnings = append(diags.Warnings, report.Warnings...)

	if report.HasErrors() {
		return nil, &Error{Kind: ErrValidation, Type: entry.Type, Name: entry.Name, Diagnostics: report}
	}

	rec, err := record.Decode(entry.Raw)
	if err != nil {
		return nil, &Error{Kind: ErrValidation, Type: entry.Type, Name: entry.Name, Err: err}
	}

	if rec.RecordName() == "" {
		return nil, &Error{Kind: ErrMissingField, Type: entry.Type, Name: entry.Name, Field: "name", Err: errors.New("name is empty")}
	}

	return rec, nil
}
