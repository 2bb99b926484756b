package engine

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"energymodel-translator/internal/common"
	"energymodel-translator/internal/diagnostic"
	"energymodel-translator/internal/match"
	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

// Session materializes records into one target model. A session is not safe
// for concurrent use.
type Session struct {
	engine   *Engine
	model    target.Model
	registry *Registry
	// pending holds the input records that references may materialize on demand.
	pending  map[entityKey]record.Record
	visiting map[entityKey]struct{}
	// failed remembers entities that could not be materialized in this session.
	failed map[entityKey]error
	diags  diagnostic.Diagnostics
	log    *zap.Logger
}

// Registry returns the session registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Diagnostics returns the warnings collected while materializing.
func (s *Session) Diagnostics() *diagnostic.Diagnostics {
	return &s.diags
}

// Add makes rec available to references by name. For deduplicated categories
// it reports false, with a warning, when another record of the same category
// and name was added first. Records of other categories are always accepted
// and are not reachable by reference.
func (s *Session) Add(rec record.Record) (bool, error) {
	_, cat, ok := s.engine.category(rec.RecordType())
	if !ok {
		return false, newError(ErrValidation, rec, "type", fmt.Errorf("%w: %q", record.ErrUnknownType, rec.RecordType()))
	}

	if !s.engine.config.deduplicates(cat) {
		return true, nil
	}

	key := entityKey{cat, rec.RecordName()}
	if s.claimed(key) {
		s.warnDuplicate(rec)
		return false, nil
	}

	s.pending[key] = rec

	return true, nil
}

// Fail marks the named entity as failed so later references fail fast with err.
// It is a no-op for categories that are not deduplicated.
func (s *Session) Fail(typ record.Type, name string, err error) bool {
	_, cat, ok := s.engine.category(typ)
	if !ok || !s.engine.config.deduplicates(cat) {
		return false
	}

	key := entityKey{cat, name}
	if s.claimed(key) {
		return false
	}

	s.failed[key] = err

	return true
}

func (s *Session) claimed(key entityKey) bool {
	if _, ok := s.pending[key]; ok {
		return true
	}

	_, ok := s.failed[key]

	return ok
}

func (s *Session) warnDuplicate(rec record.Record) {
	entity := common.EntityKey(string(rec.RecordType()), rec.RecordName())

	s.diags.AddWarning("duplicate_name",
		fmt.Sprintf("%q is defined more than once; the first definition is used", rec.RecordName()), entity, "name")
	s.log.Warn("duplicate record name", zap.String("entity", entity))
}

// Materialize resolves rec into a target object. rec must be of the expected
// type.
func (s *Session) Materialize(expected record.Type, rec record.Record) (target.Object, error) {
	if rec == nil {
		return nil, &Error{Kind: ErrMissingField, Type: expected, Err: errors.New("record is nil")}
	}

	obj, _, err := s.materialize(expected, rec, nil, 0)

	return obj, err
}

// materialize returns the object and, for newly created entities, every object
// created for it including its children.
func (s *Session) materialize(expected record.Type, rec record.Record, parent target.Object, depth int) (target.Object, []target.Object, error) {
	if rec.RecordType() != expected {
		return nil, nil, newError(ErrTypeMismatch, rec, "type",
			fmt.Errorf("got %q, expected %q", rec.RecordType(), expected))
	}

	td, cat, ok := s.engine.category(expected)
	if !ok {
		return nil, nil, newError(ErrValidation, rec, "type", fmt.Errorf("%w: %q", record.ErrUnknownType, expected))
	}

	name := rec.RecordName()
	if name == "" {
		return nil, nil, newError(ErrMissingField, rec, "name", nil)
	}

	key := entityKey{cat, name}
	dedup := s.engine.config.deduplicates(cat)
	entity := zap.String("entity", common.EntityKey(string(expected), name))

	if dedup {
		if obj, ok := s.registry.Lookup(cat, name); ok {
			s.log.Debug("reusing existing object", entity)
			return obj, nil, nil
		}

		if err, ok := s.failed[key]; ok {
			return nil, nil, err
		}
	}

	if _, ok := s.visiting[key]; ok {
		return nil, nil, newError(ErrCyclicReference, rec, "", nil)
	}

	if limit := s.engine.config.MaxDepth; limit > 0 && depth > limit {
		return nil, nil, newError(ErrCyclicReference, rec, "", fmt.Errorf("%w: nesting exceeds %d levels", ErrDepthExceeded, limit))
	}

	s.visiting[key] = struct{}{}
	defer delete(s.visiting, key)

	b := &Build{session: s, rec: rec, typ: td, parent: parent, refs: map[string][]target.Object{}}

	obj, err := s.build(b, depth)
	if err != nil {
		s.rollback(b.created)

		if dedup {
			s.failed[key] = err
		}

		s.log.Debug("materialization failed", entity, zap.Error(err))

		return nil, nil, err
	}

	if dedup {
		s.registry.Register(cat, obj)
	}

	s.log.Debug("created object", entity, zap.Stringer("kind", obj.Kind()))

	return obj, b.created, nil
}

func (s *Session) build(b *Build, depth int) (target.Object, error) {
	rec := b.rec

	for _, ref := range rec.References() {
		if err := s.resolveRef(b, ref, depth); err != nil {
			return nil, err
		}
	}

	resolver, ok := s.engine.resolvers[rec.RecordType()]
	if !ok {
		return nil, newError(ErrTargetCreation, rec, "", fmt.Errorf("no resolver for %q", rec.RecordType()))
	}

	obj, err := resolver.Materialize(b, rec)
	if err != nil {
		return nil, err
	}

	if obj == nil {
		return nil, newError(ErrTargetCreation, rec, "", errors.New("resolver returned no object"))
	}

	for _, child := range rec.Children() {
		expected, ok := record.DeclaredType(child)
		if !ok {
			expected = child.RecordType()
		}

		_, created, err := s.materialize(expected, child, obj, depth+1)
		if err != nil {
			return nil, err
		}

		b.created = append(b.created, created...)
	}

	return obj, nil
}

// resolveRef resolves one reference of b's record into b.refs.
func (s *Session) resolveRef(b *Build, ref record.Reference, depth int) error {
	field, ok := b.typ.Field(ref.Field)
	if !ok || !field.Kind.IsReference() {
		return newError(ErrValidation, b.rec, ref.Field, errors.New("field is not a declared reference"))
	}

	cat, ok := target.ParseCategory(field.Reference)
	if !ok {
		return newError(ErrValidation, b.rec, ref.Field, fmt.Errorf("unknown reference category %q", field.Reference))
	}

	mandatory := field.Required() || field.Strict

	obj, err := s.lookupOrMaterialize(cat, ref.Name, depth)
	if err == nil && obj == nil {
		err = &Error{
			Kind:        ErrUnresolvedReference,
			Type:        b.rec.RecordType(),
			Name:        b.rec.RecordName(),
			Field:       ref.Field,
			Ref:         ref.Name,
			Suggestions: s.suggest(cat, ref.Name),
		}
	} else if err != nil {
		err = &Error{
			Kind:  ErrUnresolvedReference,
			Type:  b.rec.RecordType(),
			Name:  b.rec.RecordName(),
			Field: ref.Field,
			Ref:   ref.Name,
			Err:   err,
		}
	}

	if err == nil {
		b.refs[ref.Field] = append(b.refs[ref.Field], obj)
		return nil
	}

	if mandatory {
		return err
	}

	entity := common.EntityKey(string(b.rec.RecordType()), b.rec.RecordName())
	s.diags.AddWarning("unresolved_optional_reference", err.Error(), entity, ref.Field)
	s.log.Warn("skipping unresolved optional reference",
		zap.String("entity", entity), zap.String("field", ref.Field), zap.String("ref", ref.Name))

	return nil
}

// lookupOrMaterialize returns (nil, nil) when name is neither registered nor
// pending.
func (s *Session) lookupOrMaterialize(cat target.Category, name string, depth int) (target.Object, error) {
	if obj, ok := s.registry.Lookup(cat, name); ok {
		return obj, nil
	}

	key := entityKey{cat, name}

	if err, ok := s.failed[key]; ok {
		return nil, err
	}

	rec, ok := s.pending[key]
	if !ok {
		return nil, nil
	}

	obj, _, err := s.materialize(rec.RecordType(), rec, nil, depth+1)

	return obj, err
}

func (s *Session) suggest(cat target.Category, name string) []string {
	known := s.registry.Names(cat)

	for key := range s.pending {
		if key.category == cat && !slices.Contains(known, key.name) {
			known = append(known, key.name)
		}
	}

	cfg := s.engine.config

	return match.Suggest(name, known, cfg.MinSuggestionScore, cfg.MaxSuggestions)
}

// rollback removes objects created for a failed entity, newest first.
func (s *Session) rollback(created []target.Object) {
	if len(created) == 0 {
		return
	}

	for _, obj := range slices.Backward(created) {
		if err := s.model.Remove(obj); err != nil {
			s.log.Warn("rollback failed", zap.String("object", obj.Name()), zap.Error(err))
		}
	}

	s.registry.forget(created)
}
