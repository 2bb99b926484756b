package engine

import (
	"fmt"

	"go.uber.org/zap"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/schema"
	"energymodel-translator/internal/target"
	"energymodel-translator/internal/validate"
)

// Resolver creates the target object of one record type.
type Resolver interface {
	Materialize(b *Build, rec record.Record) (target.Object, error)
}

// ResolverFunc adapts a function over a concrete record type to a Resolver.
type ResolverFunc[R record.Record] func(b *Build, rec R) (target.Object, error)

// Materialize implements Resolver.
func (f ResolverFunc[R]) Materialize(b *Build, rec record.Record) (target.Object, error) {
	r, ok := rec.(R)
	if !ok {
		return nil, newError(ErrTypeMismatch, rec, "", fmt.Errorf("resolver does not accept %T", rec))
	}

	return f(b, r)
}

// Engine holds the schema, the resolvers and the configuration shared by
// every session.
type Engine struct {
	schema    *schema.Schema
	defaults  *schema.Defaults
	validator *validate.Validator
	resolvers map[record.Type]Resolver
	config    Config
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(e *Engine) { e.config = c }
}

// WithResolver registers or replaces the resolver of a record type.
func WithResolver(t record.Type, r Resolver) Option {
	return func(e *Engine) { e.resolvers[t] = r }
}

// New creates an engine for the given schema. The schema must validate.
func New(s *schema.Schema, opts ...Option) (*Engine, error) {
	if res := schema.Validate(s); res.HasErrors() {
		return nil, fmt.Errorf("invalid schema: %w", res.Error())
	}

	e := &Engine{
		schema:    s,
		defaults:  schema.NewDefaults(s),
		validator: validate.New(s),
		resolvers: defaultResolvers(),
		config:    DefaultConfig(),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Defaults returns the schema default lookup used by the engine.
func (e *Engine) Defaults() *schema.Defaults {
	return e.defaults
}

// Validator returns the record validator used by Translate.
func (e *Engine) Validator() *validate.Validator {
	return e.validator
}

// NewSession starts a session against the given model.
func (e *Engine) NewSession(model target.Model) *Session {
	return &Session{
		engine:   e,
		model:    model,
		registry: NewRegistry(model),
		pending:  make(map[entityKey]record.Record),
		visiting: make(map[entityKey]struct{}),
		failed:   make(map[entityKey]error),
		log:      e.logger,
	}
}

// category returns the target category a record type materializes into.
func (e *Engine) category(t record.Type) (*schema.TypeDef, target.Category, bool) {
	td, ok := e.schema.Type(string(t))
	if !ok {
		return nil, target.CategoryInvalid, false
	}

	cat, ok := target.ParseCategory(td.Category)

	return td, cat, ok
}

func defaultResolvers() map[record.Type]Resolver {
	return map[record.Type]Resolver{
		record.TypeEnergyMaterial:                    ResolverFunc[*record.EnergyMaterial](opaqueMaterial),
		record.TypeEnergyMaterialNoMass:              ResolverFunc[*record.EnergyMaterialNoMass](masslessMaterial),
		record.TypeEnergyWindowMaterialGas:           ResolverFunc[*record.EnergyWindowMaterialGas](gasMaterial),
		record.TypeEnergyWindowMaterialGasCustom:     ResolverFunc[*record.EnergyWindowMaterialGasCustom](customGasMaterial),
		record.TypeEnergyWindowMaterialGasMixture:    ResolverFunc[*record.EnergyWindowMaterialGasMixture](gasMixtureMaterial),
		record.TypeEnergyWindowMaterialSimpleGlazSys: ResolverFunc[*record.EnergyWindowMaterialSimpleGlazSys](simpleGlazing),
		record.TypeEnergyWindowMaterialGlazing:       ResolverFunc[*record.EnergyWindowMaterialGlazing](standardGlazing),
		record.TypeEnergyWindowMaterialBlind:         ResolverFunc[*record.EnergyWindowMaterialBlind](blindMaterial),
		record.TypeEnergyWindowMaterialShade:         ResolverFunc[*record.EnergyWindowMaterialShade](shadeMaterial),
		record.TypeOpaqueConstructionAbridged:        ResolverFunc[*record.OpaqueConstructionAbridged](opaqueConstruction),
		record.TypeWindowConstructionAbridged:        ResolverFunc[*record.WindowConstructionAbridged](windowConstruction),
		record.TypeAirBoundaryConstructionAbridged:   ResolverFunc[*record.AirBoundaryConstructionAbridged](airBoundaryConstruction),
		record.TypeScheduleTypeLimit:                 ResolverFunc[*record.ScheduleTypeLimit](scheduleTypeLimit),
		record.TypeScheduleRulesetAbridged:           ResolverFunc[*record.ScheduleRulesetAbridged](scheduleRuleset),
		record.TypeFace:                              ResolverFunc[*record.Face](face),
		record.TypeAperture:                          ResolverFunc[*record.Aperture](aperture),
		record.TypeDoor:                              ResolverFunc[*record.Door](door),
		record.TypeIdealAirSystemAbridged:            ResolverFunc[*record.IdealAirSystemAbridged](idealAirSystem),
	}
}
