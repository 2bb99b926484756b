package engine

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/schema"
	"energymodel-translator/internal/target"
)

// probeModel is an in-memory model that records every Create call.
type probeModel struct {
	mock.Mock
	*target.Memory
}

func newProbe() *probeModel {
	p := &probeModel{Memory: target.NewMemory()}
	p.On("Create", mock.Anything)

	return p
}

func (p *probeModel) Create(kind target.Kind) (target.Object, error) {
	p.Called(kind)
	return p.Memory.Create(kind)
}

// createdKinds returns the kinds passed to Create, in call order.
func (p *probeModel) createdKinds() []target.Kind {
	var kinds []target.Kind

	for _, call := range p.Calls {
		if call.Method == "Create" {
			kinds = append(kinds, call.Arguments.Get(0).(target.Kind))
		}
	}

	return kinds
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	s, err := schema.Default()
	require.NoError(t, err)

	e, err := New(s, opts...)
	require.NoError(t, err)

	return e
}

func decode(t *testing.T, raw string) record.Record {
	t.Helper()

	rec, err := record.Decode([]byte(raw))
	require.NoError(t, err)

	return rec
}

// addAll decodes raw records and adds them to the session input.
func addAll(t *testing.T, s *Session, raws ...string) []record.Record {
	t.Helper()

	recs := make([]record.Record, len(raws))

	for i, raw := range raws {
		recs[i] = decode(t, raw)

		added, err := s.Add(recs[i])
		require.NoError(t, err)
		require.True(t, added, "record %d was not added", i)
	}

	return recs
}

func attr(t *testing.T, obj target.Object, a target.Attr) any {
	t.Helper()

	v, ok := obj.Attr(a)
	require.True(t, ok, "attribute %s is not set:\n%s", a, spew.Sdump(obj))

	return v
}

func names(objs []target.Object) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Name()
	}

	return out
}

const (
	matA = `{"type": "EnergyMaterial", "name": "Mat A", "thickness": 0.1, "conductivity": 1.2, "density": 2000, "specific_heat": 900}`
	matB = `{"type": "EnergyMaterialNoMass", "name": "Mat B", "r_value": 2.5}`

	roof1 = `{"type": "OpaqueConstructionAbridged", "name": "Roof1", "layers": ["Mat A", "Mat B"]}`
)
