package target

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNamed(t *testing.T, m *Memory, kind Kind, name string) Object {
	t.Helper()

	obj, err := m.Create(kind)
	require.NoError(t, err)
	require.NoError(t, obj.SetName(name))

	return obj
}

func TestMemory_FindByCategory(t *testing.T) {
	m := NewMemory()
	newNamed(t, m, KindStandardOpaqueMaterial, "Concrete")
	newNamed(t, m, KindGas, "Argon Gap")

	obj, ok := m.Find(CategoryMaterial, "Argon Gap")
	require.True(t, ok)
	assert.Equal(t, KindGas, obj.Kind())

	_, ok = m.Find(CategoryConstruction, "Concrete")
	assert.False(t, ok)

	_, ok = m.Find(CategoryMaterial, "")
	assert.False(t, ok)
}

func TestMemory_CreateRejectsInvalidKind(t *testing.T) {
	m := NewMemory()

	_, err := m.Create(Kind(0))
	require.ErrorIs(t, err, ErrInvalidKind)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_HandlesAreUnique(t *testing.T) {
	m := NewMemory()
	a := newNamed(t, m, KindConstruction, "A")
	b := newNamed(t, m, KindConstruction, "A")

	assert.NotEqual(t, a.Handle(), b.Handle())
	assert.Len(t, m.Objects(KindConstruction), 2)
}

func TestMemory_SetAttrValidation(t *testing.T) {
	m := NewMemory()
	mat := newNamed(t, m, KindStandardOpaqueMaterial, "Concrete")

	require.NoError(t, mat.SetAttr(AttrThickness, 0.2))
	require.NoError(t, mat.SetAttr(AttrRoughness, "MediumRough"))

	v, ok := mat.Attr(AttrThickness)
	require.True(t, ok)
	assert.Equal(t, 0.2, v)

	assert.ErrorIs(t, mat.SetAttr(AttrGasType, "Air"), ErrUnsupportedAttr)
	assert.ErrorIs(t, mat.SetAttr(AttrRoughness, "Bumpy"), ErrInvalidValue)
	assert.ErrorIs(t, mat.SetAttr(AttrThickness, "thick"), ErrInvalidValue)
	assert.ErrorIs(t, mat.SetAttr(AttrThickness, math.NaN()), ErrInvalidValue)
	assert.ErrorIs(t, mat.SetName(""), ErrInvalidValue)
}

func TestMemory_ObjectAttrChecksCategory(t *testing.T) {
	m := NewMemory()
	surface := newNamed(t, m, KindSurface, "Wall 1")
	mat := newNamed(t, m, KindStandardOpaqueMaterial, "Concrete")
	cons := newNamed(t, m, KindConstruction, "Wall Construction")

	assert.ErrorIs(t, surface.SetAttr(AttrConstruction, mat), ErrInvalidValue)
	require.NoError(t, surface.SetAttr(AttrConstruction, cons))

	other := NewMemory()
	foreign := newNamed(t, other, KindConstruction, "Elsewhere")
	assert.ErrorIs(t, surface.SetAttr(AttrConstruction, foreign), ErrUnknownObject)
}

func TestMemory_Autosize(t *testing.T) {
	m := NewMemory()
	hvac := newNamed(t, m, KindIdealLoadsAirSystem, "Ideal Air")

	require.NoError(t, hvac.SetAttr(AttrMaximumSensibleHeatingCapacity, 5000.0))
	require.NoError(t, hvac.Autosize(AttrMaximumSensibleHeatingCapacity))

	assert.True(t, hvac.IsAutosized(AttrMaximumSensibleHeatingCapacity))
	_, ok := hvac.Attr(AttrMaximumSensibleHeatingCapacity)
	assert.False(t, ok)

	assert.ErrorIs(t, hvac.Autosize(AttrHeatingLimit), ErrInvalidValue)

	require.NoError(t, hvac.SetAttr(AttrHeatingLimit, "LimitCapacity"))
	assert.Equal(t, []Attr{AttrHeatingLimit, AttrMaximumSensibleHeatingCapacity}, hvac.Attrs())
}

func TestMemory_LayersKeepOrder(t *testing.T) {
	m := NewMemory()
	a := newNamed(t, m, KindStandardOpaqueMaterial, "Mat A")
	b := newNamed(t, m, KindMasslessOpaqueMaterial, "Mat B")
	cons := newNamed(t, m, KindConstruction, "Roof1")

	require.NoError(t, cons.AppendLayer(a))
	require.NoError(t, cons.AppendLayer(b))
	require.NoError(t, cons.AppendLayer(a))

	layers := cons.Layers()
	require.Len(t, layers, 3)
	assert.Equal(t, []string{"Mat A", "Mat B", "Mat A"}, []string{layers[0].Name(), layers[1].Name(), layers[2].Name()})

	assert.ErrorIs(t, cons.AppendLayer(cons), ErrInvalidValue)
	assert.ErrorIs(t, a.AppendLayer(b), ErrUnsupportedAttr)
}

func TestMemory_GeometryAndParent(t *testing.T) {
	m := NewMemory()
	surface := newNamed(t, m, KindSurface, "Wall 1")
	window := newNamed(t, m, KindSubSurface, "Window 1")

	loop := []Point3D{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}
	require.NoError(t, surface.SetVertices(loop))
	assert.Equal(t, loop, surface.Vertices())

	assert.ErrorIs(t, window.SetVertices(loop[:2]), ErrInvalidGeometry)
	assert.ErrorIs(t, window.SetVertices([]Point3D{{0, 0, 0}, {1, math.Inf(1), 0}, {0, 1, 0}}), ErrInvalidGeometry)

	require.NoError(t, window.SetParent(surface))
	parent, ok := window.Parent()
	require.True(t, ok)
	assert.Equal(t, surface.Handle(), parent.Handle())

	assert.ErrorIs(t, surface.SetParent(window), ErrUnsupportedAttr)
}

func TestMemory_RemoveDetachesChildren(t *testing.T) {
	m := NewMemory()
	surface := newNamed(t, m, KindSurface, "Wall 1")
	window := newNamed(t, m, KindSubSurface, "Window 1")
	require.NoError(t, window.SetParent(surface))

	require.NoError(t, m.Remove(surface))

	_, ok := m.Find(CategorySurface, "Wall 1")
	assert.False(t, ok)

	_, ok = window.Parent()
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	assert.ErrorIs(t, m.Remove(surface), ErrUnknownObject)
}

func TestKind_StringAndCategory(t *testing.T) {
	assert.Equal(t, "IdealLoadsAirSystem", KindIdealLoadsAirSystem.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, CategoryMaterial, KindShade.Category())
	assert.Equal(t, CategoryInvalid, Kind(0).Category())

	c, ok := ParseCategory("schedule_type_limit")
	require.True(t, ok)
	assert.Equal(t, CategoryScheduleTypeLimit, c)
	assert.Equal(t, "schedule_type_limit", c.String())

	_, ok = ParseCategory("zone")
	assert.False(t, ok)
}
