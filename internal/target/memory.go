package target

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Memory is an in-memory Model. Objects are kept in creation order.
type Memory struct {
	objects []*memoryObject
	index   map[uuid.UUID]*memoryObject
}

// NewMemory creates an empty in-memory model.
func NewMemory() *Memory {
	return &Memory{
		index: make(map[uuid.UUID]*memoryObject),
	}
}

// Find implements Model.
func (m *Memory) Find(category Category, name string) (Object, bool) {
	if name == "" {
		return nil, false
	}

	for _, obj := range m.objects {
		if obj.kind.Category() == category && obj.name == name {
			return obj, true
		}
	}

	return nil, false
}

// Create implements Model.
func (m *Memory) Create(kind Kind) (Object, error) {
	if _, ok := catalog[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	obj := &memoryObject{
		model:     m,
		handle:    uuid.New(),
		kind:      kind,
		attrs:     make(map[Attr]any),
		autosized: make(map[Attr]bool),
	}

	m.objects = append(m.objects, obj)
	m.index[obj.handle] = obj

	return obj, nil
}

// Remove implements Model.
func (m *Memory) Remove(obj Object) error {
	mo, err := m.own(obj)
	if err != nil {
		return err
	}

	delete(m.index, mo.handle)
	m.objects = slices.DeleteFunc(m.objects, func(o *memoryObject) bool { return o == mo })

	for _, other := range m.objects {
		if other.parent == mo {
			other.parent = nil
		}
	}

	return nil
}

// Objects returns every object of the given kind in creation order.
func (m *Memory) Objects(kind Kind) []Object {
	var out []Object

	for _, obj := range m.objects {
		if obj.kind == kind {
			out = append(out, obj)
		}
	}

	return out
}

// All returns every object in creation order.
func (m *Memory) All() []Object {
	out := make([]Object, len(m.objects))
	for i, obj := range m.objects {
		out[i] = obj
	}

	return out
}

// Len returns the number of objects in the model.
func (m *Memory) Len() int {
	return len(m.objects)
}

func (m *Memory) own(obj Object) (*memoryObject, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil object", ErrUnknownObject)
	}

	mo, ok := m.index[obj.Handle()]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownObject, obj.Kind(), obj.Name())
	}

	return mo, nil
}

type memoryObject struct {
	model     *Memory
	handle    uuid.UUID
	kind      Kind
	name      string
	attrs     map[Attr]any
	autosized map[Attr]bool
	layers    []Object
	parent    *memoryObject
	vertices  []Point3D
}

func (o *memoryObject) Handle() uuid.UUID { return o.handle }
func (o *memoryObject) Kind() Kind        { return o.kind }
func (o *memoryObject) Name() string      { return o.name }

func (o *memoryObject) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name for %s", ErrInvalidValue, o.kind)
	}

	o.name = name

	return nil
}

func (o *memoryObject) SetAttr(attr Attr, value any) error {
	spec, err := o.spec(attr)
	if err != nil {
		return err
	}

	if err := o.check(attr, spec, value); err != nil {
		return err
	}

	o.attrs[attr] = value
	delete(o.autosized, attr)

	return nil
}

func (o *memoryObject) Autosize(attr Attr) error {
	spec, err := o.spec(attr)
	if err != nil {
		return err
	}

	if !spec.autosize {
		return fmt.Errorf("%w: %s.%s cannot be autosized", ErrInvalidValue, o.kind, attr)
	}

	delete(o.attrs, attr)
	o.autosized[attr] = true

	return nil
}

func (o *memoryObject) AppendLayer(layer Object) error {
	if o.kind != KindConstruction {
		return fmt.Errorf("%w: %s has no layers", ErrUnsupportedAttr, o.kind)
	}

	if _, err := o.model.own(layer); err != nil {
		return err
	}

	if layer.Kind().Category() != CategoryMaterial {
		return fmt.Errorf("%w: layer %q is a %s, not a material", ErrInvalidValue, layer.Name(), layer.Kind())
	}

	o.layers = append(o.layers, layer)

	return nil
}

func (o *memoryObject) SetParent(parent Object) error {
	if o.kind != KindSubSurface {
		return fmt.Errorf("%w: %s cannot have a parent surface", ErrUnsupportedAttr, o.kind)
	}

	mp, err := o.model.own(parent)
	if err != nil {
		return err
	}

	if mp.kind != KindSurface {
		return fmt.Errorf("%w: parent %q is a %s, not a surface", ErrInvalidValue, mp.name, mp.kind)
	}

	o.parent = mp

	return nil
}

func (o *memoryObject) SetVertices(points []Point3D) error {
	if o.kind != KindSurface && o.kind != KindSubSurface {
		return fmt.Errorf("%w: %s has no geometry", ErrUnsupportedAttr, o.kind)
	}

	if len(points) < 3 {
		return fmt.Errorf("%w: %d vertices, at least 3 required", ErrInvalidGeometry, len(points))
	}

	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return fmt.Errorf("%w: vertex %d is not finite", ErrInvalidGeometry, i)
		}
	}

	o.vertices = slices.Clone(points)

	return nil
}

func (o *memoryObject) Attr(attr Attr) (any, bool) {
	v, ok := o.attrs[attr]
	return v, ok
}

func (o *memoryObject) Attrs() []Attr {
	out := make([]Attr, 0, len(o.attrs)+len(o.autosized))
	for a := range o.attrs {
		out = append(out, a)
	}

	for a := range o.autosized {
		out = append(out, a)
	}

	slices.Sort(out)

	return out
}

func (o *memoryObject) IsAutosized(attr Attr) bool {
	return o.autosized[attr]
}

func (o *memoryObject) Layers() []Object {
	return slices.Clone(o.layers)
}

func (o *memoryObject) Parent() (Object, bool) {
	if o.parent == nil {
		return nil, false
	}

	return o.parent, true
}

func (o *memoryObject) Vertices() []Point3D {
	return slices.Clone(o.vertices)
}

func (o *memoryObject) spec(attr Attr) (attrSpec, error) {
	spec, ok := catalog[o.kind][attr]
	if !ok {
		return attrSpec{}, fmt.Errorf("%w: %s.%s", ErrUnsupportedAttr, o.kind, attr)
	}

	return spec, nil
}

func (o *memoryObject) check(attr Attr, spec attrSpec, value any) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s.%s: %s", ErrInvalidValue, o.kind, attr, fmt.Sprintf(format, args...))
	}

	switch spec.kind {
	case numberValue:
		f, ok := value.(float64)
		if !ok {
			return bad("expected number, got %T", value)
		}

		if !finite(f) {
			return bad("%v is not finite", f)
		}
	case stringValue:
		s, ok := value.(string)
		if !ok {
			return bad("expected string, got %T", value)
		}

		if len(spec.choices) > 0 && !slices.Contains(spec.choices, s) {
			return bad("%q is not one of %v", s, spec.choices)
		}
	case boolValue:
		if _, ok := value.(bool); !ok {
			return bad("expected bool, got %T", value)
		}
	case objectValue:
		obj, ok := value.(Object)
		if !ok {
			return bad("expected object, got %T", value)
		}

		if _, err := o.model.own(obj); err != nil {
			return err
		}

		if obj.Kind().Category() != spec.category {
			return bad("%q is a %s, want a %s", obj.Name(), obj.Kind(), spec.category)
		}
	case numberListValue:
		list, ok := value.([]float64)
		if !ok {
			return bad("expected number list, got %T", value)
		}

		for _, f := range list {
			if !finite(f) {
				return bad("%v is not finite", f)
			}
		}
	case stringListValue:
		if _, ok := value.([]string); !ok {
			return bad("expected string list, got %T", value)
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
