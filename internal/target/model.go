package target

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedAttr = errors.New("attribute not supported")
	ErrInvalidValue    = errors.New("invalid attribute value")
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrUnknownObject   = errors.New("object not in model")
	ErrInvalidKind     = errors.New("invalid object kind")
)

// Point3D is a vertex of a planar boundary.
type Point3D struct {
	X, Y, Z float64
}

// Model is the simulation model that objects are materialized into.
type Model interface {
	// Find returns the first object of the category with the given name.
	Find(category Category, name string) (Object, bool)
	// Create adds an empty, unnamed object of the given kind.
	Create(kind Kind) (Object, error)
	// Remove deletes an object, detaching any sub-surfaces that point at it.
	Remove(obj Object) error
}

// Object is a handle to one object inside a Model.
type Object interface {
	Handle() uuid.UUID
	Kind() Kind
	Name() string

	SetName(name string) error
	// SetAttr assigns a number, string, bool, object, []float64 or []string.
	SetAttr(attr Attr, value any) error
	// Autosize defers the attribute's magnitude to the simulation engine.
	Autosize(attr Attr) error
	// AppendLayer adds a material to the end of a construction's layer stack.
	AppendLayer(layer Object) error
	// SetParent attaches a sub-surface to its base surface.
	SetParent(parent Object) error
	// SetVertices assigns the planar boundary of a surface or sub-surface.
	SetVertices(points []Point3D) error

	Attr(attr Attr) (any, bool)
	// Attrs returns the attributes that hold a value or are autosized, sorted.
	Attrs() []Attr
	IsAutosized(attr Attr) bool
	Layers() []Object
	Parent() (Object, bool)
	Vertices() []Point3D
}
