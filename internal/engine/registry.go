package engine

import (
	"slices"

	"energymodel-translator/internal/target"
)

type entityKey struct {
	category target.Category
	name     string
}

// Registry indexes materialized objects by (category, name). Lookups that miss
// the index fall back to the target model, so objects that were already in the
// model before the session started are reused as well.
type Registry struct {
	model target.Model
	index map[entityKey]target.Object
	order []entityKey
}

// NewRegistry creates a registry over the given model.
func NewRegistry(model target.Model) *Registry {
	return &Registry{
		model: model,
		index: make(map[entityKey]target.Object),
	}
}

// Lookup returns the object registered under (category, name).
func (r *Registry) Lookup(category target.Category, name string) (target.Object, bool) {
	key := entityKey{category, name}

	if obj, ok := r.index[key]; ok {
		return obj, true
	}

	obj, ok := r.model.Find(category, name)
	if !ok {
		return nil, false
	}

	r.add(key, obj)

	return obj, true
}

// Register records obj under its category and name.
func (r *Registry) Register(category target.Category, obj target.Object) {
	r.add(entityKey{category, obj.Name()}, obj)
}

// Names returns the registered names of a category in registration order.
func (r *Registry) Names(category target.Category) []string {
	var names []string

	for _, key := range r.order {
		if key.category == category {
			names = append(names, key.name)
		}
	}

	return names
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.index)
}

func (r *Registry) add(key entityKey, obj target.Object) {
	if _, exists := r.index[key]; !exists {
		r.order = append(r.order, key)
	}

	r.index[key] = obj
}

// forget drops keys whose objects are no longer in the model.
func (r *Registry) forget(removed []target.Object) {
	for key, obj := range r.index {
		if slices.ContainsFunc(removed, func(o target.Object) bool { return o.Handle() == obj.Handle() }) {
			delete(r.index, key)
			r.order = slices.DeleteFunc(r.order, func(k entityKey) bool { return k == key })
		}
	}
}
