package tracker

import (
	"fmt"
	"iter"
)

// Category is a user-defined spending bucket with an optional limit.
type Category struct {
	Name  string
	Limit *Amount // nil means unlimited
}

// CategoryRegistry owns category definitions. Names are case-sensitive and
// unique; listing preserves creation order.
type CategoryRegistry struct {
	names  []string
	byName map[string]Category
}

// NewCategoryRegistry creates an empty registry.
func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{byName: make(map[string]Category)}
}

// Create inserts a new category. Categories are never created implicitly:
// referencing an unknown name elsewhere is an error, not a creation.
func (r *CategoryRegistry) Create(name string, limit *Amount) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownCategory)
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	r.byName[name] = Category{Name: name, Limit: limit}
	r.names = append(r.names, name)
	return nil
}

// Delete removes a category. Cascading the reference cleanup on transactions
// is the engine's job.
func (r *CategoryRegistry) Delete(name string) error {
	if _, ok := r.byName[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	delete(r.byName, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the category with this name.
func (r *CategoryRegistry) Get(name string) (Category, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Has reports whether the name is registered.
func (r *CategoryRegistry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of registered categories.
func (r *CategoryRegistry) Len() int { return len(r.names) }

// All iterates over categories in creation order.
func (r *CategoryRegistry) All() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, name := range r.names {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}
