/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/suparena/entityconv/errors"
)

// TypeRegistry holds the types known to the converters, keyed by type name.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewTypeRegistry creates a registry preloaded with the builtin primitive types.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: make(map[string]Type)}
	for _, name := range primitiveNames {
		r.types[name] = &PrimitiveType{name: name}
	}
	return r
}

// Register adds a type. Registering a name twice returns an AlreadyExistsError.
func (r *TypeRegistry) Register(t Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[t.TypeName()]; exists {
		return errors.NewAlreadyExistsError("type", t.TypeName())
	}
	r.types[t.TypeName()] = t
	return nil
}

// GetType returns the named type. The composite forms array<T> and map<K,V>
// are resolved against the registered element types.
func (r *TypeRegistry) GetType(name string) (Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return resolveTypeName(name, func(n string) (Type, bool) {
		t, ok := r.types[n]
		return t, ok
	})
}

// GetStructType returns the named type if it carries attributes (struct, entity or classification).
func (r *TypeRegistry) GetStructType(name string) (*StructType, error) {
	t, err := r.GetType(name)
	if err != nil {
		return nil, err
	}
	st, ok := t.(*StructType)
	if !ok {
		return nil, errors.NewValidationError(name, "not a struct type, category "+t.TypeCategory().String())
	}
	return st, nil
}

// GetEntityType returns the named entity type.
func (r *TypeRegistry) GetEntityType(name string) (*StructType, error) {
	return r.getStructOfCategory(name, Entity)
}

// GetClassificationType returns the named classification type.
func (r *TypeRegistry) GetClassificationType(name string) (*StructType, error) {
	return r.getStructOfCategory(name, Classification)
}

func (r *TypeRegistry) getStructOfCategory(name string, category TypeCategory) (*StructType, error) {
	st, err := r.GetStructType(name)
	if err != nil {
		return nil, err
	}
	if st.TypeCategory() != category {
		return nil, errors.NewValidationError(name, "expected category "+category.String()+", found "+st.TypeCategory().String())
	}
	return st, nil
}

// TypeNames returns the registered type names, sorted.
func (r *TypeRegistry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type lookupFunc func(name string) (Type, bool)

func resolveTypeName(name string, lookup lookupFunc) (Type, error) {
	name = strings.TrimSpace(name)
	if t, ok := lookup(name); ok {
		return t, nil
	}

	switch {
	case strings.HasPrefix(name, "array<") && strings.HasSuffix(name, ">"):
		elem, err := resolveTypeName(name[len("array<"):len(name)-1], lookup)
		if err != nil {
			return nil, err
		}
		return &ArrayType{Element: elem}, nil

	case strings.HasPrefix(name, "map<") && strings.HasSuffix(name, ">"):
		inner := name[len("map<") : len(name)-1]
		idx := splitMapArgs(inner)
		if idx < 0 {
			return nil, errors.NewValidationError(name, "map type requires key and value types")
		}
		key, err := resolveTypeName(inner[:idx], lookup)
		if err != nil {
			return nil, err
		}
		value, err := resolveTypeName(inner[idx+1:], lookup)
		if err != nil {
			return nil, err
		}
		return &MapType{Key: key, Value: value}, nil
	}

	return nil, errors.NewNotFoundError("type", name)
}

// splitMapArgs returns the index of the comma separating key and value
// types, ignoring commas nested inside angle brackets.
func splitMapArgs(s string) int {
	depth := 0
	for i, c := range s {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
