/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"github.com/suparena/entityconv/errors"
	"github.com/suparena/entityconv/registry"
)

// Registry maps every type category to its converter. Each category has its
// own slot so a lookup is a closed switch rather than a map probe.
type Registry struct {
	primitive      Converter
	enum           Converter
	structs        Converter
	classification Converter
	entity         Converter
	array          Converter
	maps           Converter
}

// Option customizes a Registry.
type Option func(*Registry)

// WithConverter installs c for the category it reports, replacing the default.
func WithConverter(c Converter) Option {
	return func(r *Registry) {
		r.set(c)
	}
}

// NewRegistry creates a registry populated with the default converters.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		primitive:      &PrimitiveConverter{},
		enum:           &EnumConverter{},
		structs:        NewStructConverter(),
		classification: NewClassificationConverter(),
		entity:         &EntityConverter{},
		array:          &ArrayConverter{},
		maps:           &MapConverter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) set(c Converter) {
	switch c.TypeCategory() {
	case registry.Primitive:
		r.primitive = c
	case registry.Enum:
		r.enum = c
	case registry.Struct:
		r.structs = c
	case registry.Classification:
		r.classification = c
	case registry.Entity:
		r.entity = c
	case registry.Array:
		r.array = c
	case registry.Map:
		r.maps = c
	}
}

// ConverterFor returns the converter for the category.
func (r *Registry) ConverterFor(category registry.TypeCategory) (Converter, error) {
	var c Converter
	switch category {
	case registry.Primitive:
		c = r.primitive
	case registry.Enum:
		c = r.enum
	case registry.Struct:
		c = r.structs
	case registry.Classification:
		c = r.classification
	case registry.Entity:
		c = r.entity
	case registry.Array:
		c = r.array
	case registry.Map:
		c = r.maps
	}
	if c == nil {
		return nil, errors.NewNoConverterError(category)
	}
	return c, nil
}
