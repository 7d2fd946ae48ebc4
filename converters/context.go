/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"github.com/sirupsen/logrus"

	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

// Context is threaded through one top-level conversion. It gives nested
// converters the converter lookup, the type registry, the diagnostic logger
// and the entities referenced so far. A Context must not be shared between
// concurrent conversions.
type Context struct {
	converters Lookup
	types      *registry.TypeRegistry
	log        logrus.FieldLogger

	entities map[string]*v2.Entity
	order    []string
}

// NewContext creates a conversion context. A nil logger falls back to the logrus standard logger.
func NewContext(converters Lookup, types *registry.TypeRegistry, log logrus.FieldLogger) *Context {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Context{
		converters: converters,
		types:      types,
		log:        log,
		entities:   make(map[string]*v2.Entity),
	}
}

// ConverterFor returns the converter registered for the category.
func (c *Context) ConverterFor(category registry.TypeCategory) (Converter, error) {
	return c.converters.ConverterFor(category)
}

func (c *Context) Types() *registry.TypeRegistry { return c.types }
func (c *Context) Logger() logrus.FieldLogger    { return c.log }

// AddEntity records a referenced entity. A later entity with the same GUID replaces the earlier one.
func (c *Context) AddEntity(e *v2.Entity) {
	if _, exists := c.entities[e.GUID]; !exists {
		c.order = append(c.order, e.GUID)
	}
	c.entities[e.GUID] = e
}

// GetEntity returns a recorded entity.
func (c *Context) GetEntity(guid string) (*v2.Entity, bool) {
	e, ok := c.entities[guid]
	return e, ok
}

// Entities returns recorded entities in the order they were first added.
func (c *Context) Entities() []*v2.Entity {
	ret := make([]*v2.Entity, 0, len(c.order))
	for _, guid := range c.order {
		ret = append(ret, c.entities[guid])
	}
	return ret
}

// ReferredEntities returns the recorded entities keyed by GUID, or nil when there are none.
func (c *Context) ReferredEntities() map[string]*v2.Entity {
	if len(c.entities) == 0 {
		return nil
	}
	ret := make(map[string]*v2.Entity, len(c.entities))
	for guid, e := range c.entities {
		ret[guid] = e
	}
	return ret
}
