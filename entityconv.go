/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entityconv

import (
	"github.com/sirupsen/logrus"

	"github.com/suparena/entityconv/converters"
	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

// Converter converts instances between the V1 and V2 representations using
// the types of a TypeRegistry. It is safe for concurrent use: every call
// works on its own conversion context.
type Converter struct {
	types      *registry.TypeRegistry
	converters converters.Lookup
	log        logrus.FieldLogger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger receiving conversion diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// WithConverters replaces the default converter registry.
func WithConverters(lookup converters.Lookup) Option {
	return func(c *Converter) {
		c.converters = lookup
	}
}

// New creates a Converter over the given type registry.
func New(types *registry.TypeRegistry, opts ...Option) *Converter {
	c := &Converter{
		types:      types,
		converters: converters.NewRegistry(),
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewContext returns a fresh conversion context bound to this converter's registries.
func (c *Converter) NewContext() *converters.Context {
	return converters.NewContext(c.converters, c.types, c.log)
}

// ToV2 converts a V1 value of the named type. The category of the type selects the converter.
func (c *Converter) ToV2(v1Obj any, typeName string) (any, error) {
	return c.convert(converters.V1ToV2, v1Obj, typeName)
}

// ToV1 converts a V2 value of the named type.
func (c *Converter) ToV1(v2Obj any, typeName string) (any, error) {
	return c.convert(converters.V2ToV1, v2Obj, typeName)
}

func (c *Converter) convert(dir converters.Direction, value any, typeName string) (any, error) {
	t, err := c.types.GetType(typeName)
	if err != nil {
		return nil, err
	}
	ctx := c.NewContext()
	conv, err := ctx.ConverterFor(t.TypeCategory())
	if err != nil {
		return nil, err
	}
	return dir.Convert(conv, value, t, ctx)
}

// StructToV2 converts a V1 struct value (map or v1.IStruct) of the named struct type.
// A nil value yields a nil struct.
func (c *Converter) StructToV2(v1Obj any, typeName string) (*v2.Struct, error) {
	out, err := c.ToV2(v1Obj, typeName)
	if err != nil || out == nil {
		return nil, err
	}
	s, ok := out.(*v2.Struct)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*v2.Struct", out)
	}
	return s, nil
}

// StructToV1 converts a V2 struct value (map or *v2.Struct) of the named struct type.
// A nil value yields a nil struct.
func (c *Converter) StructToV1(v2Obj any, typeName string) (*v1.Struct, error) {
	out, err := c.ToV1(v2Obj, typeName)
	if err != nil || out == nil {
		return nil, err
	}
	s, ok := out.(*v1.Struct)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*v1.Struct", out)
	}
	return s, nil
}

// EntityToV2 converts a legacy entity. Entities referenced from its
// attributes are returned as referred entities.
func (c *Converter) EntityToV2(ref *v1.Referenceable) (*v2.EntityWithExtInfo, error) {
	if ref == nil {
		return nil, nil
	}
	et, err := c.types.GetEntityType(ref.TypeName)
	if err != nil {
		return nil, err
	}
	ctx := c.NewContext()
	ec, err := entityConverter(ctx)
	if err != nil {
		return nil, err
	}
	entity, err := ec.ToV2Entity(ref, et, ctx)
	if err != nil {
		return nil, err
	}
	return &v2.EntityWithExtInfo{Entity: entity, ReferredEntities: ctx.ReferredEntities()}, nil
}

// EntityToV1 converts a V2 entity. Referred entities are not converted; the
// legacy form references them by id.
func (c *Converter) EntityToV1(entity *v2.Entity) (*v1.Referenceable, error) {
	if entity == nil {
		return nil, nil
	}
	et, err := c.types.GetEntityType(entity.TypeName)
	if err != nil {
		return nil, err
	}
	ctx := c.NewContext()
	ec, err := entityConverter(ctx)
	if err != nil {
		return nil, err
	}
	return ec.ToV1Referenceable(entity, et, ctx)
}

type entityFormatConverter interface {
	ToV2Entity(ref *v1.Referenceable, t registry.Type, ctx *converters.Context) (*v2.Entity, error)
	ToV1Referenceable(entity *v2.Entity, t registry.Type, ctx *converters.Context) (*v1.Referenceable, error)
}

func entityConverter(ctx *converters.Context) (entityFormatConverter, error) {
	conv, err := ctx.ConverterFor(registry.Entity)
	if err != nil {
		return nil, err
	}
	ec, ok := conv.(entityFormatConverter)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("entity converter with ToV2Entity/ToV1Referenceable", conv)
	}
	return ec, nil
}
