/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"fmt"
	"reflect"

	"github.com/suparena/entityconv/errors"
	"github.com/suparena/entityconv/registry"
)

// MapConverter converts map values with the value type's converter. Keys are stringified.
type MapConverter struct{}

func (c *MapConverter) TypeCategory() registry.TypeCategory { return registry.Map }

func (c *MapConverter) FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error) {
	return c.convert(V1ToV2, v1Obj, t, ctx)
}

func (c *MapConverter) FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error) {
	return c.convert(V2ToV1, v2Obj, t, ctx)
}

func (c *MapConverter) convert(dir Direction, value any, t registry.Type, ctx *Context) (any, error) {
	if isNil(value) {
		return nil, nil
	}
	mt, ok := t.(*registry.MapType)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*registry.MapType", t)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return nil, errors.NewUnexpectedTypeError("map", value)
	}

	conv, err := ctx.ConverterFor(mt.Value.TypeCategory())
	if err != nil {
		return nil, err
	}

	ret := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		converted, err := dir.Convert(conv, iter.Value().Interface(), mt.Value, ctx)
		if err != nil {
			return nil, err
		}
		ret[fmt.Sprint(iter.Key().Interface())] = converted
	}
	return ret, nil
}
