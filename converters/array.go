/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"reflect"

	"github.com/suparena/entityconv/errors"
	"github.com/suparena/entityconv/registry"
)

// ArrayConverter converts each element of a slice with the element type's converter.
type ArrayConverter struct{}

func (c *ArrayConverter) TypeCategory() registry.TypeCategory { return registry.Array }

func (c *ArrayConverter) FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error) {
	return c.convert(V1ToV2, v1Obj, t, ctx)
}

func (c *ArrayConverter) FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error) {
	return c.convert(V2ToV1, v2Obj, t, ctx)
}

func (c *ArrayConverter) convert(dir Direction, value any, t registry.Type, ctx *Context) (any, error) {
	if isNil(value) {
		return nil, nil
	}
	at, ok := t.(*registry.ArrayType)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*registry.ArrayType", t)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.NewUnexpectedTypeError("slice", value)
	}

	conv, err := ctx.ConverterFor(at.Element.TypeCategory())
	if err != nil {
		return nil, err
	}

	ret := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := dir.Convert(conv, rv.Index(i).Interface(), at.Element, ctx)
		if err != nil {
			return nil, err
		}
		ret = append(ret, elem)
	}
	return ret, nil
}
