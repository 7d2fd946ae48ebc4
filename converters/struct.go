/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

const (
	v1StructShapes = "map[string]any or v1.IStruct"
	v2StructShapes = "map[string]any or *v2.Struct"
)

// StructConverter converts struct values attribute by attribute, delegating
// each attribute to the converter of its declared type category.
type StructConverter struct {
	category registry.TypeCategory
}

// NewStructConverter creates the converter for the Struct category.
func NewStructConverter() *StructConverter {
	return &StructConverter{category: registry.Struct}
}

func (c *StructConverter) TypeCategory() registry.TypeCategory { return c.category }

// FromV1ToV2 converts a V1 map or legacy struct into a *v2.Struct. A nil value converts to nil.
func (c *StructConverter) FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error) {
	if isNil(v1Obj) {
		return nil, nil
	}
	st, err := structTypeOf(t)
	if err != nil {
		return nil, err
	}
	attrs, err := c.ToV2Attributes(v1Obj, st, ctx)
	if err != nil {
		return nil, err
	}
	return v2.NewStruct(st.TypeName(), attrs), nil
}

// FromV2ToV1 converts a V2 map or typed struct into a *v1.Struct. A nil value converts to nil.
func (c *StructConverter) FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error) {
	if isNil(v2Obj) {
		return nil, nil
	}
	st, err := structTypeOf(t)
	if err != nil {
		return nil, err
	}
	attrs, err := c.ToV1Attributes(v2Obj, st, ctx)
	if err != nil {
		return nil, err
	}
	return v1.NewStruct(st.TypeName(), attrs), nil
}

// ToV2Attributes extracts the attributes of a V1 value and converts them.
//
// A V1 map carries its attributes only under AttributesPropertyKey; a map
// without that key has no attributes. A failing IStruct.ValuesMap is logged
// and treated as an attribute-less struct.
func (c *StructConverter) ToV2Attributes(v1Obj any, st *registry.StructType, ctx *Context) (map[string]any, error) {
	var source map[string]any

	if m, ok := asMapping(v1Obj); ok {
		nested, err := nestedAttributes(m[AttributesPropertyKey])
		if err != nil {
			return nil, err
		}
		source = nested
	} else if v, ok := v1Obj.(v1.IStruct); ok {
		values, err := v.ValuesMap()
		if err != nil {
			ctx.Logger().WithError(err).WithField("type", st.TypeName()).Error("IStruct.ValuesMap() failed")
			values = nil
		}
		source = values
	} else {
		return nil, errors.NewUnexpectedTypeError(v1StructShapes, v1Obj)
	}

	return ConvertAttributes(V1ToV2, st, source, ctx)
}

// ToV1Attributes extracts the attributes of a V2 value and converts them.
//
// A V2 map carries its attributes under AttributesPropertyKey when the key is
// present; otherwise the map itself is the attribute map.
func (c *StructConverter) ToV1Attributes(v2Obj any, st *registry.StructType, ctx *Context) (map[string]any, error) {
	var source map[string]any

	if m, ok := asMapping(v2Obj); ok {
		if raw, ok := m[AttributesPropertyKey]; ok {
			nested, err := nestedAttributes(raw)
			if err != nil {
				return nil, err
			}
			source = nested
		} else {
			source = m
		}
	} else if v, ok := v2Obj.(v2.AttributeHolder); ok {
		source = v.GetAttributes()
	} else {
		return nil, errors.NewUnexpectedTypeError(v2StructShapes, v2Obj)
	}

	return ConvertAttributes(V2ToV1, st, source, ctx)
}

// ConvertAttributes converts the attributes present in attrs in the given
// direction. Names unknown to st are logged and dropped. The result is a
// new map keyed by the target representation's attribute names, or nil when
// no attribute was converted. Converter errors are returned as is.
func ConvertAttributes(dir Direction, st *registry.StructType, attrs map[string]any, ctx *Context) (map[string]any, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	// An attribute may appear under both its canonical and its legacy name.
	// The name of the source representation wins.
	chosen := make(map[*registry.Attribute]string, len(names))
	for _, name := range names {
		attr := st.GetAttribute(name)
		if attr == nil {
			ctx.Logger().Warnf("ignored unknown attribute %s.%s", st.TypeName(), name)
			continue
		}
		prev, dup := chosen[attr]
		if !dup {
			chosen[attr] = name
			continue
		}
		keep := prev
		if name == dir.SourceName(attr) {
			keep = name
		}
		chosen[attr] = keep
		ctx.Logger().Warnf("attribute %s given as both %q and %q, using %q", attr.QualifiedName(), prev, name, keep)
	}

	var ret map[string]any
	for _, name := range names {
		attr := st.GetAttribute(name)
		if attr == nil || chosen[attr] != name {
			continue
		}

		conv, err := ctx.ConverterFor(attr.TypeCategory())
		if err != nil {
			return nil, err
		}
		value, err := dir.Convert(conv, attrs[name], attr.Type(), ctx)
		if err != nil {
			return nil, err
		}

		if ret == nil {
			ret = make(map[string]any, len(attrs))
		}
		ret[dir.AttributeName(attr)] = value
	}
	return ret, nil
}

// nestedAttributes interprets the value found under AttributesPropertyKey.
func nestedAttributes(raw any) (map[string]any, error) {
	if isNil(raw) {
		return nil, nil
	}
	m, ok := asMapping(raw)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("map", raw)
	}
	return m, nil
}

// asMapping returns v as a map[string]any. Maps of other key and value types
// are copied with their keys formatted as strings.
func asMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}
	ret := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		ret[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return ret, true
}

func structTypeOf(t registry.Type) (*registry.StructType, error) {
	st, ok := t.(*registry.StructType)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*registry.StructType", t)
	}
	return st, nil
}
