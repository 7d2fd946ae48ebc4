/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"reflect"

	"github.com/suparena/entityconv/registry"
)

// AttributesPropertyKey is the reserved key under which a mapping carries struct attributes.
const AttributesPropertyKey = "attributes"

// Converter translates values of one type category between the V1 and V2 representations.
type Converter interface {
	TypeCategory() registry.TypeCategory
	FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error)
	FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error)
}

// Lookup returns the converter for a type category.
type Lookup interface {
	ConverterFor(category registry.TypeCategory) (Converter, error)
}

// Direction selects which way a value is converted.
type Direction int

const (
	V1ToV2 Direction = iota
	V2ToV1
)

func (d Direction) String() string {
	if d == V2ToV1 {
		return "v2tov1"
	}
	return "v1tov2"
}

// Convert invokes the converter method matching the direction.
func (d Direction) Convert(c Converter, value any, t registry.Type, ctx *Context) (any, error) {
	if d == V2ToV1 {
		return c.FromV2ToV1(value, t, ctx)
	}
	return c.FromV1ToV2(value, t, ctx)
}

// AttributeName returns the name an attribute is written under in the target representation.
func (d Direction) AttributeName(attr *registry.Attribute) string {
	if d == V2ToV1 {
		return attr.LegacyName()
	}
	return attr.Name()
}

// SourceName returns the name an attribute is read under in the source representation.
func (d Direction) SourceName(attr *registry.Attribute) string {
	if d == V2ToV1 {
		return attr.Name()
	}
	return attr.LegacyName()
}

// isNil reports whether v is nil or a typed nil pointer, map, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
