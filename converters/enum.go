/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	"github.com/suparena/entityconv/registry"
)

// EnumConverter converts between V1 EnumValue and the V2 string form.
type EnumConverter struct{}

func (c *EnumConverter) TypeCategory() registry.TypeCategory { return registry.Enum }

// FromV1ToV2 accepts an EnumValue (typed or decoded from JSON), its value
// string or its ordinal and returns the value string.
func (c *EnumConverter) FromV1ToV2(v1Obj any, t registry.Type, _ *Context) (any, error) {
	if isNil(v1Obj) {
		return nil, nil
	}
	et, ok := t.(*registry.EnumType)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*registry.EnumType", t)
	}
	elem, err := lookupEnumElement(v1Obj, et)
	if err != nil {
		return nil, err
	}
	return elem.Value, nil
}

// FromV2ToV1 returns a *v1.EnumValue for the given value string or ordinal.
func (c *EnumConverter) FromV2ToV1(v2Obj any, t registry.Type, _ *Context) (any, error) {
	if isNil(v2Obj) {
		return nil, nil
	}
	et, ok := t.(*registry.EnumType)
	if !ok {
		return nil, errors.NewUnexpectedTypeError("*registry.EnumType", t)
	}
	elem, err := lookupEnumElement(v2Obj, et)
	if err != nil {
		return nil, err
	}
	return &v1.EnumValue{Value: elem.Value, Ordinal: elem.Ordinal}, nil
}

func lookupEnumElement(v any, et *registry.EnumType) (registry.EnumElement, error) {
	var (
		elem  registry.EnumElement
		found bool
	)

	switch ev := v.(type) {
	case v1.EnumValue:
		elem, found = et.ElementByValue(ev.Value)
	case *v1.EnumValue:
		elem, found = et.ElementByValue(ev.Value)
	case string:
		elem, found = et.ElementByValue(ev)
	case json.Number:
		ordinal, err := ev.Int64()
		if err != nil {
			return elem, conversionError(v, et.TypeName())
		}
		elem, found = et.ElementByOrdinal(int(ordinal))
	case map[string]any:
		// decoded JSON form of v1.EnumValue
		if value, ok := ev["value"]; ok && !isNil(value) {
			return lookupEnumElement(value, et)
		}
		if ordinal, ok := ev["ordinal"]; ok && !isNil(ordinal) {
			return lookupEnumElement(ordinal, et)
		}
		return elem, errors.NewValidationError(et.TypeName(), "enum value without value or ordinal")
	default:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			ordinal, err := toInt64(v, et.TypeName())
			if err != nil {
				return elem, err
			}
			elem, found = et.ElementByOrdinal(int(ordinal))
		default:
			return elem, errors.NewUnexpectedTypeError("v1.EnumValue, string, ordinal or map[string]any", v)
		}
	}

	if !found {
		return elem, errors.NewValidationError(et.TypeName(), fmt.Sprintf("%v is not a value of enum %s", v, et.TypeName()))
	}
	return elem, nil
}
