/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/entityconv/errors"
	"github.com/suparena/entityconv/registry"
)

// PrimitiveConverter normalizes scalar values to the Go type of their
// primitive. Dates are epoch milliseconds in V2 and strfmt.DateTime in V1.
type PrimitiveConverter struct{}

func (c *PrimitiveConverter) TypeCategory() registry.TypeCategory { return registry.Primitive }

func (c *PrimitiveConverter) FromV1ToV2(v1Obj any, t registry.Type, _ *Context) (any, error) {
	if isNil(v1Obj) {
		return nil, nil
	}
	if t.TypeName() == registry.TypeDate {
		ts, err := toTime(v1Obj)
		if err != nil {
			return nil, err
		}
		return ts.UnixMilli(), nil
	}
	return normalizePrimitive(v1Obj, t.TypeName())
}

func (c *PrimitiveConverter) FromV2ToV1(v2Obj any, t registry.Type, _ *Context) (any, error) {
	if isNil(v2Obj) {
		return nil, nil
	}
	if t.TypeName() == registry.TypeDate {
		ts, err := toTime(v2Obj)
		if err != nil {
			return nil, err
		}
		return strfmt.DateTime(ts), nil
	}
	return normalizePrimitive(v2Obj, t.TypeName())
}

func normalizePrimitive(v any, typeName string) (any, error) {
	switch typeName {
	case registry.TypeByte, registry.TypeShort, registry.TypeInt, registry.TypeLong:
		return toInt64(v, typeName)
	case registry.TypeFloat, registry.TypeDouble:
		return toFloat64(v, typeName)
	case registry.TypeBoolean:
		return toBool(v, typeName)
	case registry.TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", v), nil
	}
	return v, nil
}

func conversionError(v any, typeName string) error {
	return errors.NewValidationError(typeName, fmt.Sprintf("cannot convert %T value %v to %s", v, v, typeName))
}

func toInt64(v any, typeName string) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, conversionError(v, typeName)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
		if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, conversionError(v, typeName)
		}
		return int64(f), nil
	case reflect.String:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		if err != nil {
			return 0, conversionError(v, typeName)
		}
		return n, nil
	}
	return 0, conversionError(v, typeName)
}

func toFloat64(v any, typeName string) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, conversionError(v, typeName)
		}
		return f, nil
	}
	return 0, conversionError(v, typeName)
}

func toBool(v any, typeName string) (bool, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return false, conversionError(v, typeName)
		}
		return b, nil
	}
	return false, conversionError(v, typeName)
}

// toTime accepts time.Time, strfmt.DateTime, date-time strings and epoch milliseconds.
func toTime(v any) (time.Time, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case *time.Time:
		return *tv, nil
	case strfmt.DateTime:
		return time.Time(tv), nil
	case *strfmt.DateTime:
		return time.Time(*tv), nil
	case string:
		dt, err := strfmt.ParseDateTime(tv)
		if err == nil {
			return time.Time(dt), nil
		}
	}
	millis, err := toInt64(v, registry.TypeDate)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis).UTC(), nil
}
