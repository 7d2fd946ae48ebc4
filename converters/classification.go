/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

// ClassificationConverter converts V1 traits to V2 classifications and back.
type ClassificationConverter struct {
	StructConverter
}

func NewClassificationConverter() *ClassificationConverter {
	return &ClassificationConverter{StructConverter{category: registry.Classification}}
}

func (c *ClassificationConverter) FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error) {
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
	return &v2.Classification{Struct: *v2.NewStruct(st.TypeName(), attrs)}, nil
}

func (c *ClassificationConverter) FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error) {
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
