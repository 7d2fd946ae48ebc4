/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters

import (
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
)

const (
	v1EntityShapes = "*v1.Referenceable, *v1.ID or map[string]any"
	v2EntityShapes = "*v2.Entity, *v2.ObjectID or map[string]any"
)

// EntityConverter converts entity values. As an attribute value a V1
// entity becomes a V2 object id; the full entity is recorded in the
// conversion context's referred entities.
type EntityConverter struct {
	attrs StructConverter
}

func (c *EntityConverter) TypeCategory() registry.TypeCategory { return registry.Entity }

func (c *EntityConverter) FromV1ToV2(v1Obj any, t registry.Type, ctx *Context) (any, error) {
	if isNil(v1Obj) {
		return nil, nil
	}

	switch v := v1Obj.(type) {
	case *v1.Referenceable:
		entity, err := c.ToV2Entity(v, t, ctx)
		if err != nil {
			return nil, err
		}
		ctx.AddEntity(entity)
		return &v2.ObjectID{GUID: entity.GUID, TypeName: entity.TypeName}, nil

	case *v1.ID:
		return &v2.ObjectID{GUID: v.ID, TypeName: typeNameOr(v.TypeName, t)}, nil

	case v1.ID:
		return &v2.ObjectID{GUID: v.ID, TypeName: typeNameOr(v.TypeName, t)}, nil

	case map[string]any:
		if _, ok := v[AttributesPropertyKey]; ok {
			entity, err := c.mapToV2Entity(v, t, ctx)
			if err != nil {
				return nil, err
			}
			ctx.AddEntity(entity)
			return &v2.ObjectID{GUID: entity.GUID, TypeName: entity.TypeName}, nil
		}
		guid := idValue(v["id"])
		if guid == "" {
			guid = idValue(v["guid"])
		}
		if guid == "" {
			return nil, errors.NewValidationError("id", "entity reference without id")
		}
		return &v2.ObjectID{GUID: guid, TypeName: typeNameOr(stringValue(v["typeName"]), t)}, nil
	}

	return nil, errors.NewUnexpectedTypeError(v1EntityShapes, v1Obj)
}

func (c *EntityConverter) FromV2ToV1(v2Obj any, t registry.Type, ctx *Context) (any, error) {
	if isNil(v2Obj) {
		return nil, nil
	}

	switch v := v2Obj.(type) {
	case *v2.Entity:
		return c.ToV1Referenceable(v, t, ctx)

	case *v2.ObjectID:
		return &v1.ID{ID: v.GUID, TypeName: typeNameOr(v.TypeName, t), State: v1.StateActive}, nil

	case v2.ObjectID:
		return &v1.ID{ID: v.GUID, TypeName: typeNameOr(v.TypeName, t), State: v1.StateActive}, nil

	case map[string]any:
		guid := stringValue(v["guid"])
		typeName := typeNameOr(stringValue(v["typeName"]), t)
		if _, ok := v[AttributesPropertyKey]; ok {
			et, err := c.entityType(typeName, t, ctx)
			if err != nil {
				return nil, err
			}
			values, err := c.attrs.ToV1Attributes(v, et, ctx)
			if err != nil {
				return nil, err
			}
			return v1.NewReferenceable(et.TypeName(), guid, values), nil
		}
		if guid == "" {
			return nil, errors.NewValidationError("guid", "entity reference without guid")
		}
		return &v1.ID{ID: guid, TypeName: typeName, State: v1.StateActive}, nil
	}

	return nil, errors.NewUnexpectedTypeError(v2EntityShapes, v2Obj)
}

// ToV2Entity converts a legacy entity, including its traits, into a V2
// entity. An entity without id gets a generated GUID.
func (c *EntityConverter) ToV2Entity(ref *v1.Referenceable, t registry.Type, ctx *Context) (*v2.Entity, error) {
	et, err := c.entityType(ref.TypeName, t, ctx)
	if err != nil {
		return nil, err
	}
	attrs, err := c.attrs.ToV2Attributes(ref, et, ctx)
	if err != nil {
		return nil, err
	}

	entity := &v2.Entity{
		Struct: *v2.NewStruct(et.TypeName(), attrs),
		Status: v2.StatusActive,
	}
	if ref.ID != nil {
		entity.GUID = ref.ID.ID
		entity.Version = int64(ref.ID.Version)
		if ref.ID.State == v1.StateDeleted {
			entity.Status = v2.StatusDeleted
		}
	}
	if entity.GUID == "" {
		entity.GUID = uuid.NewString()
	}

	for _, name := range ref.Traits {
		trait := ref.TraitValues[name]
		if trait == nil {
			trait = v1.NewStruct(name, nil)
		}
		classification, err := c.classificationToV2(trait, ctx)
		if err != nil {
			return nil, err
		}
		classification.EntityGUID = entity.GUID
		entity.Classifications = append(entity.Classifications, classification)
	}
	return entity, nil
}

// ToV1Referenceable converts a V2 entity, including its classifications, into a legacy entity.
func (c *EntityConverter) ToV1Referenceable(entity *v2.Entity, t registry.Type, ctx *Context) (*v1.Referenceable, error) {
	et, err := c.entityType(entity.TypeName, t, ctx)
	if err != nil {
		return nil, err
	}
	values, err := c.attrs.ToV1Attributes(entity, et, ctx)
	if err != nil {
		return nil, err
	}

	ref := v1.NewReferenceable(et.TypeName(), entity.GUID, values)
	ref.ID.Version = int(entity.Version)
	if entity.Status == v2.StatusDeleted {
		ref.ID.State = v1.StateDeleted
	}

	for _, classification := range entity.Classifications {
		trait, err := c.classificationToV1(classification, ctx)
		if err != nil {
			return nil, err
		}
		ref.AddTrait(trait)
	}
	return ref, nil
}

// mapToV2Entity converts a V1 entity given as a map with an "attributes" key and an optional "id".
func (c *EntityConverter) mapToV2Entity(m map[string]any, t registry.Type, ctx *Context) (*v2.Entity, error) {
	values, err := nestedAttributes(m[AttributesPropertyKey])
	if err != nil {
		return nil, err
	}
	ref := &v1.Referenceable{Struct: v1.Struct{TypeName: stringValue(m["typeName"]), Values: values}}
	switch id := m["id"].(type) {
	case map[string]any:
		ref.ID = &v1.ID{ID: idValue(id), TypeName: stringValue(id["typeName"]), State: stringValue(id["state"])}
	case string:
		ref.ID = &v1.ID{ID: id}
	}
	if err := readTraits(ref, m); err != nil {
		return nil, err
	}
	return c.ToV2Entity(ref, t, ctx)
}

// readTraits fills the traits of ref from the "traits" and "traitValues" keys
// of a decoded V1 entity. A trait listed without a value has no attributes.
func readTraits(ref *v1.Referenceable, m map[string]any) error {
	values, err := nestedAttributes(m["traitValues"])
	if err != nil {
		return err
	}

	var names []string
	if raw, ok := m["traits"]; ok && !isNil(raw) {
		switch traits := raw.(type) {
		case []string:
			names = append(names, traits...)
		case []any:
			for _, name := range traits {
				s, ok := name.(string)
				if !ok {
					return errors.NewUnexpectedTypeError("string", name)
				}
				names = append(names, s)
			}
		default:
			return errors.NewUnexpectedTypeError("[]string", raw)
		}
	}
	// values without a listed name still count, in a stable order
	for _, name := range sortedKeys(values) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	for _, name := range names {
		trait := v1.NewStruct(name, nil)
		switch tv := values[name].(type) {
		case nil:
		case *v1.Struct:
			if tv != nil {
				trait = tv
			}
		default:
			tm, ok := asMapping(tv)
			if !ok {
				return errors.NewUnexpectedTypeError("map or *v1.Struct", tv)
			}
			attrs, err := nestedAttributes(tm[AttributesPropertyKey])
			if err != nil {
				return err
			}
			trait.Values = attrs
		}
		if trait.TypeName == "" {
			trait.TypeName = name
		}
		ref.AddTrait(trait)
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
