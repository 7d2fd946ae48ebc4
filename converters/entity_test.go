/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entityconv/converters"
	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
)

func TestClassificationConverter(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewClassificationConverter()
	sensitive, err := f.types.GetClassificationType("Sensitive")
	require.NoError(t, err)

	out, err := conv.FromV1ToV2(v1.NewStruct("Sensitive", map[string]any{"level": 2, "reason": "gdpr"}), sensitive, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &v2.Classification{
		Struct: v2.Struct{TypeName: "Sensitive", Attributes: map[string]any{"level": int64(2), "reason": "gdpr"}},
	}, out)

	back, err := conv.FromV2ToV1(out, sensitive, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Sensitive", map[string]any{"level": int64(2), "reason": "gdpr"}), back)
}

func TestEntityAttributeBecomesObjectID(t *testing.T) {
	f := newFixture(t)
	conv := &converters.EntityConverter{}
	dataSet, err := f.types.GetEntityType("DataSet")
	require.NoError(t, err)

	owner := v1.NewReferenceable("Person", "p-1", map[string]any{"name": "Ann"})
	ds := v1.NewReferenceable("DataSet", "ds-1", map[string]any{
		"name":    "sales",
		"owner":   owner,
		"columns": []string{"id", "amount"},
	})

	out, err := conv.FromV1ToV2(ds, dataSet, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &v2.ObjectID{GUID: "ds-1", TypeName: "DataSet"}, out)

	entities := f.ctx.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "p-1", entities[0].GUID, "nested entities are recorded first")
	assert.Equal(t, "ds-1", entities[1].GUID)

	recorded, ok := f.ctx.GetEntity("ds-1")
	require.True(t, ok)
	assert.Equal(t, &v2.ObjectID{GUID: "p-1", TypeName: "Person"}, recorded.GetAttribute("owner"))
	assert.Equal(t, []any{"id", "amount"}, recorded.GetAttribute("columns"))
	assert.Equal(t, v2.StatusActive, recorded.Status)
}

func TestEntityWithoutIDGetsGUID(t *testing.T) {
	f := newFixture(t)
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	ref := &v1.Referenceable{Struct: v1.Struct{TypeName: "Person", Values: map[string]any{"name": "Bob"}}}
	entity, err := (&converters.EntityConverter{}).ToV2Entity(ref, person, f.ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(entity.GUID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Bob"}, entity.Attributes)
}

func TestEntityTraitsBecomeClassifications(t *testing.T) {
	f := newFixture(t)
	conv := &converters.EntityConverter{}
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	ref := v1.NewReferenceable("Person", "p-2", map[string]any{"name": "Cy"})
	ref.ID.Version = 3
	ref.ID.State = v1.StateDeleted
	ref.AddTrait(v1.NewStruct("PII", map[string]any{"level": 1}))
	ref.Traits = append(ref.Traits, "Sensitive")

	entity, err := conv.ToV2Entity(ref, person, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.StatusDeleted, entity.Status)
	assert.Equal(t, int64(3), entity.Version)
	require.Len(t, entity.Classifications, 2)
	assert.Equal(t, "PII", entity.Classifications[0].TypeName)
	assert.Equal(t, map[string]any{"level": int64(1)}, entity.Classifications[0].Attributes)
	assert.Equal(t, "Sensitive", entity.Classifications[1].TypeName)
	assert.Nil(t, entity.Classifications[1].Attributes)
	for _, c := range entity.Classifications {
		assert.Equal(t, "p-2", c.EntityGUID)
	}

	back, err := conv.ToV1Referenceable(entity, person, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &v1.ID{ID: "p-2", TypeName: "Person", Version: 3, State: v1.StateDeleted}, back.ID)
	assert.Equal(t, []string{"PII", "Sensitive"}, back.Traits)
	assert.Equal(t, map[string]any{"level": int64(1)}, back.TraitValues["PII"].Values)
	assert.Equal(t, map[string]any{"name": "Cy"}, back.Values)
}

func TestEntityUnknownTrait(t *testing.T) {
	f := newFixture(t)
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	ref := v1.NewReferenceable("Person", "p-3", nil)
	ref.AddTrait(v1.NewStruct("Secret", nil))

	_, err = (&converters.EntityConverter{}).ToV2Entity(ref, person, f.ctx)
	assert.True(t, errors.IsNotFound(err))
}

func TestEntityReferences(t *testing.T) {
	f := newFixture(t)
	conv := &converters.EntityConverter{}
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	for _, in := range []any{
		&v1.ID{ID: "p-9"},
		v1.ID{ID: "p-9", TypeName: "Person"},
		map[string]any{"id": "p-9"},
		map[string]any{"guid": "p-9", "typeName": "Person"},
	} {
		out, err := conv.FromV1ToV2(in, person, f.ctx)
		require.NoError(t, err, "%#v", in)
		assert.Equal(t, &v2.ObjectID{GUID: "p-9", TypeName: "Person"}, out)
	}
	assert.Empty(t, f.ctx.Entities(), "references are not recorded")

	_, err = conv.FromV1ToV2(map[string]any{"typeName": "Person"}, person, f.ctx)
	assert.True(t, errors.IsValidationError(err))

	_, err = conv.FromV1ToV2(42, person, f.ctx)
	assert.True(t, errors.IsUnexpectedType(err))

	out, err := conv.FromV2ToV1(&v2.ObjectID{GUID: "p-9"}, person, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &v1.ID{ID: "p-9", TypeName: "Person", State: v1.StateActive}, out)

	_, err = conv.FromV2ToV1(map[string]any{}, person, f.ctx)
	assert.True(t, errors.IsValidationError(err))
}

func TestEntityFromMaps(t *testing.T) {
	f := newFixture(t)
	conv := &converters.EntityConverter{}
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	out, err := conv.FromV1ToV2(map[string]any{
		"typeName":   "Person",
		"id":         map[string]any{"id": "p-5", "state": "ACTIVE"},
		"attributes": map[string]any{"name": "Dee", "manager": map[string]any{"id": "p-6"}},
	}, person, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &v2.ObjectID{GUID: "p-5", TypeName: "Person"}, out)

	entity, ok := f.ctx.GetEntity("p-5")
	require.True(t, ok)
	assert.Equal(t, &v2.ObjectID{GUID: "p-6", TypeName: "Person"}, entity.GetAttribute("manager"))

	back, err := conv.FromV2ToV1(map[string]any{
		"guid":       "p-5",
		"attributes": map[string]any{"name": "Dee"},
	}, person, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewReferenceable("Person", "p-5", map[string]any{"name": "Dee"}), back)
}

func TestEntityMapTraitsMatchTypedInput(t *testing.T) {
	f := newFixture(t)
	conv := &converters.EntityConverter{}
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	_, err = conv.FromV1ToV2(map[string]any{
		"typeName":   "Person",
		"id":         "p-7",
		"attributes": map[string]any{"name": "Eve"},
		"traits":     []any{"PII", "Sensitive"},
		"traitValues": map[string]any{
			"PII": map[string]any{"typeName": "PII", "attributes": map[string]any{"level": 2}},
		},
	}, person, f.ctx)
	require.NoError(t, err)
	fromMap, ok := f.ctx.GetEntity("p-7")
	require.True(t, ok)

	typed := v1.NewReferenceable("Person", "p-7", map[string]any{"name": "Eve"})
	typed.ID.State = ""
	typed.AddTrait(v1.NewStruct("PII", map[string]any{"level": 2}))
	typed.AddTrait(v1.NewStruct("Sensitive", nil))
	fromTyped, err := conv.ToV2Entity(typed, person, f.ctx)
	require.NoError(t, err)

	assert.Equal(t, fromTyped, fromMap)
	require.Len(t, fromMap.Classifications, 2)
	assert.Equal(t, map[string]any{"level": int64(2)}, fromMap.Classifications[0].Attributes)
	assert.Equal(t, "p-7", fromMap.Classifications[1].EntityGUID)
}

func TestEntityMapTraitValuesWithoutList(t *testing.T) {
	f := newFixture(t)
	person, err := f.types.GetEntityType("Person")
	require.NoError(t, err)

	_, err = (&converters.EntityConverter{}).FromV1ToV2(map[string]any{
		"id":          "p-8",
		"attributes":  map[string]any{},
		"traitValues": map[string]any{"Sensitive": map[string]any{"attributes": map[string]any{"reason": "x"}}},
	}, person, f.ctx)
	require.NoError(t, err)

	entity, ok := f.ctx.GetEntity("p-8")
	require.True(t, ok)
	require.Len(t, entity.Classifications, 1)
	assert.Equal(t, "Sensitive", entity.Classifications[0].TypeName)
	assert.Equal(t, map[string]any{"reason": "x"}, entity.Classifications[0].Attributes)

	_, err = (&converters.EntityConverter{}).FromV1ToV2(map[string]any{
		"id":         "p-9",
		"attributes": map[string]any{},
		"traits":     "PII",
	}, person, f.ctx)
	assert.True(t, errors.IsUnexpectedType(err))
}
