/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package converters_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entityconv/converters"
	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/registry"
	"github.com/suparena/entityconv/testmodels"
)

type fixture struct {
	types *registry.TypeRegistry
	hook  *test.Hook
	ctx   *converters.Context
}

func newFixture(t *testing.T, opts ...converters.Option) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	types := testmodels.NewTypeRegistry()
	return &fixture{
		types: types,
		hook:  hook,
		ctx:   converters.NewContext(converters.NewRegistry(opts...), types, logger),
	}
}

func (f *fixture) structType(t *testing.T, name string) *registry.StructType {
	t.Helper()
	st, err := f.types.GetStructType(name)
	require.NoError(t, err)
	return st
}

func (f *fixture) messages(level logrus.Level) []string {
	var ret []string
	for _, e := range f.hook.AllEntries() {
		if e.Level == level {
			ret = append(ret, e.Message)
		}
	}
	return ret
}

// failingStruct is a legacy struct whose values cannot be read.
type failingStruct struct{ err error }

func (f *failingStruct) GetTypeName() string                { return "Address" }
func (f *failingStruct) ValuesMap() (map[string]any, error) { return map[string]any{"street": "x"}, f.err }

// recordingConverter stands in for a category converter and records every call.
type recordingConverter struct {
	category registry.TypeCategory
	err      error
	calls    []string
}

func (r *recordingConverter) TypeCategory() registry.TypeCategory { return r.category }

func (r *recordingConverter) FromV1ToV2(v any, t registry.Type, _ *converters.Context) (any, error) {
	r.calls = append(r.calls, fmt.Sprintf("v1tov2 %s %v", t.TypeName(), v))
	if r.err != nil {
		return nil, r.err
	}
	return fmt.Sprintf("v2(%v)", v), nil
}

func (r *recordingConverter) FromV2ToV1(v any, t registry.Type, _ *converters.Context) (any, error) {
	r.calls = append(r.calls, fmt.Sprintf("v2tov1 %s %v", t.TypeName(), v))
	if r.err != nil {
		return nil, r.err
	}
	return fmt.Sprintf("v1(%v)", v), nil
}

func TestStructFromV1ToV2_AddressExample(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()

	out, err := conv.FromV1ToV2(map[string]any{
		"attributes": map[string]any{"street": "Main St", "zip": "90210", "country": "US"},
	}, f.structType(t, "Address"), f.ctx)
	require.NoError(t, err)

	assert.Equal(t, v2.NewStruct("Address", map[string]any{"street": "Main St", "zip": "90210"}), out)
	assert.Equal(t, []string{"ignored unknown attribute Address.country"}, f.messages(logrus.WarnLevel))
}

func TestStructAbsencePreserved(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	for _, in := range []any{nil, map[string]any(nil), (*v1.Struct)(nil), (*v2.Struct)(nil)} {
		out, err := conv.FromV1ToV2(in, address, f.ctx)
		require.NoError(t, err)
		assert.Nil(t, out, "%T", in)

		out, err = conv.FromV2ToV1(in, address, f.ctx)
		require.NoError(t, err)
		assert.Nil(t, out, "%T", in)
	}
}

func TestStructReservedKeyAsymmetry(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")
	bare := map[string]any{"street": "Main St"}

	out, err := conv.FromV1ToV2(bare, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", nil), out, "V1 maps need the attributes key")

	out, err = conv.FromV2ToV1(bare, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Address", map[string]any{"street": "Main St"}), out, "V2 bare map is the attribute map")

	out, err = conv.FromV2ToV1(map[string]any{"attributes": map[string]any{"zip": "1"}, "street": "ignored"}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Address", map[string]any{"zip": "1"}), out)
}

func TestStructEmptyAttributesNormalized(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	inputsV1 := []any{
		map[string]any{},
		map[string]any{"attributes": nil},
		map[string]any{"attributes": map[string]any{}},
		map[string]any{"attributes": map[string]any{"country": "US"}},
		v1.NewStruct("Address", nil),
		v1.NewStruct("Address", map[string]any{}),
	}
	for _, in := range inputsV1 {
		out, err := conv.FromV1ToV2(in, address, f.ctx)
		require.NoError(t, err)
		s := out.(*v2.Struct)
		assert.Equal(t, "Address", s.TypeName)
		assert.Nil(t, s.Attributes, "%#v", in)
	}

	inputsV2 := []any{
		map[string]any{},
		map[string]any{"attributes": nil},
		v2.NewStruct("Address", map[string]any{}),
	}
	for _, in := range inputsV2 {
		out, err := conv.FromV2ToV1(in, address, f.ctx)
		require.NoError(t, err)
		s := out.(*v1.Struct)
		assert.Nil(t, s.Values, "%#v", in)
	}
}

func TestStructShapeRejection(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	_, err := conv.FromV1ToV2(42, address, f.ctx)
	require.Error(t, err)
	var ute *errors.UnexpectedTypeError
	require.True(t, stderrors.As(err, &ute))
	assert.Equal(t, "map[string]any or v1.IStruct", ute.Expected)
	assert.Equal(t, "int", ute.Actual)

	_, err = conv.FromV1ToV2(v2.NewStruct("Address", nil), address, f.ctx)
	require.True(t, stderrors.As(err, &ute))
	assert.Equal(t, "*v2.Struct", ute.Actual)

	_, err = conv.FromV2ToV1("Main St", address, f.ctx)
	require.True(t, stderrors.As(err, &ute))
	assert.Equal(t, "map[string]any or *v2.Struct", ute.Expected)
	assert.Equal(t, "string", ute.Actual)

	_, err = conv.FromV2ToV1(v1.NewStruct("Address", nil), address, f.ctx)
	assert.True(t, errors.IsUnexpectedType(err))

	_, err = conv.FromV1ToV2(map[string]any{"attributes": []string{"x"}}, address, f.ctx)
	assert.True(t, errors.IsUnexpectedType(err))
}

func TestStructLegacyReadFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	boom := stderrors.New("inconsistent instance")

	out, err := conv.FromV1ToV2(&failingStruct{err: boom}, f.structType(t, "Address"), f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", nil), out)

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, boom, entry.Data[logrus.ErrorKey])
	assert.Equal(t, "Address", entry.Data["type"])
}

func TestStructLegacyStruct(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()

	out, err := conv.FromV1ToV2(v1.NewStruct("Address", map[string]any{"street": "Main St"}), f.structType(t, "Address"), f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", map[string]any{"street": "Main St"}), out)
}

func TestStructRoundTrip(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")
	attrs := map[string]any{"street": "Main St", "zip": "90210"}

	toV2, err := conv.FromV1ToV2(map[string]any{"attributes": attrs}, address, f.ctx)
	require.NoError(t, err)
	back, err := conv.FromV2ToV1(toV2, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attrs, back.(*v1.Struct).Values)

	toV1, err := conv.FromV2ToV1(v2.NewStruct("Address", attrs), address, f.ctx)
	require.NoError(t, err)
	again, err := conv.FromV1ToV2(toV1, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attrs, again.(*v2.Struct).Attributes)
}

func TestStructNestedAndLegacyNames(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	contact := f.structType(t, "Contact")

	out, err := conv.FromV1ToV2(map[string]any{
		"attributes": map[string]any{
			"email":   "a@example.com",
			"comment": "prefers mail",
			"address": map[string]any{
				"attributes": map[string]any{"street": "Main St", "planet": "Earth"},
			},
		},
	}, contact, f.ctx)
	require.NoError(t, err)

	s := out.(*v2.Struct)
	assert.Equal(t, "prefers mail", s.GetAttribute("note"), "V2 uses the canonical name")
	assert.NotContains(t, s.Attributes, "comment")
	assert.Equal(t, v2.NewStruct("Address", map[string]any{"street": "Main St"}), s.GetAttribute("address"))
	assert.Equal(t, []string{"ignored unknown attribute Address.planet"}, f.messages(logrus.WarnLevel))

	back, err := conv.FromV2ToV1(s, contact, f.ctx)
	require.NoError(t, err)
	legacy := back.(*v1.Struct)
	assert.Equal(t, "prefers mail", legacy.Get("comment"), "V1 uses the legacy name")
	assert.NotContains(t, legacy.Values, "note")
	assert.Equal(t, v1.NewStruct("Address", map[string]any{"street": "Main St"}), legacy.Get("address"))
}

func TestStructDelegatesWithDeclaredType(t *testing.T) {
	stub := &recordingConverter{category: registry.Primitive}
	f := newFixture(t, converters.WithConverter(stub))
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	out, err := conv.FromV1ToV2(map[string]any{
		"attributes": map[string]any{"zip": "90210", "street": "Main St"},
	}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", map[string]any{"street": "v2(Main St)", "zip": "v2(90210)"}), out)
	assert.Equal(t, []string{"v1tov2 string Main St", "v1tov2 string 90210"}, stub.calls)

	stub.calls = nil
	out, err = conv.FromV2ToV1(map[string]any{"zip": "1"}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Address", map[string]any{"zip": "v1(1)"}), out)
	assert.Equal(t, []string{"v2tov1 string 1"}, stub.calls)
}

func TestStructDelegatedErrorPropagatesUnchanged(t *testing.T) {
	boom := stderrors.New("nested failure")
	stub := &recordingConverter{category: registry.Primitive, err: boom}
	f := newFixture(t, converters.WithConverter(stub))
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	out, err := conv.FromV1ToV2(map[string]any{"attributes": map[string]any{"street": "x"}}, address, f.ctx)
	assert.Nil(t, out)
	assert.Same(t, boom, err)

	out, err = conv.FromV2ToV1(v2.NewStruct("Address", map[string]any{"zip": "1"}), address, f.ctx)
	assert.Nil(t, out)
	assert.Same(t, boom, err)
}

type missingLookup struct{}

func (missingLookup) ConverterFor(c registry.TypeCategory) (converters.Converter, error) {
	return nil, errors.NewNoConverterError(c)
}

func TestStructMissingConverter(t *testing.T) {
	types := testmodels.NewTypeRegistry()
	logger, _ := test.NewNullLogger()
	ctx := converters.NewContext(missingLookup{}, types, logger)
	address, err := types.GetStructType("Address")
	require.NoError(t, err)

	_, err = converters.NewStructConverter().FromV1ToV2(map[string]any{"attributes": map[string]any{"zip": "1"}}, address, ctx)
	assert.True(t, errors.IsNoConverter(err))

	// unknown attributes never reach the lookup
	out, err := converters.NewStructConverter().FromV1ToV2(map[string]any{"attributes": map[string]any{"country": "US"}}, address, ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", nil), out)
}

func TestStructOutputDoesNotAliasInput(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	attrs := map[string]any{"street": "Main St"}

	out, err := conv.FromV2ToV1(attrs, f.structType(t, "Address"), f.ctx)
	require.NoError(t, err)
	out.(*v1.Struct).Set("street", "Elm St")
	assert.Equal(t, "Main St", attrs["street"])
}

func TestStructRejectsNonStructType(t *testing.T) {
	f := newFixture(t)
	status, err := f.types.GetType("Status")
	require.NoError(t, err)

	_, err = converters.NewStructConverter().FromV1ToV2(map[string]any{}, status, f.ctx)
	assert.True(t, errors.IsUnexpectedType(err))
}

func TestConvertAttributes(t *testing.T) {
	f := newFixture(t)
	address := f.structType(t, "Address")

	out, err := converters.ConvertAttributes(converters.V1ToV2, address, nil, f.ctx)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = converters.ConvertAttributes(converters.V2ToV1, address, map[string]any{"zip": "1", "x": 2}, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"zip": "1"}, out)
}

func TestStructAcceptsAnyMapKind(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	address := f.structType(t, "Address")

	out, err := conv.FromV1ToV2(map[string]any{
		"attributes": map[string]string{"street": "Main St", "zip": "90210"},
	}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", map[string]any{"street": "Main St", "zip": "90210"}), out)

	out, err = conv.FromV2ToV1(map[string]string{"street": "Main St"}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Address", map[string]any{"street": "Main St"}), out)

	type legacyKey string
	out, err = conv.FromV1ToV2(map[legacyKey]any{
		"attributes": map[legacyKey]any{"zip": "1"},
	}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", map[string]any{"zip": "1"}), out)

	out, err = conv.FromV1ToV2(map[string]any{"attributes": map[string]string(nil)}, address, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Address", nil), out)
}

func TestStructCanonicalAndLegacyNameCollision(t *testing.T) {
	f := newFixture(t)
	conv := converters.NewStructConverter()
	contact := f.structType(t, "Contact")

	out, err := conv.FromV1ToV2(v1.NewStruct("Contact", map[string]any{
		"comment": "legacy",
		"note":    "canonical",
	}), contact, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v2.NewStruct("Contact", map[string]any{"note": "legacy"}), out)
	assert.Equal(t, []string{`attribute Contact.note given as both "comment" and "note", using "comment"`},
		f.messages(logrus.WarnLevel))

	f.hook.Reset()
	out, err = conv.FromV2ToV1(map[string]any{"comment": "legacy", "note": "canonical"}, contact, f.ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.NewStruct("Contact", map[string]any{"comment": "canonical"}), out)
	assert.Equal(t, []string{`attribute Contact.note given as both "comment" and "note", using "note"`},
		f.messages(logrus.WarnLevel))
}
