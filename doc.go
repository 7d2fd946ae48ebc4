/*
Package entityconv converts metadata instances between the legacy V1
representation and the typed V2 representation.

Conversion is driven by runtime type metadata: a registry.TypeRegistry
describes struct, entity, classification and enum types and their
attributes, and the converters package walks a value and its type in
lockstep, delegating every attribute to the converter of its type category.

Key Features:
  - Struct, entity, classification, enum, array, map and primitive converters
  - Type definitions loaded from YAML
  - Unknown attributes dropped with a diagnostic instead of failing
  - Stub-friendly converter registry passed explicitly, no globals
  - Optional persistence of converted structs in DynamoDB

Basic Usage:

	types := registry.NewTypeRegistry()
	def, _ := registry.LoadTypesDef(file)
	_ = types.AddTypesDef(def)

	conv := entityconv.New(types, entityconv.WithLogger(logger))

	address, err := conv.StructToV2(map[string]any{
	    "attributes": map[string]any{"street": "Main St", "zip": "90210"},
	}, "Address")

	legacy, err := conv.StructToV1(address, "Address")

V1 maps carry attributes only under the "attributes" key; V2 maps may also be
the bare attribute map.

Storage:

	store := entityconv.NewStore(conv, ddbStore)
	saved, err := store.SaveV1(ctx, "home", legacyAddress, "Address")
	loaded, err := store.LoadV1(ctx, "Address", "home")
*/
package entityconv
