/*
Package registry holds the type definitions that drive conversion.

Types are loaded from YAML type definitions:

	structDefs:
	  - name: Address
	    attributeDefs:
	      - {name: street, typeName: string}
	      - {name: note, legacyName: comment, typeName: string}

Each attribute has a canonical name, used by V2 instances, and a legacy
name, used by V1 instances, which defaults to the canonical name. Struct,
entity and classification definitions may extend super types of the same
category. Composite types are resolved on demand by name: "array<Address>",
"map<string,array<int>>".

AddTypesDef is atomic: when any definition fails to resolve, nothing is
registered. The registry is safe for concurrent reads once populated.
*/
package registry
