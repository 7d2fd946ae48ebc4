/*
Package datastore defines the persistence interface for converted structs.

	type StructStore interface {
	    GetOne(ctx context.Context, typeName, key string) (*v2.Struct, error)
	    Put(ctx context.Context, key string, s *v2.Struct) error
	    Delete(ctx context.Context, typeName, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation, one item per struct
  - mock: In-memory implementation for testing

The converters never persist anything themselves; callers store the result
of a conversion explicitly.
*/
package datastore
