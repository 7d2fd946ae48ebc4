/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entityconv

import (
	"context"

	"github.com/suparena/entityconv/datastore"
	"github.com/suparena/entityconv/errors"
	v1 "github.com/suparena/entityconv/instancemodels/v1"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
)

// Store keeps legacy structs in their V2 form. Values are converted on the
// way in and converted back, against the current type definitions, on the
// way out.
type Store struct {
	conv  *Converter
	store datastore.StructStore
}

// NewStore creates a Store on top of a StructStore.
func NewStore(conv *Converter, store datastore.StructStore) *Store {
	return &Store{conv: conv, store: store}
}

// SaveV1 converts a V1 struct value of the named type and stores the result under key.
func (s *Store) SaveV1(ctx context.Context, key string, v1Obj any, typeName string) (*v2.Struct, error) {
	converted, err := s.conv.StructToV2(v1Obj, typeName)
	if err != nil {
		return nil, err
	}
	if converted == nil {
		return nil, errors.NewValidationError("value", "nothing to store")
	}
	if err := s.store.Put(ctx, key, converted); err != nil {
		return nil, err
	}
	return converted, nil
}

// LoadV1 reads a stored struct and converts it back to the legacy form.
// Stored numbers are normalized again by the attribute types.
func (s *Store) LoadV1(ctx context.Context, typeName, key string) (*v1.Struct, error) {
	stored, err := s.store.GetOne(ctx, typeName, key)
	if err != nil {
		return nil, err
	}
	return s.conv.StructToV1(stored, typeName)
}

// LoadV2 reads a stored struct and normalizes its attributes by the current type definitions.
func (s *Store) LoadV2(ctx context.Context, typeName, key string) (*v2.Struct, error) {
	stored, err := s.store.GetOne(ctx, typeName, key)
	if err != nil {
		return nil, err
	}
	legacy, err := s.conv.StructToV1(stored, typeName)
	if err != nil {
		return nil, err
	}
	return s.conv.StructToV2(legacy, typeName)
}

// Delete removes a stored struct.
func (s *Store) Delete(ctx context.Context, typeName, key string) error {
	return s.store.Delete(ctx, typeName, key)
}
