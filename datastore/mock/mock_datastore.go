/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.StructStore for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/entityconv/errors"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/storagemodels"
)

type storeKey struct {
	typeName string
	key      string
}

// StructStore is an in-memory datastore.StructStore
type StructStore struct {
	mu          sync.RWMutex
	data        map[storeKey]*v2.Struct
	putError    error
	deleteError error
	getError    error
}

// New creates a new mock StructStore
func New() *StructStore {
	return &StructStore{
		data: make(map[storeKey]*v2.Struct),
	}
}

// WithPutError makes Put operations return an error
func (m *StructStore) WithPutError(err error) *StructStore {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *StructStore) WithDeleteError(err error) *StructStore {
	m.deleteError = err
	return m
}

// WithGetError makes GetOne operations return an error
func (m *StructStore) WithGetError(err error) *StructStore {
	m.getError = err
	return m
}

// GetOne retrieves a copy of a stored struct
func (m *StructStore) GetOne(ctx context.Context, typeName, key string) (*v2.Struct, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.data[storeKey{typeName, key}]
	if !exists {
		return nil, errors.NewNotFoundError(typeName, key)
	}
	return copyStruct(s), nil
}

// Put stores a copy of the struct
func (m *StructStore) Put(ctx context.Context, key string, s *v2.Struct) error {
	if m.putError != nil {
		return m.putError
	}
	if s == nil {
		return errors.NewValidationError("struct", "must not be nil")
	}
	if key == "" || s.TypeName == "" {
		return errors.NewValidationError("key", "type name and key must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[storeKey{s.TypeName, key}] = copyStruct(s)
	return nil
}

// Delete removes a struct
func (m *StructStore) Delete(ctx context.Context, typeName, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := storeKey{typeName, key}
	if _, exists := m.data[k]; !exists {
		return errors.NewNotFoundError(typeName, key)
	}
	delete(m.data, k)
	return nil
}

// Helper methods for testing

// Keys returns the partition/sort key pairs currently stored
func (m *StructStore) Keys() [][2]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([][2]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, [2]string{storagemodels.PartitionKey(k.typeName), k.key})
	}
	return keys
}

// Count returns the number of stored structs
func (m *StructStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *StructStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[storeKey]*v2.Struct)
}

// copyStruct copies the top-level attribute map so callers cannot mutate stored state.
func copyStruct(s *v2.Struct) *v2.Struct {
	var attrs map[string]any
	if s.Attributes != nil {
		attrs = make(map[string]any, len(s.Attributes))
		for k, v := range s.Attributes {
			attrs[k] = v
		}
	}
	return v2.NewStruct(s.TypeName, attrs)
}
