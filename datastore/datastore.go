/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	v2 "github.com/suparena/entityconv/instancemodels/v2"
)

// StructStore persists converted V2 structs, addressed by type name and key.
type StructStore interface {
	GetOne(ctx context.Context, typeName, key string) (*v2.Struct, error)

	Put(ctx context.Context, key string, s *v2.Struct) error

	Delete(ctx context.Context, typeName, key string) error
}
