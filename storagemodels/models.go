/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"strings"
)

// KeyPrefix prefixes the partition key of every stored struct.
const KeyPrefix = "STRUCT#"

// StructRecord is the stored form of a V2 struct.
type StructRecord struct {
	// PK is KeyPrefix followed by the struct type name.
	PK string `dynamodbav:"PK"`
	// SK is the caller supplied key, unique per type.
	SK string `dynamodbav:"SK"`
	// TypeName is the V2 struct type name.
	TypeName string `dynamodbav:"typeName"`
	// Attributes holds the converted attribute values.
	Attributes map[string]any `dynamodbav:"attributes,omitempty"`
	// UpdatedAt is a strfmt date-time string.
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// PartitionKey returns the partition key for a struct type.
func PartitionKey(typeName string) string {
	return KeyPrefix + typeName
}

// TypeNameFromPartitionKey reverses PartitionKey.
func TypeNameFromPartitionKey(pk string) (string, error) {
	if !strings.HasPrefix(pk, KeyPrefix) || len(pk) == len(KeyPrefix) {
		return "", fmt.Errorf("invalid partition key %q", pk)
	}
	return strings.TrimPrefix(pk, KeyPrefix), nil
}
