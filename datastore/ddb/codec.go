/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/entityconv/errors"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
	"github.com/suparena/entityconv/storagemodels"
)

// MarshalStruct encodes a V2 struct as a DynamoDB item stored under key.
func MarshalStruct(key string, s *v2.Struct, updatedAt time.Time) (map[string]types.AttributeValue, error) {
	if s == nil {
		return nil, errors.NewValidationError("struct", "must not be nil")
	}
	if key == "" {
		return nil, errors.NewValidationError("key", "must not be empty")
	}
	if s.TypeName == "" {
		return nil, errors.NewValidationError("typeName", "must not be empty")
	}

	record := storagemodels.StructRecord{
		PK:         storagemodels.PartitionKey(s.TypeName),
		SK:         key,
		TypeName:   s.TypeName,
		Attributes: s.Attributes,
		UpdatedAt:  strfmt.DateTime(updatedAt.UTC()).String(),
	}
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal struct %s: %w", s.TypeName, err)
	}
	return item, nil
}

// UnmarshalStruct decodes an item written by MarshalStruct. Numbers decode as float64.
func UnmarshalStruct(item map[string]types.AttributeValue) (*v2.Struct, error) {
	var record storagemodels.StructRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	typeName := record.TypeName
	if typeName == "" {
		var err error
		if typeName, err = storagemodels.TypeNameFromPartitionKey(record.PK); err != nil {
			return nil, err
		}
	}
	return v2.NewStruct(typeName, record.Attributes), nil
}

// buildKey returns the primary key of a stored struct.
func buildKey(typeName, key string) (map[string]types.AttributeValue, error) {
	if typeName == "" || key == "" {
		return nil, errors.NewValidationError("key", "type name and key must not be empty")
	}
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: storagemodels.PartitionKey(typeName)},
		"SK": &types.AttributeValueMemberS{Value: key},
	}, nil
}
