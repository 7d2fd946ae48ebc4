/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	storeerrors "github.com/suparena/entityconv/errors"
	v2 "github.com/suparena/entityconv/instancemodels/v2"
)

// DynamodbStructStore implements datastore.StructStore on a single DynamoDB table.
type DynamodbStructStore struct {
	client    *sdk.Client
	tableName string
	now       func() time.Time
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS credentials.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbStructStore constructs a store backed by a new client.
func NewDynamodbStructStore(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName string) (*DynamodbStructStore, error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	logrus.WithFields(logrus.Fields{"table": tableName, "region": awsRegion}).Debug("DynamoDB client initialized")
	return NewDynamodbStructStoreWithClient(client, tableName), nil
}

// NewDynamodbStructStoreWithClient constructs a store on an existing client.
func NewDynamodbStructStoreWithClient(client *sdk.Client, tableName string) *DynamodbStructStore {
	return &DynamodbStructStore{client: client, tableName: tableName, now: time.Now}
}

// GetOne retrieves a struct. A missing item yields a NotFoundError.
func (d *DynamodbStructStore) GetOne(ctx context.Context, typeName, key string) (*v2.Struct, error) {
	keyMap, err := buildKey(typeName, key)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, storeerrors.NewNotFoundError(typeName, key)
	}
	return UnmarshalStruct(out.Item)
}

// Put stores a struct under key, replacing any previous version.
func (d *DynamodbStructStore) Put(ctx context.Context, key string, s *v2.Struct) error {
	item, err := MarshalStruct(key, s, d.now())
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes a struct. Deleting a missing item yields a NotFoundError.
func (d *DynamodbStructStore) Delete(ctx context.Context, typeName, key string) error {
	keyMap, err := buildKey(typeName, key)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           aws.String(d.tableName),
		Key:                 keyMap,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return storeerrors.NewNotFoundError(typeName, key)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}
