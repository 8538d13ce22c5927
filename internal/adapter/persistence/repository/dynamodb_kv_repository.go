package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"moap_dashboard/internal/usecase/interfaces"
)

const defaultKVTableName = "moap_state"

type kvItem struct {
	ID        string `dynamodbav:"id"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoKV persists values in a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// The payload is stored as a binary attribute; items are capped at 400KB,
// far above the size of a dashboard snapshot.
type DynamoKV struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoKV)(nil)

func NewDynamoKV(ddb *dynamodb.Client, tableName string) *DynamoKV {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoKV{ddb: ddb, tableName: tableName}
}

func (r *DynamoKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, fmt.Errorf("dynamodb decode %s: %w", key, err)
	}
	return it.Payload, true, nil
}

func (r *DynamoKV) Put(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(kvItem{ID: key, Payload: value, UpdatedAt: nowString()})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %s: %w", key, err)
	}
	return nil
}

func (r *DynamoKV) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(key),
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete %s: %w", key, err)
	}
	return nil
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
