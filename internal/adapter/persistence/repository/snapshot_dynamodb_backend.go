package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_order_snapshots"

type snapshotItem struct {
	Slot      string `dynamodbav:"slot"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoSnapshotBackend stores the snapshot as one item keyed by slot name.
//
// Table requirements:
//   - PK: slot (string)

type DynamoSnapshotBackend struct {
	ddb       *dynamodb.Client
	tableName string
	slot      string
}

func NewDynamoSnapshotBackend(ddb *dynamodb.Client, slot string) *DynamoSnapshotBackend {
	if slot == "" {
		slot = defaultSnapshotSlot
	}
	tableName := os.Getenv("WORKORDERS_TABLE")
	if tableName == "" {
		tableName = defaultWorkOrdersTableName
	}
	return &DynamoSnapshotBackend{
		ddb:       ddb,
		tableName: tableName,
		slot:      slot,
	}
}

func (b *DynamoSnapshotBackend) Load(ctx context.Context) ([]byte, error) {
	out, err := b.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(b.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: b.slot},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("load dynamo snapshot: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal dynamo snapshot: %w", err)
	}
	return it.Payload, nil
}

func (b *DynamoSnapshotBackend) Save(ctx context.Context, payload []byte) error {
	it := snapshotItem{
		Slot:      b.slot,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal dynamo snapshot: %w", err)
	}

	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("save dynamo snapshot: %w", err)
	}
	return nil
}
