package store

import (
	"context"

	"estimate_app/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "records"

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type recordItem struct {
	Key     string `dynamodbav:"key"`
	Payload []byte `dynamodbav:"payload"`
}

// DynamoDBStore persists documents in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type DynamoDBStore struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRecordStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(ddb DynamoDBAPI, tableName string) *DynamoDBStore {
	if tableName == "" {
		tableName = defaultRecordsTableName
	}
	return &DynamoDBStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, false, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Payload, true, nil
}

func (s *DynamoDBStore) Set(ctx context.Context, key string, payload []byte) error {
	av, err := attributevalue.MarshalMap(recordItem{Key: key, Payload: payload})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
