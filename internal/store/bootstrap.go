package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"book-lookup/internal/model"
)

// TableAdmin is the slice of the DynamoDB client needed to provision
// the table. Kept apart from API so request handling never sees it.
type TableAdmin interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTable creates the books table with its single string hash key
// and minimal provisioned throughput. An already-existing table is
// not an error.
func EnsureTable(ctx context.Context, admin TableAdmin) error {
	_, err := admin.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(TableBooks),
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(model.AttrID),
			KeyType:       types.KeyTypeHash,
		}},
		AttributeDefinitions: []types.AttributeDefinition{{
			AttributeName: aws.String(model.AttrID),
			AttributeType: types.ScalarAttributeTypeS,
		}},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(1),
			WriteCapacityUnits: aws.Int64(1),
		},
	})

	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create table %s: %w", TableBooks, err)
	}
	return nil
}
