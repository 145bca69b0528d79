package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"taskloop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoRepository persists one entity type in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// T is the domain entity and I its storage item (dynamodbav tags). Dates are
// stored as RFC3339Nano strings and money as decimal strings.
type DynamoRepository[T entities.Entity, I any] struct {
	ddb       *dynamodb.Client
	tableName string
	toItem    func(T) I
	fromItem  func(I) T
}

func newDynamoRepository[T entities.Entity, I any](ddb *dynamodb.Client, tableName string, toItem func(T) I, fromItem func(I) T) *DynamoRepository[T, I] {
	return &DynamoRepository[T, I]{ddb: ddb, tableName: tableName, toItem: toItem, fromItem: fromItem}
}

func (r *DynamoRepository[T, I]) List(ctx context.Context) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, r.fromItem(it))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().Before(out[j].Created())
	})
	return out, nil
}

func (r *DynamoRepository[T, I]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	return r.fromItem(it), nil
}

func (r *DynamoRepository[T, I]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	if err := r.put(ctx, e, "attribute_not_exists(#id)"); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, ErrDuplicateID
		}
		return zero, err
	}
	return e, nil
}

// Update replaces the whole item. A missing item is reported as the zero value.
func (r *DynamoRepository[T, I]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	if err := r.put(ctx, e, "attribute_exists(#id)"); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	return e, nil
}

func (r *DynamoRepository[T, I]) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *DynamoRepository[T, I]) put(ctx context.Context, e T, condition string) error {
	av, err := attributevalue.MarshalMap(r.toItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
