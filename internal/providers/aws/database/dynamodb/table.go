// Package dynamodb implements the task and user repositories on Amazon DynamoDB.
package dynamodb

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/taskapp/taskapp/internal/logger"
)

// table performs the single-key item operations shared by the repositories.
// Errors are returned unclassified; callers map them to app errors.
type table struct {
	client  Client
	name    string
	keyAttr string
	logger  *slog.Logger
}

func (t *table) logCall(ctx context.Context, operation string, args ...any) {
	reqLogger := logger.DeriveRequestLogger(ctx, t.logger)
	logArgs := append([]any{
		"operation", "DynamoDB." + operation,
		"table", t.name,
	}, args...)
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))
}

func (t *table) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		t.keyAttr: &types.AttributeValueMemberS{Value: id},
	}
}

// putItem writes item guarded by cond.
func (t *table) putItem(
	ctx context.Context,
	id string,
	item map[string]types.AttributeValue,
	cond expression.ConditionBuilder,
) error {
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("build condition expression: %w", err)
	}

	t.logCall(ctx, "PutItem", t.keyAttr, id)

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(t.name),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}

// getItem returns nil when the item does not exist.
func (t *table) getItem(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	t.logCall(ctx, "GetItem", t.keyAttr, id)

	result, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(result.Item) == 0 {
		return nil, nil
	}
	return result.Item, nil
}

// scanAll reads every page of the table.
func (t *table) scanAll(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	t.logCall(ctx, "Scan")

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(t.client, &dynamodb.ScanInput{
		TableName: aws.String(t.name),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// deleteItem reports whether an item was removed.
func (t *table) deleteItem(ctx context.Context, id string) (bool, error) {
	t.logCall(ctx, "DeleteItem", t.keyAttr, id)

	result, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.name),
		Key:          t.key(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(result.Attributes) > 0, nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return stderrors.As(err, &ccf)
}
