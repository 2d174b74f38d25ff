// Package main deletes every item from the taskapp DynamoDB tables.
// It is meant for development stacks and local DynamoDB.
//
// Usage: reset-tables [table ...]
//
// Without arguments the tables named by TASKAPP_AWS_TASKS_TABLE and
// TASKAPP_AWS_USERS_TABLE are reset. TASKAPP_AWS_ENDPOINT_URL points the
// client at a local DynamoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

// batchWriteLimit is the maximum number of requests in one BatchWriteItem call.
const batchWriteLimit = 25

const scriptTimeout = 10 * time.Minute

func main() {
	tables := os.Args[1:]
	if len(tables) == 0 {
		for _, env := range []string{"TASKAPP_AWS_TASKS_TABLE", "TASKAPP_AWS_USERS_TABLE"} {
			if name := os.Getenv(env); name != "" {
				tables = append(tables, name)
			}
		}
	}
	if len(tables) == 0 {
		log.Fatalf("error: usage: %s <table-name> [table-name ...]", os.Args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("error: failed to load AWS configuration: %v", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint := os.Getenv("TASKAPP_AWS_ENDPOINT_URL"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		g.Go(func() error {
			deleted, resetErr := resetTable(gctx, client, table)
			if resetErr != nil {
				return fmt.Errorf("%s: %w", table, resetErr)
			}
			log.Printf("reset %s: deleted %d items", table, deleted)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		log.Fatalf("error: %v", err)
	}
}

// tableAPI is the subset of the DynamoDB client used here.
type tableAPI interface {
	dynamodb.DescribeTableAPIClient
	dynamodb.ScanAPIClient
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput,
		optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

func resetTable(ctx context.Context, client tableAPI, table string) (int64, error) {
	keys, err := keyAttributes(ctx, client, table)
	if err != nil {
		return 0, err
	}

	names := make([]expression.NameBuilder, 0, len(keys))
	for _, k := range keys {
		names = append(names, expression.Name(k))
	}
	projection := expression.NamesList(names[0], names[1:]...)
	expr, err := expression.NewBuilder().WithProjection(projection).Build()
	if err != nil {
		return 0, fmt.Errorf("build projection: %w", err)
	}

	var deleted int64
	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName:                aws.String(table),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	for paginator.HasMorePages() {
		page, pageErr := paginator.NextPage(ctx)
		if pageErr != nil {
			return deleted, fmt.Errorf("scan: %w", pageErr)
		}
		for start := 0; start < len(page.Items); start += batchWriteLimit {
			batch := page.Items[start:min(start+batchWriteLimit, len(page.Items))]
			if err = deleteBatch(ctx, client, table, batch); err != nil {
				return deleted, err
			}
			deleted += int64(len(batch))
		}
	}
	return deleted, nil
}

func keyAttributes(ctx context.Context, client dynamodb.DescribeTableAPIClient, table string) ([]string, error) {
	out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err != nil {
		return nil, fmt.Errorf("describe table: %w", err)
	}
	if out.Table == nil || len(out.Table.KeySchema) == 0 {
		return nil, fmt.Errorf("table has no key schema")
	}

	keys := make([]string, 0, len(out.Table.KeySchema))
	for _, k := range out.Table.KeySchema {
		keys = append(keys, aws.ToString(k.AttributeName))
	}
	return keys, nil
}

// deleteBatch deletes the items, resubmitting whatever DynamoDB leaves unprocessed.
func deleteBatch(ctx context.Context, client tableAPI, table string, items []map[string]types.AttributeValue) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: item}})
	}

	for len(requests) > 0 {
		out, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: requests},
		})
		if err != nil {
			return fmt.Errorf("batch delete: %w", err)
		}
		requests = out.UnprocessedItems[table]
	}
	return nil
}
