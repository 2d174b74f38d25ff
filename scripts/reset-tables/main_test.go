package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTable struct {
	keys       []string
	items      []map[string]types.AttributeValue
	batches    [][]types.WriteRequest
	unprocess  bool
	projection string
}

func (f *fakeTable) DescribeTable(
	_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options),
) (*dynamodb.DescribeTableOutput, error) {
	schema := make([]types.KeySchemaElement, 0, len(f.keys))
	for _, k := range f.keys {
		schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(k), KeyType: types.KeyTypeHash})
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{KeySchema: schema}}, nil
}

func (f *fakeTable) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.projection = aws.ToString(in.ProjectionExpression)
	return &dynamodb.ScanOutput{Items: f.items}, nil
}

func (f *fakeTable) BatchWriteItem(
	_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options),
) (*dynamodb.BatchWriteItemOutput, error) {
	for table, reqs := range in.RequestItems {
		f.batches = append(f.batches, reqs)
		if f.unprocess && len(f.batches) == 1 {
			return &dynamodb.BatchWriteItemOutput{
				UnprocessedItems: map[string][]types.WriteRequest{table: reqs[:1]},
			}, nil
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func items(n int) []map[string]types.AttributeValue {
	out := make([]map[string]types.AttributeValue, 0, n)
	for i := range n {
		out = append(out, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fmt.Sprintf("task-%d", i)},
		})
	}
	return out
}

func TestResetTable_Batches(t *testing.T) {
	fake := &fakeTable{keys: []string{"id"}, items: items(30)}

	deleted, err := resetTable(context.Background(), fake, "tasks")
	require.NoError(t, err)
	assert.Equal(t, int64(30), deleted)
	require.Len(t, fake.batches, 2)
	assert.Len(t, fake.batches[0], batchWriteLimit)
	assert.Len(t, fake.batches[1], 5)
	assert.NotEmpty(t, fake.projection)
}

func TestResetTable_RetriesUnprocessed(t *testing.T) {
	fake := &fakeTable{keys: []string{"id"}, items: items(3), unprocess: true}

	deleted, err := resetTable(context.Background(), fake, "tasks")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	require.Len(t, fake.batches, 2)
	assert.Len(t, fake.batches[1], 1)
}

func TestResetTable_NoKeySchema(t *testing.T) {
	_, err := resetTable(context.Background(), &fakeTable{}, "tasks")
	assert.ErrorContains(t, err, "no key schema")
}
