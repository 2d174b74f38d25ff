package dynamodb

import (
	"context"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MockDynamoDBClient is a simple in-memory mock implementation of Client for testing.
// Tables must be registered with CreateTable before use. Conditional writes
// support attribute_exists and attribute_not_exists on a single attribute.
type MockDynamoDBClient struct {
	mu sync.RWMutex

	// Tables maps table name -> partition key value -> item
	Tables map[string]map[string]map[string]types.AttributeValue

	// KeyAttributes maps table name -> partition key attribute name
	KeyAttributes map[string]string

	// ScanPageSize splits Scan results into pages when the request has no Limit
	ScanPageSize int

	// Error injection for testing error scenarios
	PutItemError       error
	GetItemError       error
	DeleteItemError    error
	ScanError          error
	DescribeTableError error

	// Call tracking for test assertions
	PutItemCalls       int
	GetItemCalls       int
	DeleteItemCalls    int
	ScanCalls          int
	DescribeTableCalls int
}

// NewMockDynamoDBClient creates a new mock DynamoDB client for testing.
func NewMockDynamoDBClient() *MockDynamoDBClient {
	return &MockDynamoDBClient{
		Tables:        make(map[string]map[string]map[string]types.AttributeValue),
		KeyAttributes: make(map[string]string),
	}
}

// CreateTable registers an empty table keyed by keyAttr.
func (m *MockDynamoDBClient) CreateTable(name, keyAttr string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Tables[name] = make(map[string]map[string]types.AttributeValue)
	m.KeyAttributes[name] = keyAttr
}

func (m *MockDynamoDBClient) lookupTable(name *string) (map[string]map[string]types.AttributeValue, string, error) {
	tableName := aws.ToString(name)
	tbl, ok := m.Tables[tableName]
	if !ok {
		return nil, "", &types.ResourceNotFoundException{
			Message: aws.String(fmt.Sprintf("Requested resource not found: Table: %s not found", tableName)),
		}
	}
	return tbl, m.KeyAttributes[tableName], nil
}

// PutItem stores an item in the mock table.
func (m *MockDynamoDBClient) PutItem(
	_ context.Context,
	params *dynamodb.PutItemInput,
	_ ...func(*dynamodb.Options),
) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutItemCalls++

	if m.PutItemError != nil {
		return nil, m.PutItemError
	}

	tbl, keyAttr, err := m.lookupTable(params.TableName)
	if err != nil {
		return nil, err
	}

	key := getStringValue(params.Item[keyAttr])
	if key == "" {
		return nil, fmt.Errorf("item is missing partition key %q", keyAttr)
	}

	ok, err := evaluateCondition(params.ConditionExpression, params.ExpressionAttributeNames, tbl[key])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}

	tbl[key] = maps.Clone(params.Item)

	return &dynamodb.PutItemOutput{}, nil
}

// GetItem retrieves an item from the mock table.
func (m *MockDynamoDBClient) GetItem(
	_ context.Context,
	params *dynamodb.GetItemInput,
	_ ...func(*dynamodb.Options),
) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetItemCalls++

	if m.GetItemError != nil {
		return nil, m.GetItemError
	}

	tbl, keyAttr, err := m.lookupTable(params.TableName)
	if err != nil {
		return nil, err
	}

	return &dynamodb.GetItemOutput{
		Item: maps.Clone(tbl[getStringValue(params.Key[keyAttr])]),
	}, nil
}

// DeleteItem removes an item from the mock table.
func (m *MockDynamoDBClient) DeleteItem(
	_ context.Context,
	params *dynamodb.DeleteItemInput,
	_ ...func(*dynamodb.Options),
) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteItemCalls++

	if m.DeleteItemError != nil {
		return nil, m.DeleteItemError
	}

	tbl, keyAttr, err := m.lookupTable(params.TableName)
	if err != nil {
		return nil, err
	}

	key := getStringValue(params.Key[keyAttr])
	old := tbl[key]

	ok, err := evaluateCondition(params.ConditionExpression, params.ExpressionAttributeNames, old)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}

	delete(tbl, key)

	out := &dynamodb.DeleteItemOutput{}
	if params.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

// Scan returns items ordered by partition key, honoring Limit and ExclusiveStartKey.
func (m *MockDynamoDBClient) Scan(
	_ context.Context,
	params *dynamodb.ScanInput,
	_ ...func(*dynamodb.Options),
) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ScanCalls++

	if m.ScanError != nil {
		return nil, m.ScanError
	}

	tbl, keyAttr, err := m.lookupTable(params.TableName)
	if err != nil {
		return nil, err
	}

	keys := slices.Sorted(maps.Keys(tbl))
	if start := getStringValue(params.ExclusiveStartKey[keyAttr]); start != "" {
		idx, found := slices.BinarySearch(keys, start)
		if found {
			idx++
		}
		keys = keys[idx:]
	}

	out := &dynamodb.ScanOutput{}
	limit := int(aws.ToInt32(params.Limit))
	if limit == 0 {
		limit = m.ScanPageSize
	}
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: keys[len(keys)-1]},
		}
	}

	for _, k := range keys {
		out.Items = append(out.Items, maps.Clone(tbl[k]))
	}
	out.Count = safeInt32Count(len(out.Items))
	out.ScannedCount = out.Count

	return out, nil
}

// DescribeTable reports registered tables as ACTIVE.
func (m *MockDynamoDBClient) DescribeTable(
	_ context.Context,
	params *dynamodb.DescribeTableInput,
	_ ...func(*dynamodb.Options),
) (*dynamodb.DescribeTableOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DescribeTableCalls++

	if m.DescribeTableError != nil {
		return nil, m.DescribeTableError
	}

	tbl, _, err := m.lookupTable(params.TableName)
	if err != nil {
		return nil, err
	}

	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
			ItemCount:   aws.Int64(int64(len(tbl))),
		},
	}, nil
}

// ResetCallCounts resets all call counters to zero.
func (m *MockDynamoDBClient) ResetCallCounts() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutItemCalls = 0
	m.GetItemCalls = 0
	m.DeleteItemCalls = 0
	m.ScanCalls = 0
	m.DescribeTableCalls = 0
}

var conditionPattern = regexp.MustCompile(`^\s*(attribute_exists|attribute_not_exists)\s*\(\s*([#\w]+)\s*\)\s*$`)

// evaluateCondition checks a condition expression against the current item (nil if absent).
func evaluateCondition(expr *string, names map[string]string, item map[string]types.AttributeValue) (bool, error) {
	if aws.ToString(expr) == "" {
		return true, nil
	}

	match := conditionPattern.FindStringSubmatch(*expr)
	if match == nil {
		return false, fmt.Errorf("mock: unsupported condition expression %q", *expr)
	}

	attr := match[2]
	if resolved, ok := names[attr]; ok {
		attr = resolved
	}
	_, exists := item[attr]

	if match[1] == "attribute_exists" {
		return exists, nil
	}
	return !exists, nil
}

// getStringValue extracts a string value from an AttributeValue.
// This is a simplified helper for the mock implementation.
func getStringValue(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	default:
		return ""
	}
}

// safeInt32Count safely converts an int count to int32, clamping to max int32 if necessary.
func safeInt32Count(count int) int32 {
	if count > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(count)
}
