package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// batchGetLimit is the DynamoDB BatchGetItem hard cap per request.
const batchGetLimit = 100

// batchGetItems fetches the given keys in chunks of at most 100, retrying
// unprocessed keys until the table has answered for all of them.
func batchGetItems(ctx context.Context, ddb *dynamodb.Client, tableName string, keys []map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	items := make([]map[string]types.AttributeValue, 0, len(keys))

	for start := 0; start < len(keys); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(keys) {
			end = len(keys)
		}
		pending := keys[start:end]

		for len(pending) > 0 {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					tableName: {Keys: pending},
				},
			})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[tableName]...)
			pending = out.UnprocessedKeys[tableName].Keys
		}
	}
	return items, nil
}
