package repository

import (
	"context"
	"sort"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStockRulesTableName = "stock_rules"

type stockRuleItem struct {
	ID           string  `dynamodbav:"id"`
	Priority     int     `dynamodbav:"priority"`
	MaxPrice     float64 `dynamodbav:"max_price,omitempty"`
	MaxStock     int     `dynamodbav:"max_stock,omitempty"`
	Availability string  `dynamodbav:"availability"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// StockRuleDynamoRepository persists StockRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The rule set is small; List scans the whole table and sorts in memory.

type StockRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockRuleRepository = (*StockRuleDynamoRepository)(nil)

func NewStockRuleDynamoRepository(ddb *dynamodb.Client) *StockRuleDynamoRepository {
	return &StockRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_RULES_TABLE", defaultStockRulesTableName),
	}
}

func (r *StockRuleDynamoRepository) List(ctx context.Context) ([]entities.StockRule, error) {
	var rules []entities.StockRule
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it stockRuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rules = append(rules, fromStockRuleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })
	return rules, nil
}

func (r *StockRuleDynamoRepository) Create(ctx context.Context, rule entities.StockRule) (entities.StockRule, error) {
	av, err := attributevalue.MarshalMap(toStockRuleItem(rule))
	if err != nil {
		return entities.StockRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.StockRule{}, err
	}
	return rule, nil
}

func (r *StockRuleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toStockRuleItem(r entities.StockRule) stockRuleItem {
	return stockRuleItem{
		ID:           r.ID,
		Priority:     r.Priority,
		MaxPrice:     r.MaxPrice,
		MaxStock:     r.MaxStock,
		Availability: string(r.Availability),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStockRuleItem(it stockRuleItem) entities.StockRule {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.StockRule{
		ID:           it.ID,
		Priority:     it.Priority,
		MaxPrice:     it.MaxPrice,
		MaxStock:     it.MaxStock,
		Availability: entities.StockAvailability(it.Availability),
		CreatedAt:    createdAt,
	}
}
