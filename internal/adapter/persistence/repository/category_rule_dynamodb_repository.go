package repository

import (
	"context"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCategoryRulesTableName = "category_rules"

type categoryRuleItem struct {
	ID          string `dynamodbav:"id"`
	Category    string `dynamodbav:"category"`
	Volume      string `dynamodbav:"volume,omitempty"`
	MinQuantity int    `dynamodbav:"min_quantity"`
	Enabled     bool   `dynamodbav:"enabled"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CategoryRuleDynamoRepository persists CategoryRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CategoryRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRuleRepository = (*CategoryRuleDynamoRepository)(nil)

func NewCategoryRuleDynamoRepository(ddb *dynamodb.Client) *CategoryRuleDynamoRepository {
	return &CategoryRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORY_RULES_TABLE", defaultCategoryRulesTableName),
	}
}

func (r *CategoryRuleDynamoRepository) List(ctx context.Context) ([]entities.CategoryRule, error) {
	var rules []entities.CategoryRule
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
			var it categoryRuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rules = append(rules, fromCategoryRuleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return rules, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CategoryRuleDynamoRepository) Create(ctx context.Context, rule entities.CategoryRule) (entities.CategoryRule, error) {
	av, err := attributevalue.MarshalMap(toCategoryRuleItem(rule))
	if err != nil {
		return entities.CategoryRule{}, err
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
		return entities.CategoryRule{}, err
	}
	return rule, nil
}

func (r *CategoryRuleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toCategoryRuleItem(r entities.CategoryRule) categoryRuleItem {
	return categoryRuleItem{
		ID:          r.ID,
		Category:    r.Category,
		Volume:      r.Volume,
		MinQuantity: r.MinQuantity,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCategoryRuleItem(it categoryRuleItem) entities.CategoryRule {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CategoryRule{
		ID:          it.ID,
		Category:    it.Category,
		Volume:      it.Volume,
		MinQuantity: it.MinQuantity,
		Enabled:     it.Enabled,
		CreatedAt:   createdAt,
	}
}
