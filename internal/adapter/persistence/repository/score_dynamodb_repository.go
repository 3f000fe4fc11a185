package repository

import (
	"context"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultScoresTableName = "product_scores"

type productScoreItem struct {
	ProductID    string   `dynamodbav:"product_id"`
	Auto         float64  `dynamodbav:"auto"`
	Manual       *float64 `dynamodbav:"manual,omitempty"`
	PromoBoost   float64  `dynamodbav:"promo_boost,omitempty"`
	NoveltyBoost float64  `dynamodbav:"novelty_boost,omitempty"`
}

// ScoreDynamoRepository reads ranking scores from DynamoDB.
//
// Table requirements:
//   - PK: product_id (string)

type ScoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScoreRepository = (*ScoreDynamoRepository)(nil)

func NewScoreDynamoRepository(ddb *dynamodb.Client) *ScoreDynamoRepository {
	return &ScoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SCORES_TABLE", defaultScoresTableName),
	}
}

func (r *ScoreDynamoRepository) GetByProductIDs(ctx context.Context, ids []string) (map[string]entities.ProductScore, error) {
	if len(ids) == 0 {
		return map[string]entities.ProductScore{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		})
	}
	items, err := batchGetItems(ctx, r.ddb, r.tableName, keys)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]entities.ProductScore, len(items))
	for _, raw := range items {
		var it productScoreItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		scores[it.ProductID] = entities.ProductScore{
			ProductID:    it.ProductID,
			Auto:         it.Auto,
			Manual:       it.Manual,
			PromoBoost:   it.PromoBoost,
			NoveltyBoost: it.NoveltyBoost,
		}
	}
	return scores, nil
}
