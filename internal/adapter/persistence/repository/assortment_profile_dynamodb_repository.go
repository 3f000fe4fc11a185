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

const defaultProfilesTableName = "assortment_profiles"

type assortmentProfileItem struct {
	ID        string             `dynamodbav:"id"`
	Name      string             `dynamodbav:"name"`
	Weights   map[string]float64 `dynamodbav:"weights"`
	IsDefault bool               `dynamodbav:"is_default"`
	CreatedAt string             `dynamodbav:"created_at"`
}

// AssortmentProfileDynamoRepository persists AssortmentProfile entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The default flag lives on each item; ClearDefaults scans for flagged
// items and unsets them one by one. Profiles are few, so the scan is fine.

type AssortmentProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssortmentProfileRepository = (*AssortmentProfileDynamoRepository)(nil)

func NewAssortmentProfileDynamoRepository(ddb *dynamodb.Client) *AssortmentProfileDynamoRepository {
	return &AssortmentProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSORTMENT_PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *AssortmentProfileDynamoRepository) List(ctx context.Context) ([]entities.AssortmentProfile, error) {
	var profiles []entities.AssortmentProfile
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
			var it assortmentProfileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			profiles = append(profiles, fromAssortmentProfileItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return profiles, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AssortmentProfileDynamoRepository) GetDefault(ctx context.Context) (*entities.AssortmentProfile, error) {
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#is_default = :true"),
			ExpressionAttributeNames: map[string]string{
				"#is_default": "is_default",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		if len(out.Items) > 0 {
			var it assortmentProfileItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return nil, err
			}
			p := fromAssortmentProfileItem(it)
			return &p, nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AssortmentProfileDynamoRepository) Create(ctx context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error) {
	av, err := attributevalue.MarshalMap(toAssortmentProfileItem(p))
	if err != nil {
		return entities.AssortmentProfile{}, err
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
		return entities.AssortmentProfile{}, err
	}
	return p, nil
}

func (r *AssortmentProfileDynamoRepository) ClearDefaults(ctx context.Context) error {
	profiles, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, p := range profiles {
		if !p.Default {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: p.ID},
			},
			UpdateExpression: aws.String("SET #is_default = :false"),
			ExpressionAttributeNames: map[string]string{
				"#is_default": "is_default",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *AssortmentProfileDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toAssortmentProfileItem(p entities.AssortmentProfile) assortmentProfileItem {
	return assortmentProfileItem{
		ID:        p.ID,
		Name:      p.Name,
		Weights:   p.Weights,
		IsDefault: p.Default,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssortmentProfileItem(it assortmentProfileItem) entities.AssortmentProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AssortmentProfile{
		ID:        it.ID,
		Name:      it.Name,
		Weights:   it.Weights,
		Default:   it.IsDefault,
		CreatedAt: createdAt,
	}
}
