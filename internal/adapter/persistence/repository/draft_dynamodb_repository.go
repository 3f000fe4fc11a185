package repository

import (
	"context"
	"errors"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "autopick_drafts"

type draftParamsItem struct {
	MinSum            float64  `dynamodbav:"min_sum,omitempty"`
	MaxSum            float64  `dynamodbav:"max_sum,omitempty"`
	MaxPricePerItem   float64  `dynamodbav:"max_price_per_item,omitempty"`
	AssortmentMode    float64  `dynamodbav:"assortment_mode,omitempty"`
	ExcludeCategories []string `dynamodbav:"exclude_categories,omitempty"`
	IncludeCategories []string `dynamodbav:"include_categories,omitempty"`
	Target            float64  `dynamodbav:"target"`
	LowerBound        float64  `dynamodbav:"lower_bound"`
	UpperBound        float64  `dynamodbav:"upper_bound"`
}

type draftLineItem struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Category  string  `dynamodbav:"category,omitempty"`
	Volume    string  `dynamodbav:"volume,omitempty"`
	ImageURL  string  `dynamodbav:"image_url,omitempty"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
	Total     float64 `dynamodbav:"total"`
}

type draftItem struct {
	ID        string          `dynamodbav:"id"`
	UserID    string          `dynamodbav:"user_id"`
	StoreID   string          `dynamodbav:"store_id"`
	Params    draftParamsItem `dynamodbav:"params"`
	Items     []draftLineItem `dynamodbav:"items"`
	Total     float64         `dynamodbav:"total"`
	Status    string          `dynamodbav:"status"`
	CreatedAt string          `dynamodbav:"created_at"`
	ExpiresAt string          `dynamodbav:"expires_at"`
}

// DraftDynamoRepository persists AutoPickDraft entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status moves only through TransitionStatus, which is conditional on the
// current status. Concurrent apply attempts serialize on that guard.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Create(ctx context.Context, d entities.AutoPickDraft) (entities.AutoPickDraft, error) {
	av, err := attributevalue.MarshalMap(toDraftItem(d))
	if err != nil {
		return entities.AutoPickDraft{}, err
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
		return entities.AutoPickDraft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.AutoPickDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AutoPickDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.AutoPickDraft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AutoPickDraft{}, err
	}
	return fromDraftItem(it), nil
}

func (r *DraftDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.DraftStatus) (entities.AutoPickDraft, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AutoPickDraft{}, nil
		}
		return entities.AutoPickDraft{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AutoPickDraft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AutoPickDraft{}, err
	}
	return fromDraftItem(it), nil
}

func toDraftItem(d entities.AutoPickDraft) draftItem {
	it := draftItem{
		ID:      d.ID,
		UserID:  d.UserID,
		StoreID: d.StoreID,
		Params: draftParamsItem{
			MinSum:            d.Params.MinSum,
			MaxSum:            d.Params.MaxSum,
			MaxPricePerItem:   d.Params.MaxPricePerItem,
			AssortmentMode:    d.Params.AssortmentMode,
			ExcludeCategories: d.Params.ExcludeCategories,
			IncludeCategories: d.Params.IncludeCategories,
			Target:            d.Params.Target,
			LowerBound:        d.Params.LowerBound,
			UpperBound:        d.Params.UpperBound,
		},
		Total:     d.Total,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: d.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
	for _, line := range d.Items {
		it.Items = append(it.Items, draftLineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Volume:    line.Volume,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     line.Total,
		})
	}
	return it
}

func fromDraftItem(it draftItem) entities.AutoPickDraft {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)

	d := entities.AutoPickDraft{
		ID:      it.ID,
		UserID:  it.UserID,
		StoreID: it.StoreID,
		Params: entities.DraftParams{
			MinSum:            it.Params.MinSum,
			MaxSum:            it.Params.MaxSum,
			MaxPricePerItem:   it.Params.MaxPricePerItem,
			AssortmentMode:    it.Params.AssortmentMode,
			ExcludeCategories: it.Params.ExcludeCategories,
			IncludeCategories: it.Params.IncludeCategories,
			Target:            it.Params.Target,
			LowerBound:        it.Params.LowerBound,
			UpperBound:        it.Params.UpperBound,
		},
		Total:     it.Total,
		Status:    entities.DraftStatus(it.Status),
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
	for _, line := range it.Items {
		d.Items = append(d.Items, entities.DraftItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			Volume:    line.Volume,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     line.Total,
		})
	}
	return d
}
