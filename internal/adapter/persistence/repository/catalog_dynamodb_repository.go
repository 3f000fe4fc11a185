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

const (
	defaultProductsTableName = "products"
	productsCategoryIndex    = "category-index"
)

type promotionItem struct {
	ID            string  `dynamodbav:"id"`
	ProductID     string  `dynamodbav:"product_id"`
	Price         float64 `dynamodbav:"price"`
	ExpiresAt     string  `dynamodbav:"expires_at"`
	ApplyModifier *bool   `dynamodbav:"apply_modifier,omitempty"`
}

type productImageItem struct {
	URL      string `dynamodbav:"url"`
	Position int    `dynamodbav:"position"`
}

type productItem struct {
	ID         string             `dynamodbav:"id"`
	Name       string             `dynamodbav:"name"`
	Category   string             `dynamodbav:"category,omitempty"`
	Volume     string             `dynamodbav:"volume,omitempty"`
	BasePrice  float64            `dynamodbav:"base_price"`
	Stock      int                `dynamodbav:"stock"`
	BoxSize    int                `dynamodbav:"box_size,omitempty"`
	Archived   bool               `dynamodbav:"archived"`
	Novelty    bool               `dynamodbav:"novelty"`
	FixedPrice bool               `dynamodbav:"fixed_price"`
	Promotion  *promotionItem     `dynamodbav:"promotion,omitempty"`
	Images     []productImageItem `dynamodbav:"images,omitempty"`
	CreatedAt  string             `dynamodbav:"created_at"`
	UpdatedAt  string             `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: category-index (PK: category)
//
// The catalog is written by the admin import pipeline; this repository is
// read-only on purpose.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *CatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#archived = :false AND #stock > :zero"),
			ExpressionAttributeNames: map[string]string{
				"#archived": "archived",
				"#stock":    "stock",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false": &types.AttributeValueMemberBOOL{Value: false},
				":zero":  &types.AttributeValueMemberN{Value: "0"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return products, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CatalogDynamoRepository) ListByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	if category == "" {
		return r.ListActive(ctx)
	}

	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(productsCategoryIndex),
			KeyConditionExpression: aws.String("category = :cat"),
			FilterExpression:       aws.String("#archived = :false"),
			ExpressionAttributeNames: map[string]string{
				"#archived": "archived",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cat":   &types.AttributeValueMemberS{Value: category},
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return products, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CatalogDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]entities.Product, error) {
	if len(ids) == 0 {
		return map[string]entities.Product{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}
	items, err := batchGetItems(ctx, r.ddb, r.tableName, keys)
	if err != nil {
		return nil, err
	}

	products := make(map[string]entities.Product, len(items))
	for _, raw := range items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products[it.ID] = fromProductItem(it)
	}
	return products, nil
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Product{
		ID:         it.ID,
		Name:       it.Name,
		Category:   it.Category,
		Volume:     it.Volume,
		BasePrice:  it.BasePrice,
		Stock:      it.Stock,
		BoxSize:    it.BoxSize,
		Archived:   it.Archived,
		Novelty:    it.Novelty,
		FixedPrice: it.FixedPrice,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if it.Promotion != nil {
		expiresAt, _ := time.Parse(time.RFC3339Nano, it.Promotion.ExpiresAt)
		p.Promotion = &entities.Promotion{
			ID:            it.Promotion.ID,
			ProductID:     it.Promotion.ProductID,
			Price:         it.Promotion.Price,
			ExpiresAt:     expiresAt,
			ApplyModifier: it.Promotion.ApplyModifier,
		}
	}
	for _, img := range it.Images {
		p.Images = append(p.Images, entities.ProductImage{URL: img.URL, Position: img.Position})
	}
	return p
}
