package repository

import (
	"context"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCartTableName = "cart_lines"

type cartLineItem struct {
	CartID    string  `dynamodbav:"cart_id"`
	ProductID string  `dynamodbav:"product_id"`
	UserID    string  `dynamodbav:"user_id"`
	StoreID   string  `dynamodbav:"store_id"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists CartLine entities in DynamoDB.
//
// Table requirements:
//   - PK: cart_id (string, "user_id#store_id")
//   - SK: product_id (string)
//
// Upsert is a plain PutItem: writing the same (cart, product) key replaces
// the line, which gives the overwrite semantics draft application needs.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CART_TABLE", defaultCartTableName),
	}
}

func (r *CartDynamoRepository) Upsert(ctx context.Context, line entities.CartLine) (entities.CartLine, error) {
	av, err := attributevalue.MarshalMap(cartLineItem{
		CartID:    line.UserID + "#" + line.StoreID,
		ProductID: line.ProductID,
		UserID:    line.UserID,
		StoreID:   line.StoreID,
		Quantity:  line.Quantity,
		Price:     line.Price,
		UpdatedAt: line.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.CartLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CartLine{}, err
	}
	return line, nil
}
