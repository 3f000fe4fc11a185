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
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"

	// orderTimeLayout keeps the fractional seconds fixed-width so the
	// lexicographic created_at comparison matches time order. RFC3339Nano
	// drops trailing zeros, which would sort "...0.5Z" after "...0.52Z".
	orderTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type orderLineItem struct {
	ProductID string  `dynamodbav:"product_id"`
	Category  string  `dynamodbav:"category,omitempty"`
	Volume    string  `dynamodbav:"volume,omitempty"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	UserID    string          `dynamodbav:"user_id"`
	StoreID   string          `dynamodbav:"store_id,omitempty"`
	Status    string          `dynamodbav:"status"`
	Total     float64         `dynamodbav:"total"`
	Items     []orderLineItem `dynamodbav:"items"`
	CreatedAt string          `dynamodbav:"created_at"`
}

// OrderHistoryDynamoRepository reads completed orders from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// created_at is stored in orderTimeLayout (fixed-width nanoseconds, UTC),
// so the since filter compares lexicographically.

type OrderHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderHistoryRepository = (*OrderHistoryDynamoRepository)(nil)

func NewOrderHistoryDynamoRepository(ddb *dynamodb.Client) *OrderHistoryDynamoRepository {
	return &OrderHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderHistoryDynamoRepository) ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			FilterExpression:       aws.String("#status = :done AND #created_at >= :since"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#created_at": "created_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":   &types.AttributeValueMemberS{Value: userID},
				":done":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusDone)},
				":since": &types.AttributeValueMemberS{Value: formatOrderTime(since)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func formatOrderTime(t time.Time) string {
	return t.UTC().Format(orderTimeLayout)
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.Order{
		ID:        it.ID,
		UserID:    it.UserID,
		StoreID:   it.StoreID,
		Status:    entities.OrderStatus(it.Status),
		Total:     it.Total,
		CreatedAt: createdAt,
	}
	for _, line := range it.Items {
		o.Items = append(o.Items, entities.OrderItem{
			ProductID: line.ProductID,
			Category:  line.Category,
			Volume:    line.Volume,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return o
}
