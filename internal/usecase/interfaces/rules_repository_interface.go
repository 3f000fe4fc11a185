package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// ICategoryRuleRepository abstracts DynamoDB persistence for CategoryRule.

type ICategoryRuleRepository interface {
	List(ctx context.Context) ([]entities.CategoryRule, error)
	Create(ctx context.Context, r entities.CategoryRule) (entities.CategoryRule, error)
	// Delete reports whether a rule with the given id existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// IStockRuleRepository abstracts DynamoDB persistence for StockRule.

type IStockRuleRepository interface {
	// List returns all rules sorted by ascending priority.
	List(ctx context.Context) ([]entities.StockRule, error)
	Create(ctx context.Context, r entities.StockRule) (entities.StockRule, error)
	Delete(ctx context.Context, id string) (bool, error)
}
