package usecase

import (
	"context"
	"strings"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the read-only catalog browse surface.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, category string) ([]entities.Product, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, category string) ([]entities.Product, error) {
	return u.catalog.ListByCategory(ctx, strings.TrimSpace(category))
}
