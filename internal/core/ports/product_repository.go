package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// ProductFilter narrows marketplace listings.
type ProductFilter struct {
	SellerID string
	Category string
}

// ProductRepository defines persistence for marketplace products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}
