package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// ProductInput carries the editable fields of a marketplace listing.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	PriceINR    float64
	Stock       int
	ImageURL    string
}

type ProductService interface {
	Create(ctx context.Context, actor *domain.User, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, actor *domain.User, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}
