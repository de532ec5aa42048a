package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// OrderFilter narrows order listings to an actor's scope.
type OrderFilter struct {
	SellerID   string
	CustomerID string
	Status     domain.OrderStatus
}

// OrderRepository defines persistence for marketplace orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}
