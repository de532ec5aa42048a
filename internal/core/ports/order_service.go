package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// PlaceOrderInput carries a customer's purchase request.
type PlaceOrderInput struct {
	ProductID string
	Quantity  int
}

type OrderService interface {
	Place(ctx context.Context, actor *domain.User, in PlaceOrderInput) (*domain.Order, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Order, error)
	// UpdateStatus advances the order through its lifecycle; invalid
	// transitions fail with domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, actor *domain.User, id, rawStatus string) (*domain.Order, error)
	// List returns the orders visible to the actor: own purchases for
	// customers, own sales for sellers, everything for admins.
	List(ctx context.Context, actor *domain.User) ([]domain.Order, error)
}
