package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// OrderService implements the marketplace order lifecycle. The unit price is
// snapshotted at order time so later listing edits do not rewrite history.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, logger: logger}
}

func (s *OrderService) Place(ctx context.Context, actor *domain.User, in ports.PlaceOrderInput) (*domain.Order, error) {
	if actor.Role != domain.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ProductID:    product.ID,
		SellerID:     product.SellerID,
		CustomerID:   actor.ID,
		Quantity:     in.Quantity,
		UnitPriceINR: product.PriceINR,
		Status:       domain.OrderPlaced,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to place order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("product_id", product.ID).
		Str("customer_id", actor.ID).
		Msg("order placed")
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.visible(actor, order) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// UpdateStatus advances the order through its lifecycle. Sellers and admins
// confirm/deliver; the ordering customer may only cancel.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *domain.User, id, rawStatus string) (*domain.Order, error) {
	next, ok := domain.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.Role == domain.RoleAdmin:
	case order.SellerID == actor.ID:
	case order.CustomerID == actor.ID && next == domain.OrderCancelled:
	default:
		return nil, domain.ErrForbidden
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(next)).
		Msg("order status updated")
	return updated, nil
}

func (s *OrderService) List(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return s.orders.List(ctx, ports.OrderFilter{})
	case domain.RoleWoman:
		return s.orders.List(ctx, ports.OrderFilter{SellerID: actor.ID})
	case domain.RoleCustomer:
		return s.orders.List(ctx, ports.OrderFilter{CustomerID: actor.ID})
	}
	return nil, domain.ErrForbidden
}

func (s *OrderService) visible(actor *domain.User, order *domain.Order) bool {
	return actor.Role == domain.RoleAdmin ||
		order.SellerID == actor.ID ||
		order.CustomerID == actor.ID
}
