package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// StatsService computes dashboard aggregations by grouping and summing over
// repository reads.
type StatsService struct {
	users     ports.UserRepository
	products  ports.ProductRepository
	orders    ports.OrderRepository
	workshops ports.WorkshopRepository
	logger    zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	workshops ports.WorkshopRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		users:     users,
		products:  products,
		orders:    orders,
		workshops: workshops,
		logger:    logger,
	}
}

func (s *StatsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	stats := &ports.AdminStats{
		UsersByRole:    make(map[domain.Role]int),
		OrdersByStatus: make(map[domain.OrderStatus]int),
	}

	users, err := s.users.List(ctx, domain.RoleNone)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = len(users)
	for _, u := range users {
		if u.Role.Assigned() {
			stats.UsersByRole[u.Role]++
		}
		if u.Verified {
			stats.VerifiedUsers++
		}
	}

	products, err := s.products.List(ctx, ports.ProductFilter{})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = len(products)

	orders, err := s.orders.List(ctx, ports.OrderFilter{})
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = len(orders)
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
	}

	workshops, err := s.workshops.List(ctx, "")
	if err != nil {
		return nil, err
	}
	stats.TotalWorkshops = len(workshops)
	for _, w := range workshops {
		n, err := s.workshops.CountRegistrations(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		stats.Registrations += n
	}

	return stats, nil
}

func (s *StatsService) SellerAnalytics(ctx context.Context, sellerID string) (*ports.SellerAnalytics, error) {
	analytics := &ports.SellerAnalytics{
		OrdersByStatus: make(map[domain.OrderStatus]int),
	}

	products, err := s.products.List(ctx, ports.ProductFilter{SellerID: sellerID})
	if err != nil {
		return nil, err
	}
	analytics.Products = len(products)

	orders, err := s.orders.List(ctx, ports.OrderFilter{SellerID: sellerID})
	if err != nil {
		return nil, err
	}
	analytics.Orders = len(orders)
	for _, o := range orders {
		analytics.OrdersByStatus[o.Status]++
		if o.Status == domain.OrderDelivered {
			analytics.RevenueINR += o.TotalINR()
		}
	}

	return analytics, nil
}
