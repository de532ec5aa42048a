package ports

import (
	"context"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// AdminStats aggregates platform-wide counts for the admin dashboard.
type AdminStats struct {
	UsersByRole    map[domain.Role]int        `json:"users_by_role"`
	VerifiedUsers  int                        `json:"verified_users"`
	TotalUsers     int                        `json:"total_users"`
	TotalProducts  int                        `json:"total_products"`
	TotalWorkshops int                        `json:"total_workshops"`
	Registrations  int                        `json:"registrations"`
	OrdersByStatus map[domain.OrderStatus]int `json:"orders_by_status"`
	TotalOrders    int                        `json:"total_orders"`
}

// SellerAnalytics aggregates a woman seller's marketplace activity.
type SellerAnalytics struct {
	Products       int                        `json:"products"`
	Orders         int                        `json:"orders"`
	OrdersByStatus map[domain.OrderStatus]int `json:"orders_by_status"`
	// RevenueINR sums snapshot totals of delivered orders only.
	RevenueINR float64 `json:"revenue_inr"`
}

type StatsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	SellerAnalytics(ctx context.Context, sellerID string) (*SellerAnalytics, error)
}
