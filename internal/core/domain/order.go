package domain

import "time"

// OrderStatus represents the lifecycle state of a marketplace order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus validates a user-supplied order status string.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPlaced, OrderConfirmed, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Order records a customer's purchase of a product. UnitPriceINR snapshots
// the product price at order time so later price edits do not rewrite history.
type Order struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	SellerID     string      `json:"seller_id"`
	CustomerID   string      `json:"customer_id"`
	Quantity     int         `json:"quantity"`
	UnitPriceINR float64     `json:"unit_price_inr"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TotalINR is the order total at the snapshot price.
func (o Order) TotalINR() float64 {
	return o.UnitPriceINR * float64(o.Quantity)
}
