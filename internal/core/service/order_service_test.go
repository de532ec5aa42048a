package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := *p
	r.nextID++
	clone.ID = "product-" + strconv.Itoa(r.nextID)
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if f.SellerID != "" && p.SellerID != f.SellerID {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	clone := *o
	r.nextID++
	clone.ID = "order-" + strconv.Itoa(r.nextID)
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context, f ports.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if f.SellerID != "" && o.SellerID != f.SellerID {
			continue
		}
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

var _ ports.ProductRepository = (*stubProductRepo)(nil)
var _ ports.OrderRepository = (*stubOrderRepo)(nil)

func seedProduct(t *testing.T, repo *stubProductRepo, sellerID string, price float64) *domain.Product {
	t.Helper()
	p, err := repo.Create(context.Background(), &domain.Product{
		SellerID: sellerID,
		Name:     "Handwoven basket",
		PriceINR: price,
		Stock:    10,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestOrderService_Place_SnapshotsPrice(t *testing.T) {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())

	product := seedProduct(t, products, "seller-1", 250)
	customer := &domain.User{ID: "customer-1", Role: domain.RoleCustomer}

	order, err := svc.Place(context.Background(), customer, ports.PlaceOrderInput{
		ProductID: product.ID,
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if order.UnitPriceINR != 250 {
		t.Fatalf("expected snapshot price 250, got %v", order.UnitPriceINR)
	}
	if order.TotalINR() != 750 {
		t.Fatalf("expected total 750, got %v", order.TotalINR())
	}
	if order.SellerID != "seller-1" {
		t.Fatalf("seller not copied from product: %s", order.SellerID)
	}
	if order.Status != domain.OrderPlaced {
		t.Fatalf("expected placed, got %s", order.Status)
	}
}

func TestOrderService_Place_CustomerOnly(t *testing.T) {
	products := newStubProductRepo()
	svc := NewOrderService(newStubOrderRepo(), products, zerolog.Nop())
	product := seedProduct(t, products, "seller-1", 100)

	woman := &domain.User{ID: "seller-1", Role: domain.RoleWoman}
	if _, err := svc.Place(context.Background(), woman, ports.PlaceOrderInput{ProductID: product.ID}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())

	product := seedProduct(t, products, "seller-1", 100)
	customer := &domain.User{ID: "customer-1", Role: domain.RoleCustomer}
	seller := &domain.User{ID: "seller-1", Role: domain.RoleWoman}

	order, err := svc.Place(context.Background(), customer, ports.PlaceOrderInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// placed → delivered skips confirmation and must fail.
	if _, err := svc.UpdateStatus(context.Background(), seller, order.ID, "delivered"); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	confirmed, err := svc.UpdateStatus(context.Background(), seller, order.ID, "confirmed")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != domain.OrderConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	delivered, err := svc.UpdateStatus(context.Background(), seller, order.ID, "delivered")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if delivered.Status != domain.OrderDelivered {
		t.Fatalf("expected delivered, got %s", delivered.Status)
	}

	// Delivered is terminal.
	if _, err := svc.UpdateStatus(context.Background(), seller, order.ID, "cancelled"); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition after delivery, got %v", err)
	}
}

func TestOrderService_UpdateStatus_CustomerMayOnlyCancel(t *testing.T) {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())

	product := seedProduct(t, products, "seller-1", 100)
	customer := &domain.User{ID: "customer-1", Role: domain.RoleCustomer}

	order, _ := svc.Place(context.Background(), customer, ports.PlaceOrderInput{ProductID: product.ID})

	if _, err := svc.UpdateStatus(context.Background(), customer, order.ID, "confirmed"); err != domain.ErrForbidden {
		t.Fatalf("customer must not confirm, got %v", err)
	}
	cancelled, err := svc.UpdateStatus(context.Background(), customer, order.ID, "cancelled")
	if err != nil {
		t.Fatalf("customer cancel: %v", err)
	}
	if cancelled.Status != domain.OrderCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
}

func TestOrderService_List_ScopedByActor(t *testing.T) {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())

	p1 := seedProduct(t, products, "seller-1", 100)
	p2 := seedProduct(t, products, "seller-2", 200)
	c1 := &domain.User{ID: "customer-1", Role: domain.RoleCustomer}
	c2 := &domain.User{ID: "customer-2", Role: domain.RoleCustomer}

	_, _ = svc.Place(context.Background(), c1, ports.PlaceOrderInput{ProductID: p1.ID})
	_, _ = svc.Place(context.Background(), c1, ports.PlaceOrderInput{ProductID: p2.ID})
	_, _ = svc.Place(context.Background(), c2, ports.PlaceOrderInput{ProductID: p1.ID})

	seller := &domain.User{ID: "seller-1", Role: domain.RoleWoman}
	sales, err := svc.List(context.Background(), seller)
	if err != nil {
		t.Fatalf("seller list: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales for seller-1, got %d", len(sales))
	}

	purchases, err := svc.List(context.Background(), c1)
	if err != nil {
		t.Fatalf("customer list: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 purchases for customer-1, got %d", len(purchases))
	}

	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	all, err := svc.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 orders for admin, got %d", len(all))
	}
}
