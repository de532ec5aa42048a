package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

const orderCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

type mongoOrder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProductID    string             `bson:"product_id"`
	SellerID     string             `bson:"seller_id"`
	CustomerID   string             `bson:"customer_id"`
	Quantity     int                `bson:"quantity"`
	UnitPriceINR float64            `bson:"unit_price_inr"`
	Status       string             `bson:"status"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (mo mongoOrder) toDomain() *domain.Order {
	return &domain.Order{
		ID:           mo.ID.Hex(),
		ProductID:    mo.ProductID,
		SellerID:     mo.SellerID,
		CustomerID:   mo.CustomerID,
		Quantity:     mo.Quantity,
		UnitPriceINR: mo.UnitPriceINR,
		Status:       domain.OrderStatus(mo.Status),
		CreatedAt:    unixToTime(mo.CreatedAt),
		UpdatedAt:    unixToTime(mo.UpdatedAt),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	doc := mongoOrder{
		ProductID:    o.ProductID,
		SellerID:     o.SellerID,
		CustomerID:   o.CustomerID,
		Quantity:     o.Quantity,
		UnitPriceINR: o.UnitPriceINR,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.Unix(),
		UpdatedAt:    o.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return r.findOne(ctx, res.InsertedID.(primitive.ObjectID))
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	set := bson.M{"status": string(status), "updated_at": time.Now().UTC().Unix()}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *OrderRepository) List(ctx context.Context, f ports.OrderFilter) ([]domain.Order, error) {
	filter := bson.M{}
	if f.SellerID != "" {
		filter["seller_id"] = f.SellerID
	}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, *mo.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*domain.Order, error) {
	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}
