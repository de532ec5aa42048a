package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

const schemeCollection = "schemes"

type SchemeRepository struct {
	coll *mongo.Collection
}

func NewSchemeRepository(db *mongo.Database) *SchemeRepository {
	return &SchemeRepository{coll: db.Collection(schemeCollection)}
}

type mongoScheme struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Eligibility string             `bson:"eligibility,omitempty"`
	ApplyURL    string             `bson:"apply_url,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (ms mongoScheme) toDomain() *domain.Scheme {
	return &domain.Scheme{
		ID:          ms.ID.Hex(),
		Name:        ms.Name,
		Description: ms.Description,
		Category:    domain.SchemeCategory(ms.Category),
		Eligibility: ms.Eligibility,
		ApplyURL:    ms.ApplyURL,
		CreatedAt:   unixToTime(ms.CreatedAt),
		UpdatedAt:   unixToTime(ms.UpdatedAt),
	}
}

func (r *SchemeRepository) Create(ctx context.Context, s *domain.Scheme) (*domain.Scheme, error) {
	doc := mongoScheme{
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Eligibility: s.Eligibility,
		ApplyURL:    s.ApplyURL,
		CreatedAt:   s.CreatedAt.Unix(),
		UpdatedAt:   s.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert scheme: %w", err)
	}
	return r.findOne(ctx, res.InsertedID.(primitive.ObjectID))
}

func (r *SchemeRepository) FindByID(ctx context.Context, id string) (*domain.Scheme, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSchemeNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *SchemeRepository) Update(ctx context.Context, s *domain.Scheme) (*domain.Scheme, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrSchemeNotFound
	}

	set := bson.M{
		"name":        s.Name,
		"description": s.Description,
		"category":    string(s.Category),
		"eligibility": s.Eligibility,
		"apply_url":   s.ApplyURL,
		"updated_at":  s.UpdatedAt.Unix(),
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update scheme: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSchemeNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *SchemeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSchemeNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete scheme: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSchemeNotFound
	}
	return nil
}

func (r *SchemeRepository) List(ctx context.Context, category domain.SchemeCategory) ([]domain.Scheme, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = string(category)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer cur.Close(ctx)

	var schemes []domain.Scheme
	for cur.Next(ctx) {
		var ms mongoScheme
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode scheme: %w", err)
		}
		schemes = append(schemes, *ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate schemes: %w", err)
	}
	return schemes, nil
}

func (r *SchemeRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*domain.Scheme, error) {
	var ms mongoScheme
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("find scheme: %w", err)
	}
	return ms.toDomain(), nil
}
