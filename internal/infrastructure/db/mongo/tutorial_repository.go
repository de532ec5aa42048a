package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

const tutorialCollection = "tutorials"

type TutorialRepository struct {
	coll *mongo.Collection
}

func NewTutorialRepository(db *mongo.Database) *TutorialRepository {
	return &TutorialRepository{coll: db.Collection(tutorialCollection)}
}

type mongoTutorial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	VideoURL    string             `bson:"video_url,omitempty"`
	Audience    string             `bson:"audience,omitempty"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (mt mongoTutorial) toDomain() *domain.Tutorial {
	return &domain.Tutorial{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Category:    mt.Category,
		VideoURL:    mt.VideoURL,
		Audience:    domain.Role(mt.Audience),
		CreatedBy:   mt.CreatedBy,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}

func (r *TutorialRepository) Create(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error) {
	doc := mongoTutorial{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		VideoURL:    t.VideoURL,
		Audience:    string(t.Audience),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert tutorial: %w", err)
	}
	return r.findOne(ctx, res.InsertedID.(primitive.ObjectID))
}

func (r *TutorialRepository) FindByID(ctx context.Context, id string) (*domain.Tutorial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTutorialNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *TutorialRepository) Update(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTutorialNotFound
	}

	set := bson.M{
		"title":       t.Title,
		"description": t.Description,
		"category":    t.Category,
		"video_url":   t.VideoURL,
		"audience":    string(t.Audience),
		"updated_at":  t.UpdatedAt.Unix(),
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update tutorial: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTutorialNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *TutorialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTutorialNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tutorial: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTutorialNotFound
	}
	return nil
}

func (r *TutorialRepository) List(ctx context.Context, f ports.TutorialFilter) ([]domain.Tutorial, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Audience.Assigned() {
		// Role-scoped listing includes unscoped tutorials.
		filter["$or"] = []bson.M{
			{"audience": string(f.Audience)},
			{"audience": ""},
			{"audience": bson.M{"$exists": false}},
		}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list tutorials: %w", err)
	}
	defer cur.Close(ctx)

	var tutorials []domain.Tutorial
	for cur.Next(ctx) {
		var mt mongoTutorial
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tutorial: %w", err)
		}
		tutorials = append(tutorials, *mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutorials: %w", err)
	}
	return tutorials, nil
}

func (r *TutorialRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*domain.Tutorial, error) {
	var mt mongoTutorial
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTutorialNotFound
		}
		return nil, fmt.Errorf("find tutorial: %w", err)
	}
	return mt.toDomain(), nil
}
