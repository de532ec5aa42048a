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

const (
	workshopCollection     = "workshops"
	registrationCollection = "workshop_registrations"
)

type WorkshopRepository struct {
	workshops     *mongo.Collection
	registrations *mongo.Collection
}

func NewWorkshopRepository(db *mongo.Database) *WorkshopRepository {
	return &WorkshopRepository{
		workshops:     db.Collection(workshopCollection),
		registrations: db.Collection(registrationCollection),
	}
}

type mongoWorkshop struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Village     string             `bson:"village,omitempty"`
	Date        int64              `bson:"date"`
	Capacity    int                `bson:"capacity"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type mongoRegistration struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	WorkshopID string             `bson:"workshop_id"`
	UserID     string             `bson:"user_id"`
	CreatedAt  int64              `bson:"created_at"`
}

func (mw mongoWorkshop) toDomain() *domain.Workshop {
	return &domain.Workshop{
		ID:          mw.ID.Hex(),
		Title:       mw.Title,
		Description: mw.Description,
		Village:     mw.Village,
		Date:        unixToTime(mw.Date),
		Capacity:    mw.Capacity,
		CreatedBy:   mw.CreatedBy,
		CreatedAt:   unixToTime(mw.CreatedAt),
		UpdatedAt:   unixToTime(mw.UpdatedAt),
	}
}

func (mr mongoRegistration) toDomain() *domain.Registration {
	return &domain.Registration{
		ID:         mr.ID.Hex(),
		WorkshopID: mr.WorkshopID,
		UserID:     mr.UserID,
		CreatedAt:  unixToTime(mr.CreatedAt),
	}
}

func (r *WorkshopRepository) Create(ctx context.Context, w *domain.Workshop) (*domain.Workshop, error) {
	doc := mongoWorkshop{
		Title:       w.Title,
		Description: w.Description,
		Village:     w.Village,
		Date:        w.Date.Unix(),
		Capacity:    w.Capacity,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt.Unix(),
		UpdatedAt:   w.UpdatedAt.Unix(),
	}

	res, err := r.workshops.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert workshop: %w", err)
	}
	return r.findOne(ctx, res.InsertedID.(primitive.ObjectID))
}

func (r *WorkshopRepository) FindByID(ctx context.Context, id string) (*domain.Workshop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkshopNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *WorkshopRepository) Update(ctx context.Context, w *domain.Workshop) (*domain.Workshop, error) {
	oid, err := primitive.ObjectIDFromHex(w.ID)
	if err != nil {
		return nil, domain.ErrWorkshopNotFound
	}

	set := bson.M{
		"title":       w.Title,
		"description": w.Description,
		"village":     w.Village,
		"date":        w.Date.Unix(),
		"capacity":    w.Capacity,
		"updated_at":  w.UpdatedAt.Unix(),
	}
	res, err := r.workshops.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update workshop: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrWorkshopNotFound
	}
	return r.findOne(ctx, oid)
}

func (r *WorkshopRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWorkshopNotFound
	}
	res, err := r.workshops.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete workshop: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkshopNotFound
	}
	return nil
}

func (r *WorkshopRepository) List(ctx context.Context, village string) ([]domain.Workshop, error) {
	filter := bson.M{}
	if village != "" {
		filter["village"] = village
	}

	cur, err := r.workshops.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	defer cur.Close(ctx)

	var workshops []domain.Workshop
	for cur.Next(ctx) {
		var mw mongoWorkshop
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode workshop: %w", err)
		}
		workshops = append(workshops, *mw.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate workshops: %w", err)
	}
	return workshops, nil
}

func (r *WorkshopRepository) AddRegistration(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	doc := mongoRegistration{
		WorkshopID: reg.WorkshopID,
		UserID:     reg.UserID,
		CreatedAt:  reg.CreatedAt.Unix(),
	}

	res, err := r.registrations.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	var mr mongoRegistration
	if err := r.registrations.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&mr); err != nil {
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *WorkshopRepository) FindRegistration(ctx context.Context, workshopID, userID string) (*domain.Registration, error) {
	var mr mongoRegistration
	err := r.registrations.FindOne(ctx, bson.M{"workshop_id": workshopID, "user_id": userID}).Decode(&mr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *WorkshopRepository) CountRegistrations(ctx context.Context, workshopID string) (int, error) {
	n, err := r.registrations.CountDocuments(ctx, bson.M{"workshop_id": workshopID})
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return int(n), nil
}

func (r *WorkshopRepository) ListRegistrations(ctx context.Context, workshopID string) ([]domain.Registration, error) {
	cur, err := r.registrations.Find(ctx, bson.M{"workshop_id": workshopID})
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var regs []domain.Registration
	for cur.Next(ctx) {
		var mr mongoRegistration
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode registration: %w", err)
		}
		regs = append(regs, *mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return regs, nil
}

func (r *WorkshopRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*domain.Workshop, error) {
	var mw mongoWorkshop
	if err := r.workshops.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("find workshop: %w", err)
	}
	return mw.toDomain(), nil
}
