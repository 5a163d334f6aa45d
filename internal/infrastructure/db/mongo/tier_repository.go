package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

const collectionTiers = "commission_tiers"

type TierRepository struct {
	col *mongo.Collection
}

func NewTierRepository(db *mongo.Database) *TierRepository {
	return &TierRepository{col: db.Collection(collectionTiers)}
}

type tierDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	MinThreshold string             `bson:"min_threshold"`
	MaxThreshold *string            `bson:"max_threshold,omitempty"`
	Percentage   string             `bson:"percentage"`
	Description  string             `bson:"description"`
	DisplayOrder int                `bson:"display_order"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toTierDoc(t *domain.CommissionTier) tierDoc {
	return tierDoc{
		MinThreshold: decToString(t.MinThreshold),
		MaxThreshold: decPtrToString(t.MaxThreshold),
		Percentage:   decToString(t.Percentage),
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (d tierDoc) toDomain() *domain.CommissionTier {
	return &domain.CommissionTier{
		ID:           d.ID.Hex(),
		MinThreshold: decFromString(d.MinThreshold),
		MaxThreshold: decPtrFromString(d.MaxThreshold),
		Percentage:   decFromString(d.Percentage),
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Create inserts a new tier document and returns it with its assigned ID.
func (r *TierRepository) Create(ctx context.Context, tier *domain.CommissionTier) (*domain.CommissionTier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toTierDoc(tier))
	if err != nil {
		return nil, fmt.Errorf("insert tier: %w", err)
	}

	created := *tier
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListActive returns active tiers ordered by ascending display order.
func (r *TierRepository) ListActive(ctx context.Context) ([]*domain.CommissionTier, error) {
	return r.list(ctx, bson.M{"active": true})
}

// List returns all tiers ordered by ascending display order.
func (r *TierRepository) List(ctx context.Context) ([]*domain.CommissionTier, error) {
	return r.list(ctx, bson.M{})
}

func (r *TierRepository) list(ctx context.Context, filter bson.M) ([]*domain.CommissionTier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	defer cur.Close(ctx)

	var tiers []*domain.CommissionTier
	for cur.Next(ctx) {
		var d tierDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode tier: %w", err)
		}
		tiers = append(tiers, d.toDomain())
	}
	return tiers, cur.Err()
}

func (r *TierRepository) FindByID(ctx context.Context, id string) (*domain.CommissionTier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTierNotFound
	}

	var d tierDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTierNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

// Deactivate soft-disables a tier; the document is kept.
func (r *TierRepository) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTierNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"active":     false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("deactivate tier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

func (r *TierRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTierNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tier: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by tier queries.
func (r *TierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "display_order", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
