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

const collectionDeliveryConfigs = "delivery_configs"

type DeliveryConfigRepository struct {
	col *mongo.Collection
}

func NewDeliveryConfigRepository(db *mongo.Database) *DeliveryConfigRepository {
	return &DeliveryConfigRepository{col: db.Collection(collectionDeliveryConfigs)}
}

type deliveryConfigDoc struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	Country                string             `bson:"country"`
	ServiceLevel           string             `bson:"service_level"`
	BaseFare               string             `bson:"base_fare"`
	FarePerKg              string             `bson:"fare_per_kg"`
	MinDeliveryDays        int                `bson:"min_delivery_days"`
	MaxDeliveryDays        int                `bson:"max_delivery_days"`
	ExpectedDeliveryDays   int                `bson:"expected_delivery_days"`
	MinimumBilling         string             `bson:"minimum_billing"`
	BulkDiscountPercent    string             `bson:"bulk_discount_percent"`
	RemoteSurchargePercent string             `bson:"remote_surcharge_percent"`
	Active                 bool               `bson:"active"`
	Description            string             `bson:"description,omitempty"`
	Notes                  string             `bson:"notes,omitempty"`
	ModifiedBy             string             `bson:"modified_by,omitempty"`
	CreatedAt              time.Time          `bson:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at"`
}

func toDeliveryConfigDoc(c *domain.DeliveryConfig) deliveryConfigDoc {
	return deliveryConfigDoc{
		Country:                c.Country,
		ServiceLevel:           string(c.ServiceLevel),
		BaseFare:               decToString(c.BaseFare),
		FarePerKg:              decToString(c.FarePerKg),
		MinDeliveryDays:        c.MinDeliveryDays,
		MaxDeliveryDays:        c.MaxDeliveryDays,
		ExpectedDeliveryDays:   c.ExpectedDeliveryDays,
		MinimumBilling:         decToString(c.MinimumBilling),
		BulkDiscountPercent:    decToString(c.BulkDiscountPercent),
		RemoteSurchargePercent: decToString(c.RemoteSurchargePercent),
		Active:                 c.Active,
		Description:            c.Description,
		Notes:                  c.Notes,
		ModifiedBy:             c.ModifiedBy,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (d deliveryConfigDoc) toDomain() *domain.DeliveryConfig {
	return &domain.DeliveryConfig{
		ID:                     d.ID.Hex(),
		Country:                d.Country,
		ServiceLevel:           domain.ServiceLevel(d.ServiceLevel),
		BaseFare:               decFromString(d.BaseFare),
		FarePerKg:              decFromString(d.FarePerKg),
		MinDeliveryDays:        d.MinDeliveryDays,
		MaxDeliveryDays:        d.MaxDeliveryDays,
		ExpectedDeliveryDays:   d.ExpectedDeliveryDays,
		MinimumBilling:         decFromString(d.MinimumBilling),
		BulkDiscountPercent:    decFromString(d.BulkDiscountPercent),
		RemoteSurchargePercent: decFromString(d.RemoteSurchargePercent),
		Active:                 d.Active,
		Description:            d.Description,
		Notes:                  d.Notes,
		ModifiedBy:             d.ModifiedBy,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

func (r *DeliveryConfigRepository) Create(ctx context.Context, cfg *domain.DeliveryConfig) (*domain.DeliveryConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDeliveryConfigDoc(cfg))
	if err != nil {
		return nil, fmt.Errorf("insert delivery config: %w", err)
	}

	created := *cfg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindActive returns the single active configuration for a (country, service
// level) pair.
func (r *DeliveryConfigRepository) FindActive(ctx context.Context, country string, level domain.ServiceLevel) (*domain.DeliveryConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d deliveryConfigDoc
	err := r.col.FindOne(ctx, bson.M{
		"country":       country,
		"service_level": string(level),
		"active":        true,
	}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *DeliveryConfigRepository) FindByID(ctx context.Context, id string) (*domain.DeliveryConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrConfigNotFound
	}

	var d deliveryConfigDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *DeliveryConfigRepository) List(ctx context.Context) ([]*domain.DeliveryConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "country", Value: 1}, {Key: "service_level", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list delivery configs: %w", err)
	}
	defer cur.Close(ctx)

	var configs []*domain.DeliveryConfig
	for cur.Next(ctx) {
		var d deliveryConfigDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode delivery config: %w", err)
		}
		configs = append(configs, d.toDomain())
	}
	return configs, cur.Err()
}

func (r *DeliveryConfigRepository) Update(ctx context.Context, cfg *domain.DeliveryConfig) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(cfg.ID)
	if err != nil {
		return domain.ErrConfigNotFound
	}

	doc := toDeliveryConfigDoc(cfg)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update delivery config: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConfigNotFound
	}
	return nil
}

func (r *DeliveryConfigRepository) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrConfigNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"active":     false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("deactivate delivery config: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConfigNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by configuration lookups.
func (r *DeliveryConfigRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "country", Value: 1}, {Key: "service_level", Value: 1}, {Key: "active", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
