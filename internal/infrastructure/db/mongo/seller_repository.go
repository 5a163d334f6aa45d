package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

const collectionSellers = "sellers"

// SellerRepository exposes the read side of the sellers collection that the
// pricing core needs. Seller CRUD is owned by another service.
type SellerRepository struct {
	col *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) *SellerRepository {
	return &SellerRepository{col: db.Collection(collectionSellers)}
}

type sellerDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ShopName             string             `bson:"shop_name"`
	Email                string             `bson:"email"`
	CustomCommissionRate *string            `bson:"custom_commission_rate,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
}

func (r *SellerRepository) FindByID(ctx context.Context, id string) (*domain.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSellerNotFound
	}

	var d sellerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, err
	}

	return &domain.Seller{
		ID:                   d.ID.Hex(),
		ShopName:             d.ShopName,
		Email:                d.Email,
		CustomCommissionRate: decPtrFromString(d.CustomCommissionRate),
		CreatedAt:            d.CreatedAt,
	}, nil
}
