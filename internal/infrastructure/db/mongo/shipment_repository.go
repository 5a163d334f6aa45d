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
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

const collectionShipments = "shipments"

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

type shipmentLineDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
	WeightKg  string `bson:"weight_kg"`
}

type statusHistoryDoc struct {
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
	Notes     string    `bson:"notes,omitempty"`
}

type shipmentDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	TrackingNumber   string             `bson:"tracking_number"`
	OrderID          string             `bson:"order_id"`
	ClientID         string             `bson:"client_id"`
	SellerID         string             `bson:"seller_id"`
	Country          string             `bson:"country"`
	City             string             `bson:"city"`
	Address          string             `bson:"address"`
	Lines            []shipmentLineDoc  `bson:"lines"`
	TotalWeightKg    string             `bson:"total_weight_kg"`
	Cost             string             `bson:"cost"`
	ServiceLevel     string             `bson:"service_level"`
	Carrier          string             `bson:"carrier,omitempty"`
	Status           string             `bson:"status"`
	CreatedAt        time.Time          `bson:"created_at"`
	PromisedDelivery time.Time          `bson:"promised_delivery"`
	ShippedAt        *time.Time         `bson:"shipped_at,omitempty"`
	DeliveredAt      *time.Time         `bson:"delivered_at,omitempty"`
	StatusHistory    []statusHistoryDoc `bson:"status_history"`
}

func toShipmentDoc(s *domain.Shipment) shipmentDoc {
	lines := make([]shipmentLineDoc, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, shipmentLineDoc{ProductID: l.ProductID, Quantity: l.Quantity, WeightKg: decToString(l.WeightKg)})
	}
	history := make([]statusHistoryDoc, 0, len(s.StatusHistory))
	for _, h := range s.StatusHistory {
		history = append(history, statusHistoryDoc{Status: string(h.Status), Timestamp: h.Timestamp, Notes: h.Notes})
	}
	return shipmentDoc{
		TrackingNumber:   s.TrackingNumber,
		OrderID:          s.OrderID,
		ClientID:         s.ClientID,
		SellerID:         s.SellerID,
		Country:          s.Destination.Country,
		City:             s.Destination.City,
		Address:          s.Destination.Address,
		Lines:            lines,
		TotalWeightKg:    decToString(s.TotalWeightKg),
		Cost:             decToString(s.Cost),
		ServiceLevel:     string(s.ServiceLevel),
		Carrier:          s.Carrier,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		PromisedDelivery: s.PromisedDelivery,
		ShippedAt:        s.ShippedAt,
		DeliveredAt:      s.DeliveredAt,
		StatusHistory:    history,
	}
}

func (d shipmentDoc) toDomain() *domain.Shipment {
	lines := make([]domain.ShipmentLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, domain.ShipmentLine{ProductID: l.ProductID, Quantity: l.Quantity, WeightKg: decFromString(l.WeightKg)})
	}
	history := make([]domain.StatusHistoryEntry, 0, len(d.StatusHistory))
	for _, h := range d.StatusHistory {
		history = append(history, domain.StatusHistoryEntry{Status: domain.ShipmentStatus(h.Status), Timestamp: h.Timestamp, Notes: h.Notes})
	}
	return &domain.Shipment{
		ID:               d.ID.Hex(),
		TrackingNumber:   d.TrackingNumber,
		OrderID:          d.OrderID,
		ClientID:         d.ClientID,
		SellerID:         d.SellerID,
		Destination:      domain.Destination{Country: d.Country, City: d.City, Address: d.Address},
		Lines:            lines,
		TotalWeightKg:    decFromString(d.TotalWeightKg),
		Cost:             decFromString(d.Cost),
		ServiceLevel:     domain.ServiceLevel(d.ServiceLevel),
		Carrier:          d.Carrier,
		Status:           domain.ShipmentStatus(d.Status),
		CreatedAt:        d.CreatedAt,
		PromisedDelivery: d.PromisedDelivery,
		ShippedAt:        d.ShippedAt,
		DeliveredAt:      d.DeliveredAt,
		StatusHistory:    history,
	}
}

// Create inserts a new shipment document.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toShipmentDoc(s)); err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// FindByTrackingNumber retrieves a shipment. Non-empty clientID or sellerID
// adds an ownership filter to the query.
func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber, clientID, sellerID string) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"tracking_number": trackingNumber}
	if clientID != "" {
		filter["client_id"] = clientID
	}
	if sellerID != "" {
		filter["seller_id"] = sellerID
	}

	var d shipmentDoc
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

// UpdateStatus persists a status transition with its stamps and history.
func (r *ShipmentRepository) UpdateStatus(ctx context.Context, trackingNumber string, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	history := make([]statusHistoryDoc, 0, len(s.StatusHistory))
	for _, h := range s.StatusHistory {
		history = append(history, statusHistoryDoc{Status: string(h.Status), Timestamp: h.Timestamp, Notes: h.Notes})
	}

	set := bson.M{
		"status":         string(s.Status),
		"status_history": history,
	}
	if s.ShippedAt != nil {
		set["shipped_at"] = *s.ShippedAt
	}
	if s.DeliveredAt != nil {
		set["delivered_at"] = *s.DeliveredAt
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"tracking_number": trackingNumber}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// List returns a page of shipments matching filter, plus the total count.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.SellerID != "" {
		query["seller_id"] = filter.SellerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ServiceLevel != "" {
		query["service_level"] = filter.ServiceLevel
	}
	created := bson.M{}
	if !filter.DateFrom.IsZero() {
		created["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		created["$lte"] = filter.DateTo
	}
	if len(created) > 0 {
		query["created_at"] = created
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count shipments: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list shipments: %w", err)
	}
	defer cur.Close(ctx)

	var shipments []*domain.Shipment
	for cur.Next(ctx) {
		var d shipmentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode shipment: %w", err)
		}
		shipments = append(shipments, d.toDomain())
	}
	return shipments, total, cur.Err()
}

// ListLate returns undelivered shipments whose promised delivery date has passed.
func (r *ShipmentRepository) ListLate(ctx context.Context, now time.Time) ([]*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"status":            bson.M{"$ne": string(domain.StatusDelivered)},
		"promised_delivery": bson.M{"$lt": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "promised_delivery", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list late shipments: %w", err)
	}
	defer cur.Close(ctx)

	var shipments []*domain.Shipment
	for cur.Next(ctx) {
		var d shipmentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode shipment: %w", err)
		}
		shipments = append(shipments, d.toDomain())
	}
	return shipments, cur.Err()
}

// EnsureIndexes creates necessary indexes on the shipments collection.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "seller_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "promised_delivery", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
