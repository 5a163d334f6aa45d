package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

type shipmentLineRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	WeightKg  float64 `json:"weight_kg"  validate:"gte=0"`
}

type createShipmentRequest struct {
	OrderID      string                `json:"order_id"      validate:"required"`
	ClientID     string                `json:"client_id"     validate:"required"`
	SellerID     string                `json:"seller_id"` // admins only; sellers use their token identity
	Country      string                `json:"country"       validate:"required"`
	City         string                `json:"city"          validate:"required"`
	Address      string                `json:"address"       validate:"required"`
	Lines        []shipmentLineRequest `json:"lines"         validate:"required,min=1,dive"`
	ServiceLevel string                `json:"service_level" validate:"required,oneof=express standard economy"`
	Carrier      string                `json:"carrier"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing shipped delivered"`
	Notes  string `json:"notes"`
}

type shipmentLinks struct {
	Self   string `json:"self"`
	Status string `json:"status"`
}

type createShipmentResponse struct {
	TrackingNumber   string          `json:"tracking_number"`
	Status           string          `json:"status"`
	TotalWeightKg    decimal.Decimal `json:"total_weight_kg"`
	Cost             decimal.Decimal `json:"cost"`
	CreatedAt        time.Time       `json:"created_at"`
	PromisedDelivery time.Time       `json:"promised_delivery"`
	Links            shipmentLinks   `json:"_links"`
}

type destinationResponse struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type shipmentLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
}

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type shipmentResponse struct {
	TrackingNumber   string                      `json:"tracking_number"`
	OrderID          string                      `json:"order_id"`
	ClientID         string                      `json:"client_id"`
	SellerID         string                      `json:"seller_id"`
	Destination      destinationResponse         `json:"destination"`
	Lines            []shipmentLineResponse      `json:"lines"`
	TotalWeightKg    decimal.Decimal             `json:"total_weight_kg"`
	Cost             decimal.Decimal             `json:"cost"`
	ServiceLevel     string                      `json:"service_level"`
	Carrier          string                      `json:"carrier,omitempty"`
	Status           string                      `json:"status"`
	CreatedAt        time.Time                   `json:"created_at"`
	PromisedDelivery time.Time                   `json:"promised_delivery"`
	ShippedAt        *time.Time                  `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time                  `json:"delivered_at,omitempty"`
	Late             bool                        `json:"late"`
	StatusHistory    []statusHistoryItemResponse `json:"status_history"`
	Links            shipmentLinks               `json:"_links"`
}

// shipmentSummaryResponse is the lightweight item used in list responses.
// It intentionally omits lines and status_history to keep payloads small.
type shipmentSummaryResponse struct {
	TrackingNumber   string          `json:"tracking_number"`
	OrderID          string          `json:"order_id"`
	ClientID         string          `json:"client_id"`
	SellerID         string          `json:"seller_id"`
	Status           string          `json:"status"`
	ServiceLevel     string          `json:"service_level"`
	Cost             decimal.Decimal `json:"cost"`
	CreatedAt        time.Time       `json:"created_at"`
	PromisedDelivery time.Time       `json:"promised_delivery"`
	Late             bool            `json:"late"`
	Links            shipmentLinks   `json:"_links"`
}

type listShipmentsResponse struct {
	Data       []shipmentSummaryResponse `json:"data"`
	Pagination paginationResponse        `json:"pagination"`
}
