package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

func toCreateShipmentInput(req createShipmentRequest, sellerID string) ports.CreateShipmentInput {
	lines := make([]ports.ShipmentLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, ports.ShipmentLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			WeightKg:  decimal.NewFromFloat(l.WeightKg),
		})
	}
	return ports.CreateShipmentInput{
		OrderID:      req.OrderID,
		ClientID:     req.ClientID,
		SellerID:     sellerID,
		Country:      req.Country,
		City:         req.City,
		Address:      req.Address,
		Lines:        lines,
		ServiceLevel: domain.ServiceLevel(req.ServiceLevel),
		Carrier:      req.Carrier,
	}
}

func toCreateShipmentResponse(r *ports.ShipmentResult) createShipmentResponse {
	return createShipmentResponse{
		TrackingNumber:   r.TrackingNumber,
		Status:           r.Status,
		TotalWeightKg:    r.TotalWeightKg,
		Cost:             r.Cost,
		CreatedAt:        r.CreatedAt.UTC(),
		PromisedDelivery: r.PromisedDelivery.UTC(),
		Links:            linksFor(r.TrackingNumber),
	}
}

func toShipmentResponse(s *domain.Shipment, now time.Time) shipmentResponse {
	lines := make([]shipmentLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, shipmentLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			WeightKg:  l.WeightKg,
		})
	}
	return shipmentResponse{
		TrackingNumber:   s.TrackingNumber,
		OrderID:          s.OrderID,
		ClientID:         s.ClientID,
		SellerID:         s.SellerID,
		Destination:      destinationResponse{Country: s.Destination.Country, City: s.Destination.City, Address: s.Destination.Address},
		Lines:            lines,
		TotalWeightKg:    s.TotalWeightKg,
		Cost:             s.Cost,
		ServiceLevel:     string(s.ServiceLevel),
		Carrier:          s.Carrier,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt.UTC(),
		PromisedDelivery: s.PromisedDelivery.UTC(),
		ShippedAt:        s.ShippedAt,
		DeliveredAt:      s.DeliveredAt,
		Late:             s.IsLate(now),
		StatusHistory:    toStatusHistoryResponse(s.StatusHistory),
		Links:            linksFor(s.TrackingNumber),
	}
}

func toStatusHistoryResponse(items []domain.StatusHistoryEntry) []statusHistoryItemResponse {
	out := make([]statusHistoryItemResponse, len(items))
	for i, item := range items {
		out[i] = statusHistoryItemResponse{
			Status:    string(item.Status),
			Timestamp: item.Timestamp.UTC(),
			Notes:     item.Notes,
		}
	}
	return out
}

func toListShipmentsResponse(r *ports.ListShipmentsResult, now time.Time) listShipmentsResponse {
	items := make([]shipmentSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = toSummaryResponse(s, now)
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toSummaryResponse(s *domain.Shipment, now time.Time) shipmentSummaryResponse {
	return shipmentSummaryResponse{
		TrackingNumber:   s.TrackingNumber,
		OrderID:          s.OrderID,
		ClientID:         s.ClientID,
		SellerID:         s.SellerID,
		Status:           string(s.Status),
		ServiceLevel:     string(s.ServiceLevel),
		Cost:             s.Cost,
		CreatedAt:        s.CreatedAt.UTC(),
		PromisedDelivery: s.PromisedDelivery.UTC(),
		Late:             s.IsLate(now),
		Links:            linksFor(s.TrackingNumber),
	}
}

func linksFor(trackingNumber string) shipmentLinks {
	return shipmentLinks{
		Self:   "/v1/shipments/" + trackingNumber,
		Status: "/v1/shipments/" + trackingNumber + "/status",
	}
}
