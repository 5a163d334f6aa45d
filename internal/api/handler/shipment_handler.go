package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/terangamarket/marketplace-api/internal/api/metrics"
	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a shipment for an order
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Order lines and destination"
// @Success      201   {object}  createShipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, _, sellerID, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if sellerID == "" {
		// admin path: the seller comes from the payload
		sellerID = req.SellerID
	}

	result, err := h.service.CreateShipment(c.Request().Context(), toCreateShipmentInput(req, sellerID))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(req.ServiceLevel).Inc()
	return c.JSON(http.StatusCreated, toCreateShipmentResponse(result))
}

// Get handles GET /v1/shipments/:tracking_number.
//
// @Summary      Get a shipment by tracking number
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "Tracking number (e.g. TM-20250114093045-1A2B)"
// @Success      200              {object}  shipmentResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/shipments/{tracking_number} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	role, clientID, sellerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	shipment, err := h.service.GetShipment(c.Request().Context(), ports.GetShipmentInput{
		TrackingNumber: c.Param("tracking_number"),
		Role:           role,
		ClientID:       clientID,
		SellerID:       sellerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment, time.Now()))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status         query     string  false  "Filter by status"
// @Param        service_level  query     string  false  "Filter by service level"
// @Param        date_from      query     string  false  "Created at or after (RFC 3339)"
// @Param        date_to        query     string  false  "Created at or before (RFC 3339)"
// @Param        page           query     int     false  "Page number (1-based)"
// @Param        limit          query     int     false  "Page size (max 100)"
// @Success      200            {object}  listShipmentsResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	role, clientID, sellerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := ports.ListShipmentsInput{
		Role:         role,
		ClientID:     clientID,
		SellerID:     sellerID,
		Status:       c.QueryParam("status"),
		ServiceLevel: c.QueryParam("service_level"),
	}
	if raw := c.QueryParam("date_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC 3339")
		}
		input.DateFrom = t
	}
	if raw := c.QueryParam("date_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC 3339")
		}
		input.DateTo = t
	}
	if raw := c.QueryParam("page"); raw != "" {
		input.Page, _ = strconv.Atoi(raw)
	}
	if raw := c.QueryParam("limit"); raw != "" {
		input.Limit, _ = strconv.Atoi(raw)
	}

	result, err := h.service.ListShipments(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListShipmentsResponse(result, time.Now()))
}

// UpdateStatus handles PATCH /v1/shipments/:tracking_number/status.
//
// @Summary      Advance a shipment's status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string               true  "Tracking number"
// @Param        body             body      updateStatusRequest  true  "Target status"
// @Success      200              {object}  shipmentResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/shipments/{tracking_number}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shipment, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		TrackingNumber: c.Param("tracking_number"),
		NextStatus:     domain.ShipmentStatus(req.Status),
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment, time.Now()))
}

// ListLate handles GET /v1/shipments/late.
//
// @Summary      List overdue shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shipmentSummaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/shipments/late [get]
func (h *ShipmentHandler) ListLate(c echo.Context) error {
	shipments, err := h.service.ListLate(c.Request().Context())
	if err != nil {
		return err
	}

	now := time.Now()
	out := make([]shipmentSummaryResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, toSummaryResponse(s, now))
	}
	return c.JSON(http.StatusOK, out)
}
