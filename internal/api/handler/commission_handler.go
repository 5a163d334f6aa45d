package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// CommissionHandler exposes the commission engine and tier administration.
type CommissionHandler struct {
	service ports.CommissionService
}

func NewCommissionHandler(service ports.CommissionService) *CommissionHandler {
	return &CommissionHandler{service: service}
}

// Breakdown handles GET /v1/commission/breakdown.
//
// @Summary      Compute a commission breakdown for a price
// @Tags         commission
// @Produce      json
// @Security     BearerAuth
// @Param        base_price  query     number  true   "Base price of the product"
// @Param        seller_id   query     string  false  "Seller whose negotiated rate should apply"
// @Success      200         {object}  breakdownResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/commission/breakdown [get]
func (h *CommissionHandler) Breakdown(c echo.Context) error {
	raw := c.QueryParam("base_price")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "base_price is required")
	}
	basePrice, err := decimal.NewFromString(raw)
	if err != nil || basePrice.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "base_price must be a non-negative number")
	}

	breakdown, err := h.service.ComputeBreakdown(c.Request().Context(), ports.BreakdownInput{
		BasePrice: basePrice,
		SellerID:  c.QueryParam("seller_id"),
	})
	if err != nil {
		return err
	}

	observeCommission(breakdown)
	return c.JSON(http.StatusOK, toBreakdownResponse(breakdown))
}

// CreateTier handles POST /v1/commission/tiers.
//
// @Summary      Create a commission tier
// @Tags         commission
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTierRequest  true  "Tier definition"
// @Success      201   {object}  tierResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/commission/tiers [post]
func (h *CommissionHandler) CreateTier(c echo.Context) error {
	var req createTierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateTierInput{
		MinThreshold: decimal.NewFromFloat(req.MinThreshold),
		Percentage:   decimal.NewFromFloat(req.Percentage),
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if req.MaxThreshold != nil {
		max := decimal.NewFromFloat(*req.MaxThreshold)
		input.MaxThreshold = &max
	}

	tier, err := h.service.CreateTier(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTierResponse(tier))
}

// ListTiers handles GET /v1/commission/tiers.
//
// @Summary      List commission tiers
// @Tags         commission
// @Produce      json
// @Security     BearerAuth
// @Param        active  query     bool  false  "Only return active tiers"
// @Success      200     {array}   tierResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/commission/tiers [get]
func (h *CommissionHandler) ListTiers(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	tiers, err := h.service.ListTiers(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}

	out := make([]tierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, toTierResponse(t))
	}
	return c.JSON(http.StatusOK, out)
}

// DeactivateTier handles PATCH /v1/commission/tiers/:id/deactivate.
//
// @Summary      Deactivate a commission tier
// @Tags         commission
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Tier ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/commission/tiers/{id}/deactivate [patch]
func (h *CommissionHandler) DeactivateTier(c echo.Context) error {
	if err := h.service.DeactivateTier(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "tier deactivated"})
}

// DeleteTier handles DELETE /v1/commission/tiers/:id.
//
// @Summary      Delete a commission tier
// @Tags         commission
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Tier ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/commission/tiers/{id} [delete]
func (h *CommissionHandler) DeleteTier(c echo.Context) error {
	if err := h.service.DeleteTier(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
