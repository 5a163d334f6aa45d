package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/api/metrics"
	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// QuoteHandler prices a full cart: per-line commission breakdowns plus the
// shipping cost to the destination.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Quote handles POST /v1/quotes.
//
// @Summary      Price a cart
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quoteRequest  true  "Cart lines and destination"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.QuoteItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.QuoteItemInput{
			SellerID:  it.SellerID,
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
			Quantity:  it.Quantity,
			WeightKg:  decimal.NewFromFloat(it.WeightKg),
		})
	}

	result, err := h.service.Quote(c.Request().Context(), ports.QuoteInput{
		Items:        items,
		Country:      req.Country,
		City:         req.City,
		ServiceLevel: domain.ServiceLevel(req.ServiceLevel),
	})
	if err != nil {
		return err
	}

	for i := range result.Lines {
		observeCommission(&result.Lines[i].Breakdown)
	}
	metrics.ShippingQuotesTotal.WithLabelValues(string(result.Region), result.ShippingSource).Inc()

	return c.JSON(http.StatusOK, toQuoteResponse(result))
}
