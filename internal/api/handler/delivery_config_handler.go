package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// DeliveryConfigHandler exposes delivery configuration administration.
type DeliveryConfigHandler struct {
	service ports.DeliveryConfigService
}

func NewDeliveryConfigHandler(service ports.DeliveryConfigService) *DeliveryConfigHandler {
	return &DeliveryConfigHandler{service: service}
}

// Create handles POST /v1/delivery-configs.
//
// @Summary      Create a delivery configuration
// @Tags         delivery-configs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDeliveryConfigRequest  true  "Configuration"
// @Success      201   {object}  deliveryConfigResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/delivery-configs [post]
func (h *DeliveryConfigHandler) Create(c echo.Context) error {
	var req createDeliveryConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := c.Get("username").(string)
	cfg, err := h.service.Create(c.Request().Context(), toCreateConfigInput(req, username))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDeliveryConfigResponse(cfg))
}

// List handles GET /v1/delivery-configs.
//
// @Summary      List delivery configurations
// @Tags         delivery-configs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   deliveryConfigResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/delivery-configs [get]
func (h *DeliveryConfigHandler) List(c echo.Context) error {
	configs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]deliveryConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, toDeliveryConfigResponse(cfg))
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /v1/delivery-configs/:id.
//
// @Summary      Update a delivery configuration
// @Tags         delivery-configs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Configuration ID"
// @Param        body  body      updateDeliveryConfigRequest  true  "Editable fields"
// @Success      200   {object}  deliveryConfigResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/delivery-configs/{id} [put]
func (h *DeliveryConfigHandler) Update(c echo.Context) error {
	var req updateDeliveryConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := c.Get("username").(string)
	cfg, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateConfigInput(req, username))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDeliveryConfigResponse(cfg))
}

// Deactivate handles PATCH /v1/delivery-configs/:id/deactivate.
//
// @Summary      Deactivate a delivery configuration
// @Tags         delivery-configs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Configuration ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/delivery-configs/{id}/deactivate [patch]
func (h *DeliveryConfigHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "configuration deactivated"})
}
