package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

type stubCommissionService struct {
	breakdownFn  func(ctx context.Context, input ports.BreakdownInput) (*domain.PriceBreakdown, error)
	createTierFn func(ctx context.Context, input ports.CreateTierInput) (*domain.CommissionTier, error)
	listTiersFn  func(ctx context.Context, activeOnly bool) ([]*domain.CommissionTier, error)
}

func (s *stubCommissionService) ComputeBreakdown(ctx context.Context, input ports.BreakdownInput) (*domain.PriceBreakdown, error) {
	return s.breakdownFn(ctx, input)
}

func (s *stubCommissionService) CreateTier(ctx context.Context, input ports.CreateTierInput) (*domain.CommissionTier, error) {
	return s.createTierFn(ctx, input)
}

func (s *stubCommissionService) ListTiers(ctx context.Context, activeOnly bool) ([]*domain.CommissionTier, error) {
	return s.listTiersFn(ctx, activeOnly)
}

func (s *stubCommissionService) DeactivateTier(context.Context, string) error { return nil }
func (s *stubCommissionService) DeleteTier(context.Context, string) error     { return nil }
func (s *stubCommissionService) SeedDefaultTiers(context.Context) error       { return nil }

func TestCommissionHandler_Breakdown(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommissionService{
		breakdownFn: func(_ context.Context, input ports.BreakdownInput) (*domain.PriceBreakdown, error) {
			if !input.BasePrice.Equal(decimal.NewFromInt(20000)) || input.SellerID != "seller_1" {
				t.Fatalf("unexpected input %+v", input)
			}
			return &domain.PriceBreakdown{
				BasePrice:            input.BasePrice,
				CommissionPercentage: decimal.NewFromInt(8),
				CommissionAmount:     decimal.NewFromInt(1600),
				FinalPrice:           decimal.NewFromInt(21600),
				TierDescription:      "10 000 à 30 000 FCFA",
			}, nil
		},
	}
	handler := NewCommissionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/commission/breakdown?base_price=20000&seller_id=seller_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Breakdown(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["final_price"] != "21600" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCommissionHandler_Breakdown_InvalidPrice(t *testing.T) {
	e := newTestEcho()
	handler := NewCommissionHandler(&stubCommissionService{
		breakdownFn: func(context.Context, ports.BreakdownInput) (*domain.PriceBreakdown, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	for _, query := range []string{"", "base_price=abc", "base_price=-5"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/commission/breakdown?"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Breakdown(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %v", query, err)
		}
	}
}

func TestCommissionHandler_CreateTier(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommissionService{
		createTierFn: func(_ context.Context, input ports.CreateTierInput) (*domain.CommissionTier, error) {
			if input.MaxThreshold == nil {
				t.Fatalf("expected bounded tier")
			}
			return &domain.CommissionTier{
				ID:           "tier_9",
				MinThreshold: input.MinThreshold,
				MaxThreshold: input.MaxThreshold,
				Percentage:   input.Percentage,
				Active:       true,
			}, nil
		},
	}
	handler := NewCommissionHandler(stub)

	body := strings.NewReader(`{"min_threshold":10000,"max_threshold":30000,"percentage":8,"description":"mid bracket"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/commission/tiers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateTier(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCommissionHandler_CreateTier_DuplicatePropagates(t *testing.T) {
	e := newTestEcho()
	handler := NewCommissionHandler(&stubCommissionService{
		createTierFn: func(context.Context, ports.CreateTierInput) (*domain.CommissionTier, error) {
			return nil, domain.ErrDuplicateTier
		},
	})

	body := strings.NewReader(`{"min_threshold":10000,"max_threshold":30000,"percentage":8}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/commission/tiers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors bubble up for the central error handler to map to 409.
	if err := handler.CreateTier(c); !errors.Is(err, domain.ErrDuplicateTier) {
		t.Fatalf("expected ErrDuplicateTier, got %v", err)
	}
}

func TestCommissionHandler_ListTiers_ActiveFilter(t *testing.T) {
	e := newTestEcho()
	var gotActiveOnly bool
	handler := NewCommissionHandler(&stubCommissionService{
		listTiersFn: func(_ context.Context, activeOnly bool) ([]*domain.CommissionTier, error) {
			gotActiveOnly = activeOnly
			return []*domain.CommissionTier{{ID: "tier_1", Active: true}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/commission/tiers?active=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListTiers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !gotActiveOnly {
		t.Fatalf("active filter not passed through")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
