package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

type stubDispatcher struct {
	events []ports.CarrierEventInput
}

func (d *stubDispatcher) Enqueue(event ports.CarrierEventInput) {
	d.events = append(d.events, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.CarrierEventInput) {
	d.events = append(d.events, events...)
}

func TestEventHandler_Receive_Accepted(t *testing.T) {
	e := newTestEcho()
	dispatcher := &stubDispatcher{}
	handler := NewEventHandler(dispatcher)

	body := strings.NewReader(`{"tracking_number":"TM-20260310120000-0A1B","status":"shipped","timestamp":"2026-03-10T14:30:00Z","source":"yobuma"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tracking/events", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 1 {
		t.Fatalf("expected 1 enqueued event, got %d", len(dispatcher.events))
	}
	if dispatcher.events[0].Status != "shipped" || dispatcher.events[0].Source != "yobuma" {
		t.Fatalf("unexpected event %+v", dispatcher.events[0])
	}
}

func TestEventHandler_Receive_UnknownStatusRejected(t *testing.T) {
	e := newTestEcho()
	dispatcher := &stubDispatcher{}
	handler := NewEventHandler(dispatcher)

	body := strings.NewReader(`{"tracking_number":"TM-20260310120000-0A1B","status":"lost","timestamp":"2026-03-10T14:30:00Z","source":"yobuma"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tracking/events", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Receive(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("invalid event was enqueued")
	}
}

func TestEventHandler_ReceiveBatch(t *testing.T) {
	e := newTestEcho()
	dispatcher := &stubDispatcher{}
	handler := NewEventHandler(dispatcher)

	body := strings.NewReader(`[
		{"tracking_number":"TM-1","status":"shipped","timestamp":"2026-03-10T14:30:00Z","source":"yobuma"},
		{"tracking_number":"TM-2","status":"delivered","timestamp":"2026-03-10T15:00:00Z","source":"yobuma"}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tracking/events/batch", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 2 {
		t.Fatalf("expected 2 enqueued events, got %d", len(dispatcher.events))
	}
}

func TestEventHandler_ReceiveBatch_EmptyRejected(t *testing.T) {
	e := newTestEcho()
	handler := NewEventHandler(&stubDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/v1/tracking/events/batch", strings.NewReader(`[]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveBatch(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEventHandler_ReceiveBatch_OneInvalidRejectsAll(t *testing.T) {
	e := newTestEcho()
	dispatcher := &stubDispatcher{}
	handler := NewEventHandler(dispatcher)

	body := strings.NewReader(`[
		{"tracking_number":"TM-1","status":"shipped","timestamp":"2026-03-10T14:30:00Z","source":"yobuma"},
		{"tracking_number":"","status":"shipped","timestamp":"2026-03-10T15:00:00Z","source":"yobuma"}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tracking/events/batch", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveBatch(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("partial batch was enqueued")
	}
}
