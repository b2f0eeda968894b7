package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestError_StatusCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Conflict("duplicate"), http.StatusConflict},
		{Unauthorized("no session"), http.StatusUnauthorized},
		{NotFound("no such patient"), http.StatusNotFound},
		{Unavailable("Prediction service unavailable.", errors.New("dial tcp")), http.StatusInternalServerError},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.status {
			t.Errorf("%q: expected status %d, got %d", tc.err.Message, tc.status, got)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("Prediction service unavailable.", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	wrapped := fmt.Errorf("predict: %w", err)
	apiErr, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected AsError to unwrap through fmt.Errorf")
	}
	if apiErr.Kind != KindUnavailable {
		t.Errorf("expected KindUnavailable, got %v", apiErr.Kind)
	}
}

func TestErrorHandler_TaxonomyError(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = ErrorHandler(logger, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(NotFound("Patient not found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Message != "Patient not found" {
		t.Errorf("expected message 'Patient not found', got %q", body.Message)
	}
}

func TestErrorHandler_InternalMessageSuppressed(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = ErrorHandler(logger, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(errors.New("pq: relation does not exist"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Something went wrong!" {
		t.Errorf("expected generic message outside development, got %q", body.Message)
	}
}

func TestErrorHandler_InternalMessageShownInDev(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = ErrorHandler(logger, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(errors.New("boom"), c)

	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "boom" {
		t.Errorf("expected raw message in development, got %q", body.Message)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = ErrorHandler(logger, false)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(echo.ErrNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Route not found" {
		t.Errorf("expected 'Route not found', got %q", body.Message)
	}
}
