package prediction

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/predict", h.Predict)
	g.GET("/history/:patientId", h.History)
	g.GET("/test/:testId", h.GetTest)
}

type predictRequest struct {
	Features
	PatientID string `json:"patientId"`
}

func (h *Handler) Predict(c echo.Context) error {
	var req predictRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Validation("Invalid prediction payload")
	}
	if err := req.Features.Validate(); err != nil {
		return httpx.Validation(err.Error())
	}

	var patientID *uuid.UUID
	if req.PatientID != "" {
		id, err := uuid.Parse(req.PatientID)
		if err != nil {
			return httpx.Validation("Invalid patient id")
		}
		patientID = &id
	}

	res, err := h.svc.Predict(c.Request().Context(), req.Features, patientID)
	if err != nil {
		return err
	}
	// The SPA expects the model's output verbatim, without the envelope.
	return c.JSON(http.StatusOK, res)
}

type historyResponse struct {
	Success bool    `json:"success"`
	Tests   []*Test `json:"tests"`
	// Predictions duplicates Tests for older client builds.
	Predictions []*Test `json:"predictions"`
}

func (h *Handler) History(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return httpx.Validation("Patient ID is required.")
	}

	tests, err := h.svc.History(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, historyResponse{Success: true, Tests: tests, Predictions: tests})
}

type testResponse struct {
	Success bool  `json:"success"`
	Test    *Test `json:"test"`
}

func (h *Handler) GetTest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("testId"))
	if err != nil {
		return httpx.Validation("Test ID is required.")
	}

	t, err := h.svc.GetTest(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testResponse{Success: true, Test: t})
}
