package patient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/domain/prediction"
	"github.com/heartwise/heartwise/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient endpoints. The static /notifications
// route must sit before the /:patientId wildcard.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.Notifications)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:patientId", h.Get)
	g.PUT("/:patientId", h.Update)
	g.DELETE("/:patientId", h.Delete)
	g.POST("/:patientId/heartRisk", h.SetRiskScore)
}

type patientResponse struct {
	Success     bool     `json:"success"`
	PatientData *Patient `json:"patientData"`
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return httpx.Validation("Please fill all the fields")
	}

	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patientResponse{Success: true, PatientData: &p})
}

type patientDetailResponse struct {
	Success     bool               `json:"success"`
	PatientData *Patient           `json:"patientData"`
	TestHistory []*prediction.Test `json:"testHistory"`
	// PredictionHistory duplicates TestHistory for older client builds.
	PredictionHistory []*prediction.Test `json:"predictionHistory"`
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parsePatientID(c)
	if err != nil {
		return err
	}

	p, tests, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientDetailResponse{
		Success: true, PatientData: p, TestHistory: tests, PredictionHistory: tests,
	})
}

type patientListResponse struct {
	Success  bool       `json:"success"`
	Patients []*Patient `json:"patients"`
}

func (h *Handler) List(c echo.Context) error {
	patients, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientListResponse{Success: true, Patients: patients})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parsePatientID(c)
	if err != nil {
		return err
	}

	var u Update
	if err := c.Bind(&u); err != nil {
		return httpx.Validation("Invalid update payload")
	}

	p, err := h.svc.ApplyUpdate(c.Request().Context(), id, u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientResponse{Success: true, PatientData: p})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parsePatientID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return httpx.OK(c, http.StatusOK, "Patient deleted successfully")
}

type riskScoreRequest struct {
	Score float64 `json:"score"`
}

func (h *Handler) SetRiskScore(c echo.Context) error {
	id, err := parsePatientID(c)
	if err != nil {
		return err
	}

	var req riskScoreRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Validation("Score is required")
	}

	p, err := h.svc.SetRiskScore(c.Request().Context(), id, req.Score)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientResponse{Success: true, PatientData: p})
}

type notificationsResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
}

func (h *Handler) Notifications(c echo.Context) error {
	notifications, err := h.svc.Notifications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationsResponse{Success: true, Notifications: notifications})
}

func parsePatientID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return uuid.Nil, httpx.Validation("Invalid patient id")
	}
	return id, nil
}
