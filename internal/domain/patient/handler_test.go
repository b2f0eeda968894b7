package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/domain/prediction"
	"github.com/heartwise/heartwise/internal/platform/httpx"
)

func newTestHandler(repo *mockPatientRepo, history *mockTestHistory) *Handler {
	if history == nil {
		history = &mockTestHistory{tests: map[uuid.UUID][]*prediction.Test{}}
	}
	return NewHandler(NewService(repo, history))
}

func TestHandler_CreateReturnsPatientEnvelope(t *testing.T) {
	h := newTestHandler(newMockPatientRepo(), nil)

	e := echo.New()
	body := `{"name":"John Doe","age":54,"gender":"male","contactNumber":"555-0101",
		"email":"john@example.com","address":"12 Elm St"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patient", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}

	var resp patientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.PatientData == nil || resp.PatientData.ID == uuid.Nil {
		t.Errorf("response: %+v", resp)
	}
}

func TestHandler_GetDuplicatesHistoryFields(t *testing.T) {
	repo := newMockPatientRepo()
	history := &mockTestHistory{tests: map[uuid.UUID][]*prediction.Test{}}
	h := newTestHandler(repo, history)

	p := validPatient()
	if err := repo.Create(nil, p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	history.tests[p.ID] = []*prediction.Test{{ID: uuid.New(), PatientID: p.ID, Probability: 0.7}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/patient/:patientId")
	c.SetParamNames("patientId")
	c.SetParamValues(p.ID.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}

	var resp patientDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.PatientData == nil {
		t.Fatalf("response: %+v", resp)
	}
	if len(resp.TestHistory) != 1 || len(resp.PredictionHistory) != 1 {
		t.Errorf("both history fields must carry the tests: %+v", resp)
	}
}

func TestHandler_InvalidPatientID(t *testing.T) {
	h := newTestHandler(newMockPatientRepo(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/patient/:patientId")
	c.SetParamNames("patientId")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	apiErr, ok := httpx.AsError(err)
	if !ok || apiErr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestHandler_DeleteMessage(t *testing.T) {
	repo := newMockPatientRepo()
	h := newTestHandler(repo, nil)

	p := validPatient()
	if err := repo.Create(nil, p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/patient/:patientId")
	c.SetParamNames("patientId")
	c.SetParamValues(p.ID.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Patient deleted successfully") {
		t.Errorf("body: %s", rec.Body.String())
	}
	if len(repo.patients) != 0 {
		t.Error("patient not removed")
	}
}

func TestHandler_SetRiskScore(t *testing.T) {
	repo := newMockPatientRepo()
	h := newTestHandler(repo, nil)

	p := validPatient()
	if err := repo.Create(nil, p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"score":0.73}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/patient/:patientId/heartRisk")
	c.SetParamNames("patientId")
	c.SetParamValues(p.ID.String())

	if err := h.SetRiskScore(c); err != nil {
		t.Fatalf("SetRiskScore: %v", err)
	}

	var resp patientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.PatientData.HeartRiskScore == nil || *resp.PatientData.HeartRiskScore != 0.73 {
		t.Errorf("score: %+v", resp.PatientData.HeartRiskScore)
	}
}

func TestHandler_NotificationsEnvelope(t *testing.T) {
	h := newTestHandler(newMockPatientRepo(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patient/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Notifications(c); err != nil {
		t.Fatalf("Notifications: %v", err)
	}

	var resp notificationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.Notifications == nil {
		t.Errorf("notifications must be an empty non-nil slice: %+v", resp)
	}
}
