package reporting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/domain/prediction"
)

type mockRepo struct {
	patients []ScoredPatient
	tests    []*prediction.Test
}

func (m *mockRepo) ScoredPatients(context.Context) ([]ScoredPatient, error) {
	return m.patients, nil
}

func (m *mockRepo) LatestTests(_ context.Context, ids []uuid.UUID) ([]*prediction.Test, error) {
	allowed := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	var out []*prediction.Test
	for _, t := range m.tests {
		if allowed[t.PatientID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func dashboardBody(t *testing.T, repo *mockRepo) dashboardResponse {
	t.Helper()
	h := NewHandler(NewService(repo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/prediction/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp
}

func TestHandler_DashboardEmptyStateIsSuccess(t *testing.T) {
	resp := dashboardBody(t, &mockRepo{})

	if !resp.Success {
		t.Error("empty state must still be success:true")
	}
	if resp.Stats.TotalPredictions != 0 {
		t.Errorf("stats: %+v", resp.Stats)
	}
}

func TestHandler_DashboardStats(t *testing.T) {
	p := scored(52, 0.75)
	repo := &mockRepo{
		patients: []ScoredPatient{p},
		tests:    []*prediction.Test{testFor(p, 1, 2, 1, 250, 140, 150, 1.2)},
	}

	resp := dashboardBody(t, repo)
	if !resp.Success {
		t.Fatal("expected success")
	}
	if resp.Stats.TotalPredictions != 1 || resp.Stats.RiskLevels.High != 1 {
		t.Errorf("stats: %+v", resp.Stats)
	}
	if resp.Stats.Averages.Cholesterol != 250 {
		t.Errorf("averages: %+v", resp.Stats.Averages)
	}
}
