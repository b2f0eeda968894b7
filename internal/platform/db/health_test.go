package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPoolHealth_JSONShape(t *testing.T) {
	snapshot := PoolHealth{
		TotalConns:    10,
		IdleConns:     5,
		AcquiredConns: 5,
		MaxConns:      20,
		AcquireCount:  100,
		AcquireWait:   "1.5s",
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	// The pool snapshot uses the API's camelCase field names.
	for _, key := range []string{
		`"totalConns":10`, `"idleConns":5`, `"acquiredConns":5`,
		`"maxConns":20`, `"acquireCount":100`, `"acquireWait":"1.5s"`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("missing %s in %s", key, body)
		}
	}
	if strings.Contains(body, "_") {
		t.Errorf("snake_case key leaked into %s", body)
	}
}

func TestDBHealthResponse_UnavailableShape(t *testing.T) {
	raw, err := json.Marshal(dbHealthResponse{
		Status:  "unavailable",
		Message: "connection refused",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"success":false`) {
		t.Errorf("failure response must carry success:false: %s", body)
	}
	if !strings.Contains(body, `"status":"unavailable"`) || !strings.Contains(body, `"message":"connection refused"`) {
		t.Errorf("response: %s", body)
	}
}

func TestDBHealthResponse_OKOmitsMessage(t *testing.T) {
	raw, err := json.Marshal(dbHealthResponse{Success: true, Status: "ok"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "message") {
		t.Errorf("healthy response must omit message: %s", raw)
	}
}
