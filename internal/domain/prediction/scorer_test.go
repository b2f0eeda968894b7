package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var sampleFeatures = Features{
	Age: 54, Sex: 1, CP: 2, Trestbps: 130, Chol: 240, FBS: 0,
	Restecg: 1, Thalach: 160, Exang: 0, Oldpeak: 1.2, Slope: 1, CA: 0, Thal: 2,
}

func TestHTTPScorer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		var got Features
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if got.Chol != 240 {
			t.Errorf("chol: got %v", got.Chol)
		}
		json.NewEncoder(w).Encode(Result{Probability: 0.73, Label: 1})
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL, time.Second)
	res, err := s.Score(context.Background(), sampleFeatures)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Probability != 0.73 || res.Label != 1 {
		t.Errorf("result: %+v", res)
	}
}

func TestHTTPScorer_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL, time.Second)
	if _, err := s.Score(context.Background(), sampleFeatures); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestHTTPScorer_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL, time.Second)
	if _, err := s.Score(context.Background(), sampleFeatures); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestHTTPScorer_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(Result{Probability: 0.5, Label: 1})
	}))
	defer srv.Close()

	s := NewHTTPScorer(srv.URL, 20*time.Millisecond)
	if _, err := s.Score(context.Background(), sampleFeatures); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestHTTPScorer_ConnectionRefused(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := NewHTTPScorer(srv.URL, time.Second)
	if _, err := s.Score(context.Background(), sampleFeatures); err == nil {
		t.Fatal("expected connection error")
	}
}
