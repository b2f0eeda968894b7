package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Scorer calls the external scoring model. The model is an opaque
// collaborator: given the feature vector it returns {probability, label}
// and nothing about its internals is assumed.
type Scorer interface {
	Score(ctx context.Context, f Features) (Result, error)
}

// HTTPScorer posts feature vectors to the model endpoint, bounded by a
// per-call timeout. Any failure mode (network, timeout, non-2xx, malformed
// body) is reported the same way; callers map it to ServiceUnavailable.
type HTTPScorer struct {
	url    string
	client *http.Client
}

func NewHTTPScorer(url string, timeout time.Duration) *HTTPScorer {
	return &HTTPScorer{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPScorer) Score(ctx context.Context, f Features) (Result, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return Result{}, fmt.Errorf("encoding features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("calling model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decoding model response: %w", err)
	}
	return out, nil
}
