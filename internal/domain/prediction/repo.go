package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound reports a lookup that matched no test record.
var ErrNotFound = errors.New("prediction: test not found")

type TestRepository interface {
	Create(ctx context.Context, t *Test) error
	GetByID(ctx context.Context, id uuid.UUID) (*Test, error)
	// ListByPatient returns every test for a patient, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Test, error)
	// RecentByPatient returns at most limit tests, newest first.
	RecentByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*Test, error)
}

type PredictionRepository interface {
	Create(ctx context.Context, p *Prediction) error
}

// RiskScoreWriter updates a patient's cached risk score. Satisfied by the
// patient repository; declared here to keep the dependency one-way.
type RiskScoreWriter interface {
	SetRiskScore(ctx context.Context, patientID uuid.UUID, score float64) error
}
