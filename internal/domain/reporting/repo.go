package reporting

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartwise/heartwise/internal/domain/prediction"
)

// ScoredPatient is the projection the dashboard needs from the patient
// table: only rows with a cached risk score qualify.
type ScoredPatient struct {
	ID             uuid.UUID
	Age            int
	HeartRiskScore float64
}

type Repository interface {
	// ScoredPatients returns every patient with a non-null risk score.
	ScoredPatients(ctx context.Context) ([]ScoredPatient, error)
	// LatestTests returns the newest test per given patient, one row each,
	// for patients that have any.
	LatestTests(ctx context.Context, patientIDs []uuid.UUID) ([]*prediction.Test, error)
}
