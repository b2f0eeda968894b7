package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartwise/heartwise/internal/domain/prediction"
)

var (
	ErrNotFound       = errors.New("patient: not found")
	ErrDuplicateEmail = errors.New("patient: email already in use")
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// List returns every patient, unpaginated; filtering happens client-side.
	List(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetRiskScore(ctx context.Context, id uuid.UUID, score float64) error
	// ListScoredWithCheckup returns patients with both a cached risk score
	// and a recorded last checkup, the notification candidate pool.
	ListScoredWithCheckup(ctx context.Context) ([]*Patient, error)
}

// TestHistory is the narrow slice of the prediction store this package
// needs: the most recent test records for one patient.
type TestHistory interface {
	RecentByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*prediction.Test, error)
}
