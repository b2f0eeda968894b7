package patient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/heartwise/heartwise/internal/domain/prediction"
	"github.com/heartwise/heartwise/internal/platform/httpx"
)

// historyLimit caps the test records joined onto a single patient view.
const historyLimit = 10

type Service struct {
	patients PatientRepository
	history  TestHistory
}

func NewService(patients PatientRepository, history TestHistory) *Service {
	return &Service{patients: patients, history: history}
}

func validGender(g string) bool { return g == "male" || g == "female" }

// Create validates the intake form and persists the new patient.
func (s *Service) Create(ctx context.Context, p *Patient) error {
	switch {
	case p.Name == "", p.ContactNumber == "", p.Email == "", p.Address == "":
		return httpx.Validation("Please fill all the fields")
	case p.Age <= 0:
		return httpx.Validation("Age must be positive")
	case !validGender(p.Gender):
		return httpx.Validation("Gender must be male or female")
	}

	if err := s.patients.Create(ctx, p); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return httpx.Conflict("A patient with this email already exists")
		}
		return httpx.Internal(err)
	}
	return nil
}

// Get returns one patient together with their 10 most recent test records,
// newest first.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, []*prediction.Test, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, httpx.NotFound("Patient not found")
		}
		return nil, nil, httpx.Internal(err)
	}

	tests, err := s.history.RecentByPatient(ctx, id, historyLimit)
	if err != nil {
		return nil, nil, httpx.Internal(err)
	}
	if tests == nil {
		tests = []*prediction.Test{}
	}
	return p, tests, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return patients, nil
}

// ApplyUpdate merges a partial edit into the stored record and returns the
// updated patient.
func (s *Service) ApplyUpdate(ctx context.Context, id uuid.UUID, u Update) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFound("Patient not found")
		}
		return nil, httpx.Internal(err)
	}

	u.Apply(p)
	if u.Gender != nil && !validGender(p.Gender) {
		return nil, httpx.Validation("Gender must be male or female")
	}

	if err := s.patients.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return nil, httpx.Conflict("A patient with this email already exists")
		case errors.Is(err, ErrNotFound):
			return nil, httpx.NotFound("Patient not found")
		}
		return nil, httpx.Internal(err)
	}
	return p, nil
}

// Delete removes the patient record. Test history is deliberately left in
// place; it stays reachable through the prediction history endpoint.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound("Patient not found")
		}
		return httpx.Internal(err)
	}
	return nil
}

// SetRiskScore overwrites the cached risk score and returns the updated
// record.
func (s *Service) SetRiskScore(ctx context.Context, id uuid.UUID, score float64) (*Patient, error) {
	if score < 0 || score > 1 {
		return nil, httpx.Validation("Score must be between 0 and 1")
	}
	if err := s.patients.SetRiskScore(ctx, id, score); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFound("Patient not found")
		}
		return nil, httpx.Internal(err)
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return p, nil
}

// Notifications lists high-risk patients due or overdue for a follow-up.
func (s *Service) Notifications(ctx context.Context) ([]Notification, error) {
	candidates, err := s.patients.ListScoredWithCheckup(ctx)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return BuildNotifications(candidates, time.Now()), nil
}
