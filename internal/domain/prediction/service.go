package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heartwise/heartwise/internal/platform/httpx"
)

type Service struct {
	scorer      Scorer
	tests       TestRepository
	predictions PredictionRepository
	patients    RiskScoreWriter
	logger      zerolog.Logger
}

func NewService(scorer Scorer, tests TestRepository, predictions PredictionRepository, patients RiskScoreWriter, logger zerolog.Logger) *Service {
	return &Service{
		scorer:      scorer,
		tests:       tests,
		predictions: predictions,
		patients:    patients,
		logger:      logger,
	}
}

// Predict forwards the feature vector to the scoring model and persists the
// outcome. With a patient id the run becomes a Test and the patient's cached
// heart_risk_score is updated to the new probability; without one it becomes
// an anonymous Prediction. The caller always receives the raw model result:
// persistence problems after a successful score are logged, never surfaced.
func (s *Service) Predict(ctx context.Context, f Features, patientID *uuid.UUID) (Result, error) {
	res, err := s.scorer.Score(ctx, f)
	if err != nil {
		return Result{}, httpx.Unavailable("Prediction service unavailable.", err)
	}

	if patientID != nil {
		t := &Test{
			PatientID:   *patientID,
			Features:    f,
			Prediction:  res.Label,
			Probability: res.Probability,
		}
		if err := s.tests.Create(ctx, t); err != nil {
			s.logger.Error().Err(err).Str("patient_id", patientID.String()).
				Msg("failed to persist test record")
			return res, nil
		}
		// heart_risk_label is intentionally not cached on the patient.
		if err := s.patients.SetRiskScore(ctx, *patientID, res.Probability); err != nil {
			s.logger.Error().Err(err).Str("patient_id", patientID.String()).
				Msg("failed to update patient risk score")
		}
		return res, nil
	}

	p := &Prediction{
		Features:    f,
		Prediction:  res.Label,
		Probability: res.Probability,
	}
	if err := s.predictions.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist anonymous prediction")
	}
	return res, nil
}

// History returns every test for a patient, newest first. An unknown or
// deleted patient simply yields an empty history; orphaned tests of a
// deleted patient remain retrievable here.
func (s *Service) History(ctx context.Context, patientID uuid.UUID) ([]*Test, error) {
	tests, err := s.tests.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	if tests == nil {
		tests = []*Test{}
	}
	return tests, nil
}

// GetTest returns a single test record.
func (s *Service) GetTest(ctx context.Context, id uuid.UUID) (*Test, error) {
	t, err := s.tests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFound("Test not found")
		}
		return nil, httpx.Internal(err)
	}
	return t, nil
}
