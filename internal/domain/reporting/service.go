package reporting

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartwise/heartwise/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DashboardStats builds the dashboard payload from the current data. With
// no qualifying patients it returns the empty-shaped stats, not an error.
func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	patients, err := s.repo.ScoredPatients(ctx)
	if err != nil {
		return Stats{}, httpx.Internal(err)
	}
	if len(patients) == 0 {
		return emptyStats(), nil
	}

	ids := make([]uuid.UUID, 0, len(patients))
	for _, p := range patients {
		ids = append(ids, p.ID)
	}
	latestTests, err := s.repo.LatestTests(ctx, ids)
	if err != nil {
		return Stats{}, httpx.Internal(err)
	}

	return computeStats(patients, latestTests), nil
}
