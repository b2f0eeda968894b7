package reporting

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartwise/heartwise/internal/domain/prediction"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ScoredPatients(ctx context.Context) ([]ScoredPatient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, age, heart_risk_score FROM patient
		WHERE heart_risk_score IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoredPatient
	for rows.Next() {
		var p ScoredPatient
		if err := rows.Scan(&p.ID, &p.Age, &p.HeartRiskScore); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repoPG) LatestTests(ctx context.Context, patientIDs []uuid.UUID) ([]*prediction.Test, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (patient_id)
			id, patient_id, age, sex, cp, trestbps, chol, fbs, restecg,
			thalach, exang, oldpeak, slope, ca, thal, prediction, probability, created_at
		FROM risk_test
		WHERE patient_id = ANY($1)
		ORDER BY patient_id, created_at DESC`, patientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*prediction.Test
	for rows.Next() {
		var t prediction.Test
		err := rows.Scan(&t.ID, &t.PatientID, &t.Age, &t.Sex, &t.CP, &t.Trestbps,
			&t.Chol, &t.FBS, &t.Restecg, &t.Thalach, &t.Exang, &t.Oldpeak,
			&t.Slope, &t.CA, &t.Thal, &t.Prediction, &t.Probability, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
