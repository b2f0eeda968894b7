package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type testRepoPG struct{ pool *pgxpool.Pool }

func NewTestRepoPG(pool *pgxpool.Pool) TestRepository {
	return &testRepoPG{pool: pool}
}

const testCols = `id, patient_id, age, sex, cp, trestbps, chol, fbs, restecg,
	thalach, exang, oldpeak, slope, ca, thal, prediction, probability, created_at`

func scanTest(row pgx.Row) (*Test, error) {
	var t Test
	err := row.Scan(&t.ID, &t.PatientID, &t.Age, &t.Sex, &t.CP, &t.Trestbps, &t.Chol,
		&t.FBS, &t.Restecg, &t.Thalach, &t.Exang, &t.Oldpeak, &t.Slope, &t.CA,
		&t.Thal, &t.Prediction, &t.Probability, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *testRepoPG) Create(ctx context.Context, t *Test) error {
	t.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO risk_test (id, patient_id, age, sex, cp, trestbps, chol, fbs,
			restecg, thalach, exang, oldpeak, slope, ca, thal, prediction, probability)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING created_at`,
		t.ID, t.PatientID, t.Age, t.Sex, t.CP, t.Trestbps, t.Chol, t.FBS,
		t.Restecg, t.Thalach, t.Exang, t.Oldpeak, t.Slope, t.CA, t.Thal,
		t.Prediction, t.Probability).Scan(&t.CreatedAt)
}

func (r *testRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Test, error) {
	return scanTest(r.pool.QueryRow(ctx, `SELECT `+testCols+` FROM risk_test WHERE id = $1`, id))
}

func (r *testRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Test, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+testCols+` FROM risk_test
		WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTests(rows)
}

func (r *testRepoPG) RecentByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*Test, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+testCols+` FROM risk_test
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTests(rows)
}

func collectTests(rows pgx.Rows) ([]*Test, error) {
	var items []*Test
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

type predictionRepoPG struct{ pool *pgxpool.Pool }

func NewPredictionRepoPG(pool *pgxpool.Pool) PredictionRepository {
	return &predictionRepoPG{pool: pool}
}

func (r *predictionRepoPG) Create(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO risk_prediction (id, age, sex, cp, trestbps, chol, fbs,
			restecg, thalach, exang, oldpeak, slope, ca, thal, prediction, probability)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at`,
		p.ID, p.Age, p.Sex, p.CP, p.Trestbps, p.Chol, p.FBS,
		p.Restecg, p.Thalach, p.Exang, p.Oldpeak, p.Slope, p.CA, p.Thal,
		p.Prediction, p.Probability).Scan(&p.CreatedAt)
}
