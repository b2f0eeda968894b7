// Package prediction is the gateway to the external heart-disease scoring
// model. It forwards feature vectors, persists the results, and serves the
// per-patient test history.
package prediction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Features is the 13-feature clinical vector the scoring model consumes.
type Features struct {
	Age      int     `json:"age"`
	Sex      int     `json:"sex"`
	CP       int     `json:"cp"`
	Trestbps float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	FBS      int     `json:"fbs"`
	Restecg  int     `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    int     `json:"exang"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    int     `json:"slope"`
	CA       int     `json:"ca"`
	Thal     int     `json:"thal"`
}

// Validate checks the categorical features against their value ranges.
func (f Features) Validate() error {
	checks := []struct {
		name string
		val  int
		max  int
	}{
		{"sex", f.Sex, 1},
		{"cp", f.CP, 3},
		{"fbs", f.FBS, 1},
		{"restecg", f.Restecg, 2},
		{"exang", f.Exang, 1},
		{"slope", f.Slope, 2},
		{"ca", f.CA, 3},
		{"thal", f.Thal, 3},
	}
	for _, c := range checks {
		if c.val < 0 || c.val > c.max {
			return fmt.Errorf("%s must be between 0 and %d", c.name, c.max)
		}
	}
	if f.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	return nil
}

// Result is the raw scoring model output, returned to the caller unchanged.
type Result struct {
	Probability float64 `json:"probability"`
	Label       int     `json:"label"`
}

// Test maps to the risk_test table: one prediction run tied to a patient,
// immutable once created.
type Test struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patientId"`
	Features
	Prediction  int       `json:"prediction"`
	Probability float64   `json:"probability"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Prediction maps to the risk_prediction table: an anonymous run with no
// patient linkage.
type Prediction struct {
	ID uuid.UUID `json:"id"`
	Features
	Prediction  int       `json:"prediction"`
	Probability float64   `json:"probability"`
	CreatedAt   time.Time `json:"createdAt"`
}
