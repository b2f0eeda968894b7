// Package patient implements the clinical-subject records: intake CRUD,
// risk-score bookkeeping and the follow-up appointment notifications.
package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. heartRiskScore is the only field the
// prediction gateway mutates; everything else changes through explicit edits.
type Patient struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	ContactNumber  string     `json:"contactNumber"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	MedicalHistory string     `json:"medicalHistory"`
	HeartRiskScore *float64   `json:"heartRiskScore"`
	HeartRiskLabel *int       `json:"heartRiskLabel"`
	LastCheckup    *time.Time `json:"lastCheckup"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	Name           *string    `json:"name"`
	Age            *int       `json:"age"`
	Gender         *string    `json:"gender"`
	ContactNumber  *string    `json:"contactNumber"`
	Email          *string    `json:"email"`
	Address        *string    `json:"address"`
	MedicalHistory *string    `json:"medicalHistory"`
	HeartRiskScore *float64   `json:"heartRiskScore"`
	HeartRiskLabel *int       `json:"heartRiskLabel"`
	LastCheckup    *time.Time `json:"lastCheckup"`
}

// Apply merges the non-nil fields into p.
func (u Update) Apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.ContactNumber != nil {
		p.ContactNumber = *u.ContactNumber
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = *u.MedicalHistory
	}
	if u.HeartRiskScore != nil {
		p.HeartRiskScore = u.HeartRiskScore
	}
	if u.HeartRiskLabel != nil {
		p.HeartRiskLabel = u.HeartRiskLabel
	}
	if u.LastCheckup != nil {
		p.LastCheckup = u.LastCheckup
	}
}
