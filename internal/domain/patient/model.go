package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

// Patient maps to the patient table. Demographics and the chronic risk-factor
// flags live here; the flags seed every assessment the patient submits.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"`
	Sex       risk.Sex  `db:"sex" json:"sex"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`

	Hypertension         bool `db:"hypertension" json:"hypertension"`
	Diabetes             bool `db:"diabetes" json:"diabetes"`
	ChronicKidneyDisease bool `db:"chronic_kidney_disease" json:"chronic_kidney_disease"`
	HighCholesterol      bool `db:"high_cholesterol" json:"high_cholesterol"`
	Smoking              bool `db:"smoking" json:"smoking"`
	Obesity              bool `db:"obesity" json:"obesity"`
	FamilyHistory        bool `db:"family_history" json:"family_history"`
	PreviousHeartDisease bool `db:"previous_heart_disease" json:"previous_heart_disease"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AgeAt returns the patient's age in whole years at the given instant.
func (p *Patient) AgeAt(at time.Time) int {
	years := at.Year() - p.BirthDate.Year()
	if at.YearDay() < p.BirthDate.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// RiskFactors bundles the stored flags in the shape the scoring engine takes.
func (p *Patient) RiskFactors() risk.RiskFactors {
	return risk.RiskFactors{
		Hypertension:         p.Hypertension,
		Diabetes:             p.Diabetes,
		ChronicKidneyDisease: p.ChronicKidneyDisease,
		HighCholesterol:      p.HighCholesterol,
		Smoking:              p.Smoking,
		Obesity:              p.Obesity,
		FamilyHistory:        p.FamilyHistory,
		PreviousHeartDisease: p.PreviousHeartDisease,
	}
}
