package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

// Assessment maps to the assessment table. The submitted input is kept as a
// JSONB document; the derived scores are flattened into columns so history
// queries and trend aggregation never have to reparse the input.
type Assessment struct {
	ID                uuid.UUID         `db:"id" json:"id"`
	PatientID         uuid.UUID         `db:"patient_id" json:"patient_id"`
	Input             risk.PatientInput `db:"input" json:"input"`
	LikelihoodScore   int               `db:"likelihood_score" json:"likelihood_score"`
	LikelihoodLevel   risk.Level        `db:"likelihood_level" json:"likelihood_level"`
	ImpactScore       int               `db:"impact_score" json:"impact_score"`
	ImpactLevel       risk.Level        `db:"impact_level" json:"impact_level"`
	FinalRiskScore    int               `db:"final_risk_score" json:"final_risk_score"`
	RiskCategory      risk.RiskCategory `db:"risk_category" json:"risk_category"`
	RecommendedAction risk.Action       `db:"recommended_action" json:"recommended_action"`
	Explanation       string            `db:"explanation" json:"explanation"`
	Recommendations   []string          `db:"recommendations" json:"recommendations"`
	HeatmapX          int               `db:"heatmap_x" json:"-"`
	HeatmapY          int               `db:"heatmap_y" json:"-"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
}

// Heatmap returns the stored grid coordinate in the shape the engine emits.
func (a *Assessment) Heatmap() risk.HeatmapPosition {
	return risk.HeatmapPosition{X: a.HeatmapX, Y: a.HeatmapY}
}

// TrendPoint is one day of aggregated assessment history for a patient.
// Vital averages are nil on days where no assessment carried that reading.
type TrendPoint struct {
	Day           time.Time `json:"day"`
	Count         int       `json:"count"`
	AvgScore      float64   `json:"avg_score"`
	MaxScore      int       `json:"max_score"`
	AvgSystolicBP *float64  `json:"avg_systolic_bp,omitempty"`
	AvgHeartRate  *float64  `json:"avg_heart_rate,omitempty"`
}

// Trends is the response of the trend endpoint: the per-day series plus the
// direction of travel between the first and last observed days.
type Trends struct {
	PatientID uuid.UUID    `json:"patient_id"`
	Days      int          `json:"days"`
	Points    []TrendPoint `json:"points"`
	Direction string       `json:"direction"`
}

const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
)
