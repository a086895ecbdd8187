// Package risk implements the cardiovascular risk scoring and triage engine.
//
// The engine is a pure, stateless rule-based classifier: it converts a
// structured patient assessment (demographics, symptoms, vital signs, risk
// factors) into a 1-5 likelihood score, a 1-5 impact score, a composite 1-25
// risk score with a five-band category, and a recommendation payload. Given
// identical input it always produces identical output, performs no I/O, and
// may be invoked concurrently without coordination.
package risk

import "errors"

// Sex is the patient's sex as used for baseline risk.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the closed set of sexes.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// ChestPainType categorizes reported chest pain.
type ChestPainType string

const (
	ChestPainNone       ChestPainType = "none"
	ChestPainNonAnginal ChestPainType = "non_anginal"
	ChestPainAtypical   ChestPainType = "atypical"
	ChestPainTypical    ChestPainType = "typical"
)

// BreathLevel is the reported severity of shortness of breath.
type BreathLevel string

const (
	BreathNone     BreathLevel = "none"
	BreathMild     BreathLevel = "mild"
	BreathModerate BreathLevel = "moderate"
	BreathSevere   BreathLevel = "severe"
)

// RiskFactors holds the chronic risk-factor flags from the patient's history.
type RiskFactors struct {
	Hypertension         bool `json:"hypertension"`
	Diabetes             bool `json:"diabetes"`
	ChronicKidneyDisease bool `json:"chronic_kidney_disease"`
	HighCholesterol      bool `json:"high_cholesterol"`
	Smoking              bool `json:"smoking"`
	Obesity              bool `json:"obesity"`
	FamilyHistory        bool `json:"family_history"`
	PreviousHeartDisease bool `json:"previous_heart_disease"`
}

// PatientInput is a single assessment request. Age and Sex are required;
// everything else is optional. Vital signs use pointers so that nil means
// "not measured" and contributes no severity. Symptom flags are plain
// booleans: an absent flag means the symptom is not present. The asymmetry
// is deliberate: symptom omission implies absence, vital-sign omission
// implies unknown.
type PatientInput struct {
	Age *int `json:"age"`
	Sex Sex  `json:"sex"`

	ChestPainType            ChestPainType `json:"chest_pain_type,omitempty"`
	ChestPainDurationMinutes *int          `json:"chest_pain_duration_minutes,omitempty"`
	ChestPainRadiation       bool          `json:"chest_pain_radiation,omitempty"`
	ChestPainExertional      bool          `json:"chest_pain_exertional,omitempty"`

	ShortnessOfBreath    BreathLevel `json:"shortness_of_breath,omitempty"`
	Palpitations         bool        `json:"palpitations,omitempty"`
	Syncope              bool        `json:"syncope,omitempty"`
	Fainting             bool        `json:"fainting,omitempty"`
	NeurologicalSymptoms bool        `json:"neurological_symptoms,omitempty"`
	LegSwelling          bool        `json:"leg_swelling,omitempty"`
	Sweating             bool        `json:"sweating,omitempty"`
	Dizziness            bool        `json:"dizziness,omitempty"`
	Nausea               bool        `json:"nausea,omitempty"`

	SystolicBP       *int     `json:"systolic_bp,omitempty"`
	DiastolicBP      *int     `json:"diastolic_bp,omitempty"`
	HeartRate        *int     `json:"heart_rate,omitempty"`
	OxygenSaturation *int     `json:"oxygen_saturation,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`

	RiskFactors RiskFactors `json:"risk_factors"`
}

// Level is a qualitative label for a 1-5 likelihood or impact score.
type Level string

const (
	LevelVeryLow  Level = "very_low"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// LevelForScore maps a 1-5 score onto its label. Scores are clamped first.
func LevelForScore(score int) Level {
	switch clampScore(score) {
	case 1:
		return LevelVeryLow
	case 2:
		return LevelLow
	case 3:
		return LevelModerate
	case 4:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// RiskCategory is the final five-band classification over the 5x5 matrix.
type RiskCategory string

const (
	CategoryLow      RiskCategory = "low"
	CategoryMild     RiskCategory = "mild"
	CategoryModerate RiskCategory = "moderate"
	CategoryHigh     RiskCategory = "high"
	CategoryCritical RiskCategory = "critical"
)

// Action is the overall care directive keyed off the risk category.
type Action string

const (
	ActionSelfCare  Action = "Self-care / monitor"
	ActionConsult   Action = "Consult doctor within 48 hours"
	ActionSeekCare  Action = "Seek medical attention within 6-24 hours"
	ActionUrgent    Action = "Seek urgent medical attention now"
	ActionEmergency Action = "Go to emergency room immediately"
)

// HeatmapPosition is the zero-based (likelihood-1, impact-1) coordinate of
// an assessment on the 5x5 display grid. Presentation-only.
type HeatmapPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Result is the complete output of one assessment.
type Result struct {
	LikelihoodScore   int             `json:"likelihood_score"`
	LikelihoodLevel   Level           `json:"likelihood_level"`
	ImpactScore       int             `json:"impact_score"`
	ImpactLevel       Level           `json:"impact_level"`
	FinalRiskScore    int             `json:"final_risk_score"`
	RiskCategory      RiskCategory    `json:"risk_category"`
	HeatmapPosition   HeatmapPosition `json:"heatmap_position"`
	RecommendedAction Action          `json:"recommended_action"`
	Explanation       string          `json:"explanation"`
	Recommendations   []string        `json:"recommendations"`
}

// Precondition failures. Age and sex materially affect baseline risk, so a
// missing or out-of-range value rejects the assessment instead of silently
// defaulting to minimum risk.
var (
	ErrMissingAge    = errors.New("risk: age is required")
	ErrAgeOutOfRange = errors.New("risk: age must be between 0 and 120")
	ErrMissingSex    = errors.New("risk: sex is required")
	ErrInvalidSex    = errors.New("risk: sex must be male or female")
)

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 5 {
		return 5
	}
	return s
}
