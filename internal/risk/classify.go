package risk

import "fmt"

// Classification combines the two 1-5 scores over the fixed 5x5 matrix.
type Classification struct {
	FinalScore int
	Category   RiskCategory
	Position   HeatmapPosition
}

// Classify multiplies likelihood by impact and assigns the category by the
// fixed score bands: 1-5 low, 6-10 mild, 11-15 moderate, 16-20 high,
// 21-25 critical. Inputs are clamped to [1,5] first, so every product falls
// in exactly one band.
func Classify(likelihood, impact int) Classification {
	likelihood = clampScore(likelihood)
	impact = clampScore(impact)
	final := likelihood * impact

	return Classification{
		FinalScore: final,
		Category:   categoryForScore(final),
		Position:   HeatmapPosition{X: likelihood - 1, Y: impact - 1},
	}
}

func categoryForScore(final int) RiskCategory {
	switch {
	case final <= 5:
		return CategoryLow
	case final <= 10:
		return CategoryMild
	case final <= 15:
		return CategoryModerate
	case final <= 20:
		return CategoryHigh
	default:
		return CategoryCritical
	}
}

// Assess runs the full pipeline: validate preconditions, score likelihood
// and impact, classify, and generate recommendations. It is a pure function
// of its input and never fails for missing optional fields; only absent or
// out-of-range age/sex reject the assessment.
func Assess(in PatientInput) (*Result, error) {
	if in.Age == nil {
		return nil, ErrMissingAge
	}
	if *in.Age < 0 || *in.Age > 120 {
		return nil, ErrAgeOutOfRange
	}
	if in.Sex == "" {
		return nil, ErrMissingSex
	}
	if !in.Sex.Valid() {
		return nil, ErrInvalidSex
	}

	likelihood, likelihoodLevel := LikelihoodScore(in)
	impact, impactLevel := ImpactScore(in)
	cls := Classify(likelihood, impact)

	return &Result{
		LikelihoodScore:   likelihood,
		LikelihoodLevel:   likelihoodLevel,
		ImpactScore:       impact,
		ImpactLevel:       impactLevel,
		FinalRiskScore:    cls.FinalScore,
		RiskCategory:      cls.Category,
		HeatmapPosition:   cls.Position,
		RecommendedAction: ActionForCategory(cls.Category),
		Explanation:       explain(likelihood, likelihoodLevel, impact, impactLevel, cls),
		Recommendations:   Recommendations(cls.Category, in),
	}, nil
}

func explain(likelihood int, ll Level, impact int, il Level, cls Classification) string {
	return fmt.Sprintf(
		"Likelihood %d (%s) multiplied by impact %d (%s) gives a risk score of %d, which falls in the %s band.",
		likelihood, ll, impact, il, cls.FinalScore, cls.Category)
}
