package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

// ProfileDefaults are the stored demographics and chronic history used to
// backfill an assessment request that omits them.
type ProfileDefaults struct {
	Age         int
	Sex         risk.Sex
	RiskFactors risk.RiskFactors
}

// ProfileSource resolves a patient's stored defaults. Implemented by the
// patient service; nil-able so the stateless evaluate path needs no wiring.
type ProfileSource interface {
	RiskDefaults(ctx context.Context, patientID uuid.UUID) (*ProfileDefaults, error)
}

type Service struct {
	repo     Repository
	profiles ProfileSource
}

func NewService(repo Repository, profiles ProfileSource) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// Evaluate runs the scoring engine without persisting anything.
func (s *Service) Evaluate(_ context.Context, in risk.PatientInput) (*risk.Result, error) {
	return risk.Assess(in)
}

// Run scores an assessment for a known patient and records it. When the
// request omits age or sex the patient's profile supplies them, and the
// stored chronic risk factors are merged in; flags set in the request are
// never cleared by the profile. A self-contained request skips the profile
// lookup entirely.
func (s *Service) Run(ctx context.Context, patientID uuid.UUID, in risk.PatientInput) (*Assessment, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if err := s.applyProfile(ctx, patientID, &in); err != nil {
		return nil, err
	}

	result, err := risk.Assess(in)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		PatientID:         patientID,
		Input:             in,
		LikelihoodScore:   result.LikelihoodScore,
		LikelihoodLevel:   result.LikelihoodLevel,
		ImpactScore:       result.ImpactScore,
		ImpactLevel:       result.ImpactLevel,
		FinalRiskScore:    result.FinalRiskScore,
		RiskCategory:      result.RiskCategory,
		RecommendedAction: result.RecommendedAction,
		Explanation:       result.Explanation,
		Recommendations:   result.Recommendations,
		HeatmapX:          result.HeatmapPosition.X,
		HeatmapY:          result.HeatmapPosition.Y,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) applyProfile(ctx context.Context, patientID uuid.UUID, in *risk.PatientInput) error {
	if s.profiles == nil {
		return nil
	}
	needsAge := in.Age == nil
	needsSex := in.Sex == ""
	if !needsAge && !needsSex {
		return nil
	}
	defaults, err := s.profiles.RiskDefaults(ctx, patientID)
	if err != nil {
		return fmt.Errorf("load patient profile: %w", err)
	}
	if needsAge {
		age := defaults.Age
		in.Age = &age
	}
	if needsSex {
		in.Sex = defaults.Sex
	}
	in.RiskFactors = mergeRiskFactors(in.RiskFactors, defaults.RiskFactors)
	return nil
}

// mergeRiskFactors unions the request flags with the stored chronic history.
// A condition on file counts even when the request leaves it unset.
func mergeRiskFactors(req, stored risk.RiskFactors) risk.RiskFactors {
	return risk.RiskFactors{
		Hypertension:         req.Hypertension || stored.Hypertension,
		Diabetes:             req.Diabetes || stored.Diabetes,
		ChronicKidneyDisease: req.ChronicKidneyDisease || stored.ChronicKidneyDisease,
		HighCholesterol:      req.HighCholesterol || stored.HighCholesterol,
		Smoking:              req.Smoking || stored.Smoking,
		Obesity:              req.Obesity || stored.Obesity,
		FamilyHistory:        req.FamilyHistory || stored.FamilyHistory,
		PreviousHeartDisease: req.PreviousHeartDisease || stored.PreviousHeartDisease,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

// RiskCategory reports the category a stored assessment was classified into.
// The scheduling service uses it to validate follow-up bookings.
func (s *Service) RiskCategory(ctx context.Context, id uuid.UUID) (risk.RiskCategory, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return a.RiskCategory, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// TrendsByPatient aggregates the last N days of history into a daily series
// and labels the overall direction by comparing the first and last days'
// average scores.
func (s *Service) TrendsByPatient(ctx context.Context, patientID uuid.UUID, days int) (*Trends, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	points, err := s.repo.TrendsByPatient(ctx, patientID, since)
	if err != nil {
		return nil, err
	}
	return &Trends{
		PatientID: patientID,
		Days:      days,
		Points:    points,
		Direction: trendDirection(points),
	}, nil
}

func trendDirection(points []TrendPoint) string {
	if len(points) < 2 {
		return TrendStable
	}
	first, last := points[0].AvgScore, points[len(points)-1].AvgScore
	switch {
	case last < first:
		return TrendImproving
	case last > first:
		return TrendWorsening
	default:
		return TrendStable
	}
}
