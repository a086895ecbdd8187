package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/domain/assessment"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if p.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth_date must be in the past")
	}
	if !p.Sex.Valid() {
		return fmt.Errorf("sex must be male or female")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if !p.Sex.Valid() {
		return fmt.Errorf("sex must be male or female")
	}
	if p.BirthDate.IsZero() || p.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth_date must be in the past")
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Exists reports whether a patient record is on file. The scheduling service
// uses it to reject bookings for unregistered patients.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// RiskDefaults exposes the stored demographics and chronic history to the
// assessment service, which uses them to backfill incomplete requests.
func (s *Service) RiskDefaults(ctx context.Context, patientID uuid.UUID) (*assessment.ProfileDefaults, error) {
	p, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &assessment.ProfileDefaults{
		Age:         p.AgeAt(time.Now()),
		Sex:         p.Sex,
		RiskFactors: p.RiskFactors(),
	}, nil
}
