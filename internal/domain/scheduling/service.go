package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

// PatientDirectory confirms a patient record exists before an appointment is
// booked against it. Implemented by the patient service.
type PatientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// AssessmentSource resolves the risk category of the assessment an
// appointment follows up on. Implemented by the assessment service.
type AssessmentSource interface {
	RiskCategory(ctx context.Context, id uuid.UUID) (risk.RiskCategory, error)
}

type Service struct {
	repo        Repository
	patients    PatientDirectory
	assessments AssessmentSource
}

func NewService(repo Repository, patients PatientDirectory, assessments AssessmentSource) *Service {
	return &Service{repo: repo, patients: patients, assessments: assessments}
}

// Book creates a new appointment. New appointments always start in the
// booked state, must lie in the future, and must belong to a registered
// patient. When the appointment follows up on an assessment, its start time
// must fall within the follow-up window for that assessment's risk category.
func (s *Service) Book(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("start_time is required")
	}
	if a.StartTime.Before(time.Now()) {
		return fmt.Errorf("start_time must be in the future")
	}
	if a.EndTime != nil && !a.EndTime.After(a.StartTime) {
		return fmt.Errorf("end_time must be after start_time")
	}
	ok, err := s.patients.Exists(ctx, a.PatientID)
	if err != nil {
		return fmt.Errorf("look up patient: %w", err)
	}
	if !ok {
		return fmt.Errorf("patient %s is not registered", a.PatientID)
	}
	if a.AssessmentID != nil {
		if err := s.checkFollowUpWindow(ctx, a); err != nil {
			return err
		}
	}
	a.Status = StatusBooked
	return s.repo.Create(ctx, a)
}

func (s *Service) checkFollowUpWindow(ctx context.Context, a *Appointment) error {
	category, err := s.assessments.RiskCategory(ctx, *a.AssessmentID)
	if err != nil {
		return fmt.Errorf("look up assessment: %w", err)
	}
	window, needed := FollowUpWindow(category)
	if !needed {
		return nil
	}
	if window == 0 {
		return fmt.Errorf("a %s assessment calls for immediate emergency care, not a booked follow-up", category)
	}
	if a.StartTime.After(time.Now().Add(window)) {
		return fmt.Errorf("start_time is outside the %s follow-up window for a %s assessment", window, category)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an appointment through its lifecycle. Fulfilled,
// cancelled and no-show are terminal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransition(status) {
		return nil, fmt.Errorf("cannot transition appointment from %s to %s", a.Status, status)
	}
	a.Status = status
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Reschedule moves a booked appointment to a new future start time.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, start time.Time, end *time.Time) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusBooked {
		return nil, fmt.Errorf("only booked appointments can be rescheduled")
	}
	if start.Before(time.Now()) {
		return nil, fmt.Errorf("start_time must be in the future")
	}
	if end != nil && !end.After(start) {
		return nil, fmt.Errorf("end_time must be after start_time")
	}
	a.StartTime = start
	a.EndTime = end
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
