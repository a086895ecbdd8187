package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func validPatient() *Patient {
	return &Patient{
		FirstName: "Ada",
		LastName:  "Nilsen",
		BirthDate: time.Date(1970, 3, 15, 0, 0, 0, 0, time.UTC),
		Sex:       risk.SexFemale,
	}
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if _, ok := repo.patients[p.ID]; !ok {
		t.Error("patient not persisted")
	}
}

func TestService_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Patient)
	}{
		{"missing name", func(p *Patient) { p.FirstName = "" }},
		{"missing birth date", func(p *Patient) { p.BirthDate = time.Time{} }},
		{"future birth date", func(p *Patient) { p.BirthDate = time.Now().AddDate(1, 0, 0) }},
		{"invalid sex", func(p *Patient) { p.Sex = "other" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			p := validPatient()
			tc.mutate(p)
			if err := svc.Create(context.Background(), p); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPatient_AgeAt(t *testing.T) {
	p := &Patient{BirthDate: time.Date(1970, 6, 15, 0, 0, 0, 0, time.UTC)}
	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC), 55},
		{time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), 56},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 56},
	}
	for _, tc := range cases {
		if got := p.AgeAt(tc.at); got != tc.want {
			t.Errorf("AgeAt(%s) = %d, want %d", tc.at.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestService_RiskDefaults(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	p.Hypertension = true
	p.Smoking = true
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	d, err := svc.RiskDefaults(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Sex != risk.SexFemale {
		t.Errorf("expected female, got %q", d.Sex)
	}
	if d.Age < 55 {
		t.Errorf("expected adult age, got %d", d.Age)
	}
	if !d.RiskFactors.Hypertension || !d.RiskFactors.Smoking {
		t.Error("expected stored risk factors in defaults")
	}
	if d.RiskFactors.Diabetes {
		t.Error("unset flags must stay false")
	}
}

func TestService_RiskDefaults_NotFound(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.RiskDefaults(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown patient")
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.patients) != 0 {
		t.Error("expected patient removed")
	}
}

func TestService_Exists(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	ok, err := svc.Exists(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected stored patient to exist")
	}

	ok, err = svc.Exists(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected unknown id to not exist")
	}
}
