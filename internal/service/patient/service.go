package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/repository"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

const (
	nameCacheTTL     = 5 * time.Minute
	nameCacheCleanup = 15 * time.Minute
)

type PatientService interface {
	CreatePatient(ctx context.Context, name string) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, name string) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	ResolveName(ctx context.Context, id uuid.UUID) (string, error)
}

// Service owns patient writes, so it also owns the display-name cache:
// every mutation passes through here and keeps cached names coherent.
type Service struct {
	repo  repository.PatientRepository
	names *cache.Cache
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo:  repo,
		names: cache.New(nameCacheTTL, nameCacheCleanup),
	}
}

func (s *Service) CreatePatient(ctx context.Context, name string) (*model.Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("name is required")
	}

	patient := &model.Patient{Name: name}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.names.Set(patient.ID.String(), patient.Name, cache.DefaultExpiration)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, name string) (*model.Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("name is required")
	}

	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patient.Name = name
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}

	s.names.Set(patient.ID.String(), patient.Name, cache.DefaultExpiration)
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.names.Delete(id.String())
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// ResolveName returns the display name for a patient id, serving repeated
// lookups from the cache. Deleted patients are evicted on delete, so a
// dangling reference misses the cache and surfaces the store's not-found.
func (s *Service) ResolveName(ctx context.Context, id uuid.UUID) (string, error) {
	key := id.String()
	if name, ok := s.names.Get(key); ok {
		return name.(string), nil
	}

	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	s.names.Set(key, patient.Name, cache.DefaultExpiration)
	return patient.Name, nil
}
