// Package memory provides in-process repository implementations backed by
// maps. They mirror the not-found semantics of the postgres repositories and
// back the package-level tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/repository"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

type PatientRepository struct {
	mu       sync.RWMutex
	patients map[uuid.UUID]*model.Patient
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: make(map[uuid.UUID]*model.Patient)}
}

var _ repository.PatientRepository = (*PatientRepository)(nil)

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	clone := *patient
	r.patients[patient.ID] = &clone
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	clone := *patient
	return &clone, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.patients[patient.ID]
	if !ok {
		return apperrors.NewNotFound("patient", nil)
	}
	patient.CreatedAt = existing.CreatedAt
	patient.UpdatedAt = time.Now()

	clone := *patient
	r.patients[patient.ID] = &clone
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return apperrors.NewNotFound("patient", nil)
	}
	delete(r.patients, id)
	return nil
}

func (r *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*model.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		clone := *patient
		patients = append(patients, &clone)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].CreatedAt.Before(patients[j].CreatedAt)
	})
	return patients, nil
}

type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{appointments: make(map[uuid.UUID]*model.Appointment)}
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NewNotFound("appointment", nil)
	}
	clone := *appointment
	return &clone, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.appointments[appointment.ID]
	if !ok {
		return apperrors.NewNotFound("appointment", nil)
	}
	appointment.CreatedAt = existing.CreatedAt
	appointment.UpdatedAt = time.Now()

	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return apperrors.NewNotFound("appointment", nil)
	}
	delete(r.appointments, id)
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*model.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		clone := *appointment
		appointments = append(appointments, &clone)
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].ScheduledAt < appointments[j].ScheduledAt
	})
	return appointments, nil
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*model.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.NewNotFound("user", nil)
	}
	clone := *user
	return &clone, nil
}
