package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/repository"
	"github.com/medidesk/frontdesk-api/internal/schedule"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

// UnknownPatientName is rendered when an appointment references a patient
// that no longer exists. Patient deletion never cascades to appointments, so
// dangling references are expected.
const UnknownPatientName = "patient not found"

// PatientDirectory resolves patient ids to display names for list
// enrichment. The patient service implements it; since that service also
// owns patient writes, its cached answers stay coherent with the store.
type PatientDirectory interface {
	ResolveName(ctx context.Context, id uuid.UUID) (string, error)
}

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.AppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context) ([]*model.AppointmentView, error)
}

type Service struct {
	repo     repository.AppointmentRepository
	patients PatientDirectory
}

func NewService(repo repository.AppointmentRepository, patients PatientDirectory) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.buildAppointment(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.AppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.buildAppointment(req)
	if err != nil {
		return nil, err
	}

	appointment.ID = id
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListAppointments returns stored appointments enriched with the referenced
// patient's display name. The reference is weak: a missing patient renders
// as UnknownPatientName instead of failing the list.
func (s *Service) ListAppointments(ctx context.Context) ([]*model.AppointmentView, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	views := make([]*model.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		date, clock, _ := schedule.Split(appointment.ScheduledAt)
		views = append(views, &model.AppointmentView{
			Appointment: *appointment,
			PatientName: s.patientName(ctx, appointment.PatientID),
			Date:        date,
			Time:        clock,
			DisplayDate: schedule.DisplayDate(appointment.ScheduledAt),
			DisplayTime: schedule.DisplayTime(appointment.ScheduledAt),
		})
	}
	return views, nil
}

func (s *Service) patientName(ctx context.Context, patientID uuid.UUID) string {
	name, err := s.patients.ResolveName(ctx, patientID)
	if err != nil {
		return UnknownPatientName
	}
	return name
}

// buildAppointment validates a request and composes the stored record.
// Required fields are checked in a fixed order and the first missing one
// names the rejection. Status is advisory free text and defaults to
// confirmed; no referential check is made against the patient store.
func (s *Service) buildAppointment(req *model.AppointmentRequest) (*model.Appointment, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"patientId", req.PatientID},
		{"professional", req.Professional},
		{"date", req.Date},
		{"time", req.Time},
		{"reason", req.Reason},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, apperrors.NewValidation(fmt.Sprintf("%s is required", field.name))
		}
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid patientId")
	}

	scheduledAt, err := schedule.Compose(req.Date, req.Time)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = string(model.AppointmentStatusConfirmed)
	}

	return &model.Appointment{
		PatientID:    patientID,
		Professional: strings.TrimSpace(req.Professional),
		ScheduledAt:  scheduledAt,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       status,
		Notes:        req.Notes,
	}, nil
}
