package schedule

import (
	"context"
	"time"

	"github.com/agendalivre/agenda-api/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability blocks --------
	ListActiveBlocks(
		ctx context.Context,
		professionalID uint,
		dayOfWeek int,
	) ([]models.AvailabilityBlock, error)

	ListBlocks(
		ctx context.Context,
		professionalID uint,
	) ([]models.AvailabilityBlock, error)

	ReplaceBlocks(
		ctx context.Context,
		professionalID uint,
		blocks []models.AvailabilityBlock,
	) ([]models.AvailabilityBlock, error)

	// -------- Student --------
	GetOrCreateStudent(
		ctx context.Context,
		professionalID uint,
		name string,
		email string,
		phone string,
	) (*models.Student, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (queries) --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
