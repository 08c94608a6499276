package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *ScheduleGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", serviceID, professionalID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability blocks
// --------------------------------------------------

func (r *ScheduleGormRepository) ListActiveBlocks(
	ctx context.Context,
	professionalID uint,
	dayOfWeek int,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND day_of_week = ? AND active = true",
			professionalID, dayOfWeek,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlocks(
	ctx context.Context,
	professionalID uint,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// ReplaceBlocks troca o expediente inteiro do profissional de uma vez
// (replace-all): deleta tudo e recria. Sem patch parcial por dia.
func (r *ScheduleGormRepository) ReplaceBlocks(
	ctx context.Context,
	professionalID uint,
	blocks []models.AvailabilityBlock,
) ([]models.AvailabilityBlock, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.AvailabilityBlock{}).Error; err != nil {
			return err
		}

		if len(blocks) == 0 {
			return nil
		}

		return tx.Create(&blocks).Error
	})
	if err != nil {
		return nil, err
	}

	return r.ListBlocks(ctx, professionalID)
}

// --------------------------------------------------
// Student
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateStudent(
	ctx context.Context,
	professionalID uint,
	name string,
	email string,
	phone string,
) (*models.Student, error) {

	var student models.Student
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND email = ?", professionalID, email).
		First(&student).Error

	if err == nil {
		return &student, nil
	}

	student = models.Student{
		ProfessionalID: professionalID,
		Name:           name,
		Email:          email,
		Phone:          phone,
	}

	if err := r.db.WithContext(ctx).Create(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *ScheduleGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) error {

	// Checagem sem lock: FOR UPDATE não é aceito em consulta agregada
	// (SQLSTATE 0A000) e a exclusão mútua real é a constraint
	// appointments_no_overlap no insert.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND status <> 'canceled' AND start_time < ? AND end_time > ?",
			professionalID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// a exclusion constraint é quem decide corridas de verdade
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("time_conflict")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointmentForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Appointment (queries)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status <> 'canceled' AND start_time >= ? AND start_time < ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Service").
		Where(
			"professional_id = ? AND start_time >= ? AND start_time < ?",
			professionalID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
