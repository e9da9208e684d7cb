package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	domainRepo "github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/infrastructure/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return database.Conn(ctx, r.db).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := database.Conn(ctx, r.db).
		Preload("Patient").Preload("Doctor").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := database.Conn(ctx, r.db).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error) {
	query := database.Conn(ctx, r.db).
		Preload("Patient").
		Where("doctor_id = ?", doctorID)

	if date != nil {
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}

	var appointments []entity.Appointment
	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := database.Conn(ctx, r.db).
		Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status <> ?",
			doctorID, date.Format("2006-01-02"), entity.AppointmentStatusCancelled).
		Pluck("time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *appointmentRepository) ExistsAt(ctx context.Context, doctorID uuid.UUID, date time.Time, timeLabel string) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?",
			doctorID, date.Format("2006-01-02"), timeLabel, entity.AppointmentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := database.Conn(ctx, r.db).
		Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
