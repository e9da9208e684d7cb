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

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domainRepo.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	return database.Conn(ctx, r.db).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := database.Conn(ctx, r.db).
		Where("doctor_id = ? AND date = ?", doctorID, date.Format("2006-01-02")).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := database.Conn(ctx, r.db).
		Where("doctor_id = ?", doctorID).
		Order("date ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
