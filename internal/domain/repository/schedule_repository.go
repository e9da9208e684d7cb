package repository

import (
	"context"
	"time"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id int) (*entity.Schedule, error)
	// FindByDoctorAndDate returns nil, nil when the doctor has no schedule
	// for the date; the booking flow assumes at most one row per pair.
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*entity.Schedule, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Schedule, error)
	Delete(ctx context.Context, id int) (int64, error)
}
