package repository

import (
	"context"
	"time"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindByDoctorID optionally filters to a single date; pass nil for all.
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error)
	// FindBookedTimes returns the time labels of non-cancelled appointments
	// for the doctor on the date. Cancelled rows stay in the table but free
	// their slot.
	FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
	// ExistsAt reports whether a non-cancelled appointment occupies the
	// (doctor, date, time) triple.
	ExistsAt(ctx context.Context, doctorID uuid.UUID, date time.Time, timeLabel string) (bool, error)
	// UpdateStatus returns the number of rows matched; zero means the
	// appointment does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
