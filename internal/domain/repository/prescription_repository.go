package repository

import (
	"context"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	CreateMedicineLines(ctx context.Context, lines []entity.PrescriptionMedicine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error)
}
