package repository

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	domainRepo "github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/infrastructure/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return database.Conn(ctx, r.db).Omit("Medicines").Create(prescription).Error
}

func (r *prescriptionRepository) CreateMedicineLines(ctx context.Context, lines []entity.PrescriptionMedicine) error {
	return database.Conn(ctx, r.db).Create(&lines).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := database.Conn(ctx, r.db).
		Preload("Doctor").Preload("Patient").Preload("Appointment").
		Preload("Medicines").Preload("Medicines.Medicine").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := database.Conn(ctx, r.db).
		Preload("Medicines").Preload("Medicines.Medicine").
		Where("appointment_id = ?", appointmentID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := database.Conn(ctx, r.db).
		Preload("Patient").Preload("Appointment").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := database.Conn(ctx, r.db).
		Preload("Doctor").Preload("Appointment").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
