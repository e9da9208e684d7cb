package usecase

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/converter"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoMedicines          = errors.New("prescription must contain at least one medicine")
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.PrescriptionListResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	transactor       repository.Transactor
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	audit            service.AuditService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		transactor:       transactor,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		audit:            audit,
	}
}

// Create writes the prescription, all its medicine lines and the parent
// appointment's transition to completed in one transaction. If any write
// fails the whole prescription vanishes; a header without lines is never
// observable.
func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if len(req.Medicines) == 0 {
		return nil, ErrNoMedicines
	}

	prescription := &entity.Prescription{
		AppointmentID: req.AppointmentID,
		DoctorID:      req.DoctorID,
		PatientID:     req.PatientID,
		Diagnosis:     req.Diagnosis,
		Comments:      req.Comments,
	}

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
			u.log.Warnf("Failed to create prescription: %+v", err)
			return err
		}

		lines := make([]entity.PrescriptionMedicine, 0, len(req.Medicines))
		for _, m := range req.Medicines {
			lines = append(lines, entity.PrescriptionMedicine{
				PrescriptionID: prescription.ID,
				MedicineID:     m.MedicineID,
				Dosage:         m.Dosage,
				Morning:        m.Morning,
				Afternoon:      m.Afternoon,
				Evening:        m.Evening,
				Night:          m.Night,
				BeforeMeal:     m.BeforeMeal,
				AfterMeal:      m.AfterMeal,
				Comments:       m.Comments,
			})
		}

		if err := u.prescriptionRepo.CreateMedicineLines(ctx, lines); err != nil {
			u.log.Warnf("Failed to create prescription medicine lines: %+v", err)
			return err
		}
		prescription.Medicines = lines

		rows, err := u.appointmentRepo.UpdateStatus(ctx, req.AppointmentID, entity.AppointmentStatusCompleted)
		if err != nil {
			u.log.Warnf("Failed to complete appointment %s: %+v", req.AppointmentID, err)
			return err
		}
		if rows == 0 {
			return ErrAppointmentNotFound
		}

		return u.audit.Record(ctx, &req.DoctorID, entity.AuditActionPrescriptionCreate, entity.JSON{
			"prescription_id": prescription.ID.String(),
			"appointment_id":  req.AppointmentID.String(),
			"patient_id":      req.PatientID.String(),
			"medicines":       len(lines),
		})
	})
	if err != nil {
		return nil, err
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func (u *prescriptionUsecase) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find prescription for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func (u *prescriptionUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	response := converter.PrescriptionsToListResponse(prescriptions)
	return &response, nil
}

func (u *prescriptionUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %s: %+v", patientID, err)
		return nil, err
	}

	response := converter.PrescriptionsToListResponse(prescriptions)
	return &response, nil
}
