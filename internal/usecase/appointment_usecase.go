package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Swastik2002/TrustMed/internal/converter"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"
	"github.com/Swastik2002/TrustMed/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoSchedule          = errors.New("doctor has no schedule on this date")
	ErrSlotTaken           = errors.New("this time slot is not available")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use H:MM AM or H:MM PM")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid status value")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	transactor      repository.Transactor
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.ScheduleRepository
	cache           service.AvailabilityCache
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	cache service.AvailabilityCache,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		transactor:      transactor,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		cache:           cache,
		audit:           audit,
	}
}

// Book reserves a slot for a patient. The existence check and the insert run
// in one transaction, and the partial unique index on (doctor, date, time)
// catches the race two concurrent bookings can still produce; the loser maps
// to ErrSlotTaken exactly as if it had lost the in-transaction check.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	minute, err := timeslot.ParseClock(req.Time)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	// Canonical label, so "09:30 am" and "9:30 AM" occupy the same slot.
	timeLabel := timeslot.FormatClock(minute)

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      day,
		Time:      timeLabel,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusScheduled,
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		schedule, err := u.scheduleRepo.FindByDoctorAndDate(ctx, req.DoctorID, day)
		if err != nil {
			u.log.Warnf("Failed to find schedule for doctor %s on %s: %+v", req.DoctorID, req.Date, err)
			return err
		}
		if schedule == nil {
			return ErrNoSchedule
		}

		startMinute, err := timeslot.ParseClock(schedule.StartTime)
		if err != nil {
			u.log.Errorf("Schedule %d has unparseable start time %q: %+v", schedule.ID, schedule.StartTime, err)
			return ErrScheduleCorrupt
		}
		endMinute, err := timeslot.ParseClock(schedule.EndTime)
		if err != nil {
			u.log.Errorf("Schedule %d has unparseable end time %q: %+v", schedule.ID, schedule.EndTime, err)
			return ErrScheduleCorrupt
		}
		if schedule.SlotDuration <= 0 {
			u.log.Errorf("Schedule %d has invalid slot duration %d", schedule.ID, schedule.SlotDuration)
			return ErrScheduleCorrupt
		}

		// The requested time must sit on the schedule's slot grid.
		if minute < startMinute || minute >= endMinute || (minute-startMinute)%schedule.SlotDuration != 0 {
			return ErrSlotTaken
		}

		taken, err := u.appointmentRepo.ExistsAt(ctx, req.DoctorID, day, timeLabel)
		if err != nil {
			u.log.Warnf("Failed to check slot occupancy: %+v", err)
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
			if isDuplicateKeyError(err, "uq_appointments_doctor_slot") {
				return ErrSlotTaken
			}
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		return u.audit.Record(ctx, &req.PatientID, entity.AuditActionAppointmentBook, entity.JSON{
			"appointment_id": appointment.ID.String(),
			"doctor_id":      req.DoctorID.String(),
			"date":           req.Date,
			"time":           timeLabel,
		})
	})
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, req.DoctorID, req.Date)

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	response := converter.AppointmentsToListResponse(appointments)
	return &response, nil
}

func (u *appointmentUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	var day *time.Time
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		day = &parsed
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	response := converter.AppointmentsToListResponse(appointments)
	return &response, nil
}

// UpdateStatus sets the appointment status to any allowed value. The check
// is membership only; setting the current value again succeeds and is a
// no-op, so retries are harmless.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !entity.ValidAppointmentStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var appointment *entity.Appointment
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.appointmentRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", id, err)
			return err
		}
		if found == nil {
			return ErrAppointmentNotFound
		}
		appointment = found

		rows, err := u.appointmentRepo.UpdateStatus(ctx, id, newStatus)
		if err != nil {
			u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
			return err
		}
		if rows == 0 {
			return ErrAppointmentNotFound
		}
		appointment.Status = newStatus

		return u.audit.Record(ctx, &appointment.PatientID, entity.AuditActionAppointmentStatus, entity.JSON{
			"appointment_id": id.String(),
			"status":         status,
		})
	})
	if err != nil {
		return nil, err
	}

	// A cancelled appointment frees its slot, so cached availability for
	// that day is stale either way.
	u.cache.Invalidate(ctx, appointment.DoctorID, appointment.Date.Format("2006-01-02"))

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

// Cancel is a soft delete: the row stays with status cancelled and the slot
// becomes bookable again.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	var appointment *entity.Appointment
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.appointmentRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", id, err)
			return err
		}
		if found == nil {
			return ErrAppointmentNotFound
		}
		appointment = found

		rows, err := u.appointmentRepo.UpdateStatus(ctx, id, entity.AppointmentStatusCancelled)
		if err != nil {
			u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
			return err
		}
		if rows == 0 {
			return ErrAppointmentNotFound
		}

		return u.audit.Record(ctx, &appointment.PatientID, entity.AuditActionAppointmentCancel, entity.JSON{
			"appointment_id": id.String(),
		})
	})
	if err != nil {
		return err
	}

	u.cache.Invalidate(ctx, appointment.DoctorID, appointment.Date.Format("2006-01-02"))
	return nil
}
