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
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrInvalidDuration   = errors.New("slot duration must be positive")
	ErrScheduleExists    = errors.New("doctor already has a schedule on this date")
)

type ScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	Delete(ctx context.Context, id int) error
}

type scheduleUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	scheduleRepo repository.ScheduleRepository
	cache        service.AvailabilityCache
	audit        service.AuditService
}

func NewScheduleUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	scheduleRepo repository.ScheduleRepository,
	cache service.AvailabilityCache,
	audit service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:          log,
		transactor:   transactor,
		scheduleRepo: scheduleRepo,
		cache:        cache,
		audit:        audit,
	}
}

// Create stores a consulting window. Time labels are canonicalized before
// storage so the availability engine never sees a variant spelling.
func (u *scheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	startMinute, err := timeslot.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endMinute, err := timeslot.ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if startMinute >= endMinute {
		return nil, ErrInvalidTimeWindow
	}
	if req.SlotDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	schedule := &entity.Schedule{
		DoctorID:     req.DoctorID,
		Date:         day,
		StartTime:    timeslot.FormatClock(startMinute),
		EndTime:      timeslot.FormatClock(endMinute),
		SlotDuration: req.SlotDuration,
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := u.scheduleRepo.FindByDoctorAndDate(ctx, req.DoctorID, day)
		if err != nil {
			u.log.Warnf("Failed to check existing schedule: %+v", err)
			return err
		}
		if existing != nil {
			return ErrScheduleExists
		}

		if err := u.scheduleRepo.Create(ctx, schedule); err != nil {
			if isDuplicateKeyError(err, "uq_doctor_schedules_doctor_date") {
				return ErrScheduleExists
			}
			u.log.Warnf("Failed to create schedule: %+v", err)
			return err
		}

		return u.audit.Record(ctx, &req.DoctorID, entity.AuditActionScheduleCreate, entity.JSON{
			"schedule_id": schedule.ID,
			"date":        req.Date,
			"start_time":  schedule.StartTime,
			"end_time":    schedule.EndTime,
		})
	})
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, req.DoctorID, req.Date)

	response := converter.ScheduleToResponse(schedule)
	return &response, nil
}

func (u *scheduleUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	response := converter.SchedulesToListResponse(schedules)
	return &response, nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, id int) error {
	var schedule *entity.Schedule
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.scheduleRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find schedule %d: %+v", id, err)
			return err
		}
		if found == nil {
			return ErrScheduleNotFound
		}
		schedule = found

		rows, err := u.scheduleRepo.Delete(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
			return err
		}
		if rows == 0 {
			return ErrScheduleNotFound
		}

		return u.audit.Record(ctx, &schedule.DoctorID, entity.AuditActionScheduleDelete, entity.JSON{
			"schedule_id": id,
		})
	})
	if err != nil {
		return err
	}

	u.cache.Invalidate(ctx, schedule.DoctorID, schedule.Date.Format("2006-01-02"))
	return nil
}
