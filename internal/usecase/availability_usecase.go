package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"
	"github.com/Swastik2002/TrustMed/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	// ErrScheduleCorrupt means a stored schedule row holds time labels or a
	// slot duration that can no longer be interpreted. This is a data fault,
	// not a client mistake.
	ErrScheduleCorrupt = errors.New("schedule data is corrupt")
)

const msgDoctorUnavailable = "Doctor is not available on this date"

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	log             *logrus.Logger
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
	cache           service.AvailabilityCache
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	cache service.AvailabilityCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
	}
}

// GetAvailability computes the free slots for a doctor on a date. A missing
// schedule is a normal answer (the doctor is not available), not an error.
func (u *availabilityUsecase) GetAvailability(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if cached, ok := u.cache.Get(ctx, doctorID, date); ok {
		return availabilityToResponse(cached), nil
	}

	schedule, err := u.scheduleRepo.FindByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}
	if schedule == nil {
		result := &service.Availability{Available: false, Slots: []string{}}
		u.cache.Set(ctx, doctorID, date, result)
		return availabilityToResponse(result), nil
	}

	startMinute, err := timeslot.ParseClock(schedule.StartTime)
	if err != nil {
		u.log.Errorf("Schedule %d has unparseable start time %q: %+v", schedule.ID, schedule.StartTime, err)
		return nil, ErrScheduleCorrupt
	}
	endMinute, err := timeslot.ParseClock(schedule.EndTime)
	if err != nil {
		u.log.Errorf("Schedule %d has unparseable end time %q: %+v", schedule.ID, schedule.EndTime, err)
		return nil, ErrScheduleCorrupt
	}

	bookedTimes, err := u.appointmentRepo.FindBookedTimes(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find booked times for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots, err := timeslot.GenerateSlots(startMinute, endMinute, schedule.SlotDuration, booked)
	if err != nil {
		u.log.Errorf("Schedule %d has invalid slot duration %d: %+v", schedule.ID, schedule.SlotDuration, err)
		return nil, ErrScheduleCorrupt
	}

	result := &service.Availability{Available: true, Slots: slots}
	u.cache.Set(ctx, doctorID, date, result)
	return availabilityToResponse(result), nil
}

func availabilityToResponse(availability *service.Availability) *dto.AvailabilityResponse {
	response := &dto.AvailabilityResponse{
		Available: availability.Available,
		Slots:     availability.Slots,
	}
	if !availability.Available {
		response.Message = msgDoctorUnavailable
	}
	if response.Slots == nil {
		response.Slots = []string{}
	}
	return response
}
