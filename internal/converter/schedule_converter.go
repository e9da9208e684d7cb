package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// ScheduleToResponse converts a schedule entity to its response DTO.
func ScheduleToResponse(schedule *entity.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:           schedule.ID,
		DoctorID:     schedule.DoctorID,
		Date:         schedule.Date.Format("2006-01-02"),
		StartTime:    schedule.StartTime,
		EndTime:      schedule.EndTime,
		SlotDuration: schedule.SlotDuration,
		CreatedAt:    schedule.CreatedAt,
	}
}

// SchedulesToListResponse converts a slice of schedule entities to a list
// response.
func SchedulesToListResponse(schedules []entity.Schedule) dto.ScheduleListResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, ScheduleToResponse(&schedules[i]))
	}
	return dto.ScheduleListResponse{
		Schedules: responses,
		Total:     len(responses),
	}
}
