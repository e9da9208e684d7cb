package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID     uuid.UUID `json:"doctorId" validate:"required"`
	Date         string    `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	StartTime    string    `json:"startTime" validate:"required"` // Format: H:MM AM|PM
	EndTime      string    `json:"endTime" validate:"required"`   // Format: H:MM AM|PM
	SlotDuration int       `json:"slotDuration" validate:"required,gt=0"`
}

// Response DTOs

type ScheduleResponse struct {
	ID           int       `json:"id"`
	DoctorID     uuid.UUID `json:"doctor_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	SlotDuration int       `json:"slot_duration"`
	CreatedAt    time.Time `json:"created_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
