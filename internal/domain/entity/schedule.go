package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a doctor's consulting window for one calendar date. Start and
// end are canonical 12-hour clock labels ("9:00 AM"); the availability
// engine slices the window into SlotDuration-minute slots. At most one
// schedule exists per (doctor, date), enforced by a unique index. A schedule
// is immutable once created; deletion is the only supported mutation.
type Schedule struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_doctor_schedules_doctor_date" json:"doctor_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_doctor_schedules_doctor_date" json:"date"`
	StartTime    string    `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(8);not null" json:"end_time"`
	SlotDuration int       `gorm:"not null;default:30" json:"slot_duration"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "doctor_schedules"
}
