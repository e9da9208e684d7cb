package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is issued by a doctor against one appointment. Creating a
// prescription also forces the parent appointment to "completed"; both
// writes commit in the same transaction, together with all medicine lines.
type Prescription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Comments      string    `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment            `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      User                   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     User                   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medicines   []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is one medicine line on a prescription: dosage text,
// time-of-day flags and the meal flag pair.
type PrescriptionMedicine struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null;index" json:"prescription_id"`
	MedicineID     uuid.UUID `gorm:"type:uuid;not null" json:"medicine_id"`
	Dosage         string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Morning        bool      `gorm:"not null;default:false" json:"morning"`
	Afternoon      bool      `gorm:"not null;default:false" json:"afternoon"`
	Evening        bool      `gorm:"not null;default:false" json:"evening"`
	Night          bool      `gorm:"not null;default:false" json:"night"`
	BeforeMeal     bool      `gorm:"not null;default:false" json:"before_meal"`
	AfterMeal      bool      `gorm:"not null;default:false" json:"after_meal"`
	Comments       string    `gorm:"type:text" json:"comments,omitempty"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}
