package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PrescriptionMedicineRequest struct {
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Dosage     string    `json:"dosage"`
	Morning    bool      `json:"morning"`
	Afternoon  bool      `json:"afternoon"`
	Evening    bool      `json:"evening"`
	Night      bool      `json:"night"`
	BeforeMeal bool      `json:"beforeMeal"`
	AfterMeal  bool      `json:"afterMeal"`
	Comments   string    `json:"comments"`
}

type CreatePrescriptionRequest struct {
	AppointmentID uuid.UUID                     `json:"appointmentId" validate:"required"`
	DoctorID      uuid.UUID                     `json:"doctorId" validate:"required"`
	PatientID     uuid.UUID                     `json:"patientId" validate:"required"`
	Diagnosis     string                        `json:"diagnosis"`
	Comments      string                        `json:"comments"`
	Medicines     []PrescriptionMedicineRequest `json:"medicines" validate:"required,min=1,dive"`
}

// Response DTOs

type PrescriptionMedicineResponse struct {
	MedicineID   uuid.UUID `json:"medicine_id"`
	MedicineName string    `json:"medicine_name,omitempty"`
	Dosage       string    `json:"dosage,omitempty"`
	Morning      bool      `json:"morning"`
	Afternoon    bool      `json:"afternoon"`
	Evening      bool      `json:"evening"`
	Night        bool      `json:"night"`
	BeforeMeal   bool      `json:"before_meal"`
	AfterMeal    bool      `json:"after_meal"`
	Comments     string    `json:"comments,omitempty"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID                      `json:"id"`
	AppointmentID uuid.UUID                      `json:"appointment_id"`
	DoctorID      uuid.UUID                      `json:"doctor_id"`
	PatientID     uuid.UUID                      `json:"patient_id"`
	DoctorName    string                         `json:"doctor_name,omitempty"`
	PatientName   string                         `json:"patient_name,omitempty"`
	Diagnosis     string                         `json:"diagnosis,omitempty"`
	Comments      string                         `json:"comments,omitempty"`
	Medicines     []PrescriptionMedicineResponse `json:"medicines,omitempty"`
	CreatedAt     time.Time                      `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
