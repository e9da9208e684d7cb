package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// PrescriptionToResponse converts a prescription entity with its medicine
// lines to the response DTO.
func PrescriptionToResponse(prescription *entity.Prescription) dto.PrescriptionResponse {
	medicines := make([]dto.PrescriptionMedicineResponse, 0, len(prescription.Medicines))
	for _, line := range prescription.Medicines {
		medicines = append(medicines, dto.PrescriptionMedicineResponse{
			MedicineID:   line.MedicineID,
			MedicineName: line.Medicine.Name,
			Dosage:       line.Dosage,
			Morning:      line.Morning,
			Afternoon:    line.Afternoon,
			Evening:      line.Evening,
			Night:        line.Night,
			BeforeMeal:   line.BeforeMeal,
			AfterMeal:    line.AfterMeal,
			Comments:     line.Comments,
		})
	}

	return dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		DoctorID:      prescription.DoctorID,
		PatientID:     prescription.PatientID,
		DoctorName:    prescription.Doctor.Name,
		PatientName:   prescription.Patient.Name,
		Diagnosis:     prescription.Diagnosis,
		Comments:      prescription.Comments,
		Medicines:     medicines,
		CreatedAt:     prescription.CreatedAt,
	}
}

// PrescriptionsToListResponse converts a slice of prescription entities to a
// list response.
func PrescriptionsToListResponse(prescriptions []entity.Prescription) dto.PrescriptionListResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, PrescriptionToResponse(&prescriptions[i]))
	}
	return dto.PrescriptionListResponse{
		Prescriptions: responses,
		Total:         len(responses),
	}
}
