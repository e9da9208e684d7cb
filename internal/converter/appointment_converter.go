package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// AppointmentToResponse converts an appointment entity to its response DTO.
func AppointmentToResponse(appointment *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		PatientName: appointment.Patient.Name,
		DoctorName:  appointment.Doctor.Name,
		Date:        appointment.Date.Format("2006-01-02"),
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToListResponse converts a slice of appointment entities to a
// list response.
func AppointmentsToListResponse(appointments []entity.Appointment) dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
