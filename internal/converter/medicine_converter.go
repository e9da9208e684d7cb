package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// MedicineToResponse converts a medicine entity to its response DTO.
func MedicineToResponse(medicine *entity.Medicine) dto.MedicineResponse {
	return dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Description: medicine.Description,
		Price:       medicine.Price,
		Category:    medicine.Category,
		InStock:     medicine.InStock,
		ImageURL:    medicine.ImageURL,
		CreatedAt:   medicine.CreatedAt,
	}
}

// MedicinesToListResponse converts a slice of medicine entities to a list
// response.
func MedicinesToListResponse(medicines []entity.Medicine) dto.MedicineListResponse {
	responses := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		responses = append(responses, MedicineToResponse(&medicines[i]))
	}
	return dto.MedicineListResponse{
		Medicines: responses,
		Total:     len(responses),
	}
}
