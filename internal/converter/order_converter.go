package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// OrderToResponse converts an order entity with its item lines to the
// response DTO.
func OrderToResponse(order *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			MedicineID:   item.MedicineID,
			MedicineName: item.Medicine.Name,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	return dto.OrderResponse{
		ID:            order.ID,
		PatientID:     order.PatientID,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}

// OrdersToListResponse converts a slice of order entities to a list response.
func OrdersToListResponse(orders []entity.Order) dto.OrderListResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, OrderToResponse(&orders[i]))
	}
	return dto.OrderListResponse{
		Orders: responses,
		Total:  len(responses),
	}
}
