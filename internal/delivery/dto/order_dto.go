package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type OrderItemRequest struct {
	MedicineID uuid.UUID       `json:"medicineId" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price" validate:"required"`
}

type CreateOrderRequest struct {
	PatientID     uuid.UUID          `json:"patientId" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal    `json:"totalAmount" validate:"required"`
	Address       string             `json:"address" validate:"required"`
	PaymentMethod string             `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type OrderItemResponse struct {
	MedicineID   uuid.UUID       `json:"medicine_id"`
	MedicineName string          `json:"medicine_name,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	PatientID     uuid.UUID           `json:"patient_id"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        string              `json:"status"`
	Address       string              `json:"address"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
