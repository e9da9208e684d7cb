package repository

import (
	"context"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItems(ctx context.Context, items []entity.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Order, error)
	// UpdateStatus returns the number of rows matched; zero means the order
	// does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error)
}
