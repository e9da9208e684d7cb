package repository

import (
	"context"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicineFilter narrows catalog listings. Search matches name or
// description, case-insensitively.
type MedicineFilter struct {
	Category string
	Search   string
}

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindAll(ctx context.Context, filter *MedicineFilter) ([]entity.Medicine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	FindCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
