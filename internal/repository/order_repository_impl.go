package repository

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	domainRepo "github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/infrastructure/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return database.Conn(ctx, r.db).Omit("Items").Create(order).Error
}

func (r *orderRepository) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	return database.Conn(ctx, r.db).Create(&items).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := database.Conn(ctx, r.db).
		Preload("Patient").
		Preload("Items").Preload("Items.Medicine").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := database.Conn(ctx, r.db).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	result := database.Conn(ctx, r.db).
		Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
