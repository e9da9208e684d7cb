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

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return database.Conn(ctx, r.db).Create(medicine).Error
}

func (r *medicineRepository) FindAll(ctx context.Context, filter *domainRepo.MedicineFilter) ([]entity.Medicine, error) {
	query := database.Conn(ctx, r.db).Model(&entity.Medicine{})

	if filter != nil {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
		}
	}

	var medicines []entity.Medicine
	err := query.Order("name ASC").Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := database.Conn(ctx, r.db).
		Model(&entity.Medicine{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return database.Conn(ctx, r.db).Save(medicine).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Medicine{})
	return result.RowsAffected, result.Error
}
