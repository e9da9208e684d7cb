package usecase

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/converter"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrMedicineNotFound = errors.New("medicine not found")

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetAll(ctx context.Context, category, search string) (*dto.MedicineListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	GetCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicineUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	medicineRepo repository.MedicineRepository
	audit        service.AuditService
}

func NewMedicineUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	medicineRepo repository.MedicineRepository,
	audit service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		transactor:   transactor,
		medicineRepo: medicineRepo,
		audit:        audit,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     true,
		ImageURL:    req.ImageURL,
	}
	if req.InStock != nil {
		medicine.InStock = *req.InStock
	}

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.medicineRepo.Create(ctx, medicine); err != nil {
			u.log.Warnf("Failed to create medicine: %+v", err)
			return err
		}

		return u.audit.Record(ctx, nil, entity.AuditActionMedicineCreate, entity.JSON{
			"medicine_id": medicine.ID.String(),
			"name":        medicine.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	response := converter.MedicineToResponse(medicine)
	return &response, nil
}

func (u *medicineUsecase) GetAll(ctx context.Context, category, search string) (*dto.MedicineListResponse, error) {
	filter := &repository.MedicineFilter{
		Category: category,
		Search:   search,
	}

	medicines, err := u.medicineRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	response := converter.MedicinesToListResponse(medicines)
	return &response, nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	response := converter.MedicineToResponse(medicine)
	return &response, nil
}

func (u *medicineUsecase) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := u.medicineRepo.FindCategories(ctx)
	if err != nil {
		u.log.Warnf("Failed to list medicine categories: %+v", err)
		return nil, err
	}
	return categories, nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	var medicine *entity.Medicine
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.medicineRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find medicine %s: %+v", id, err)
			return err
		}
		if found == nil {
			return ErrMedicineNotFound
		}
		medicine = found

		if req.Name != "" {
			medicine.Name = req.Name
		}
		if req.Description != nil {
			medicine.Description = *req.Description
		}
		if req.Price != nil {
			medicine.Price = *req.Price
		}
		if req.Category != nil {
			medicine.Category = *req.Category
		}
		if req.InStock != nil {
			medicine.InStock = *req.InStock
		}
		if req.ImageURL != nil {
			medicine.ImageURL = *req.ImageURL
		}

		if err := u.medicineRepo.Update(ctx, medicine); err != nil {
			u.log.Warnf("Failed to update medicine %s: %+v", id, err)
			return err
		}

		return u.audit.Record(ctx, nil, entity.AuditActionMedicineUpdate, entity.JSON{
			"medicine_id": id.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	response := converter.MedicineToResponse(medicine)
	return &response, nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		rows, err := u.medicineRepo.Delete(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to delete medicine %s: %+v", id, err)
			return err
		}
		if rows == 0 {
			return ErrMedicineNotFound
		}

		return u.audit.Record(ctx, nil, entity.AuditActionMedicineDelete, entity.JSON{
			"medicine_id": id.String(),
		})
	})
}
