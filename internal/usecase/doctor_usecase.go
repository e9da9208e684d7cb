package usecase

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/converter"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	List(ctx context.Context) (*dto.UserListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewDoctorUsecase(log *logrus.Logger, userRepo repository.UserRepository) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		userRepo: userRepo,
	}
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.UserListResponse, error) {
	doctors, err := u.userRepo.FindByRole(ctx, entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	response := converter.UsersToListResponse(doctors)
	return &response, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if user == nil || !user.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	response := converter.UserToResponse(user)
	return &response, nil
}
