package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

func roleName(roleID int) string {
	switch roleID {
	case entity.RoleIDAdmin:
		return entity.RoleAdmin
	case entity.RoleIDDoctor:
		return entity.RoleDoctor
	case entity.RoleIDPatient:
		return entity.RolePatient
	}
	return ""
}

// UserToResponse converts a user entity to its response DTO.
func UserToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           roleName(user.RoleID),
		Specialization: user.Specialization,
		CreatedAt:      user.CreatedAt,
	}
}

// UsersToListResponse converts a slice of user entities to a list response.
func UsersToListResponse(users []entity.User) dto.UserListResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}
}
