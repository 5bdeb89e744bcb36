package auth

import (
	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/core/validation"
)

type RegisterDTO struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

func (dto *RegisterDTO) Validate() *internal.AppError {
	if dto.Role == "" {
		dto.Role = internal.RoleInspector
	}

	v := validation.NewValidator()
	v.Field("full_name", dto.FullName).Required().MaxLength(200)
	v.Field("email", dto.Email).Required().Email().MaxLength(320)
	v.Field("password", dto.Password).Required().MinLength(4).MaxLength(72)
	v.Field("role", dto.Role).OneOf(internal.RoleInspector, internal.RoleManager, internal.RoleAdmin)
	return v.Validate()
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().Email()
	v.Field("password", dto.Password).Required()
	return v.Validate()
}
