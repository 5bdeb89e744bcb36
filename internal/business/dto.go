package business

import (
	"time"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/core/validation"
)

type CreateBusinessDTO struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	OwnerName    string `json:"owner_name"`
	OwnerID      string `json:"owner_id"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`

	LicenseNumber  *string    `json:"license_number"`
	Status         string     `json:"status"`
	IssueDate      *time.Time `json:"issue_date"`
	ExpirationDate *time.Time `json:"expiration_date"`

	LicensingItemID int64 `json:"licensing_item_id"`
}

func (dto *CreateBusinessDTO) Validate() *internal.AppError {
	if dto.Status == "" {
		dto.Status = StatusApplicationSubmitted
	}

	v := validation.NewValidator()
	v.Field("business_name", dto.BusinessName).Required().MaxLength(200)
	v.Field("address", dto.Address).Required().MaxLength(300)
	v.Field("owner_name", dto.OwnerName).Required().MaxLength(200)
	v.Field("owner_id", dto.OwnerID).Required().MaxLength(20)
	v.Field("contact_phone", dto.ContactPhone).Required().MaxLength(30)
	if dto.Email != "" {
		v.Field("email", dto.Email).Email()
	}
	v.Field("status", dto.Status).OneOf(ValidStatuses...)
	if dto.LicensingItemID <= 0 {
		return internal.NewValidationFieldError("licensing_item_id", "licensing_item_id is required", internal.ErrCodeValidationFailed)
	}
	return v.Validate()
}

func (dto *CreateBusinessDTO) ToBusiness() *Business {
	return &Business{
		BusinessName:    dto.BusinessName,
		Address:         dto.Address,
		OwnerName:       dto.OwnerName,
		OwnerID:         dto.OwnerID,
		ContactPhone:    dto.ContactPhone,
		Email:           dto.Email,
		LicenseNumber:   dto.LicenseNumber,
		Status:          dto.Status,
		IssueDate:       dto.IssueDate,
		ExpirationDate:  dto.ExpirationDate,
		LicensingItemID: dto.LicensingItemID,
	}
}

// UpdateBusinessDTO carries a partial field set; nil pointers are left untouched.
type UpdateBusinessDTO struct {
	BusinessName *string `json:"business_name"`
	Address      *string `json:"address"`
	OwnerName    *string `json:"owner_name"`
	OwnerID      *string `json:"owner_id"`
	ContactPhone *string `json:"contact_phone"`
	Email        *string `json:"email"`

	LicenseNumber  *string    `json:"license_number"`
	Status         *string    `json:"status"`
	IssueDate      *time.Time `json:"issue_date"`
	ExpirationDate *time.Time `json:"expiration_date"`

	LicensingItemID *int64 `json:"licensing_item_id"`
}

func (dto UpdateBusinessDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.BusinessName != nil {
		v.Field("business_name", *dto.BusinessName).Required().MaxLength(200)
	}
	if dto.Address != nil {
		v.Field("address", *dto.Address).Required().MaxLength(300)
	}
	if dto.OwnerName != nil {
		v.Field("owner_name", *dto.OwnerName).Required().MaxLength(200)
	}
	if dto.Email != nil && *dto.Email != "" {
		v.Field("email", *dto.Email).Email()
	}
	if dto.Status != nil {
		v.Field("status", *dto.Status).OneOf(ValidStatuses...)
	}
	if dto.LicensingItemID != nil && *dto.LicensingItemID <= 0 {
		return internal.NewValidationFieldError("licensing_item_id", "licensing_item_id must be positive", internal.ErrCodeValidationFailed)
	}
	return v.Validate()
}

// Apply copies the provided fields onto the business.
func (dto UpdateBusinessDTO) Apply(b *Business) {
	if dto.BusinessName != nil {
		b.BusinessName = *dto.BusinessName
	}
	if dto.Address != nil {
		b.Address = *dto.Address
	}
	if dto.OwnerName != nil {
		b.OwnerName = *dto.OwnerName
	}
	if dto.OwnerID != nil {
		b.OwnerID = *dto.OwnerID
	}
	if dto.ContactPhone != nil {
		b.ContactPhone = *dto.ContactPhone
	}
	if dto.Email != nil {
		b.Email = *dto.Email
	}
	if dto.LicenseNumber != nil {
		b.LicenseNumber = dto.LicenseNumber
	}
	if dto.Status != nil {
		b.Status = *dto.Status
	}
	if dto.IssueDate != nil {
		b.IssueDate = dto.IssueDate
	}
	if dto.ExpirationDate != nil {
		b.ExpirationDate = dto.ExpirationDate
	}
	if dto.LicensingItemID != nil {
		b.LicensingItemID = *dto.LicensingItemID
	}
}
