package report

import (
	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/core/validation"
)

type CreateReportDTO struct {
	BusinessID int64  `json:"business_id"`
	Findings   string `json:"findings"`
	Status     string `json:"status"`
}

func (dto *CreateReportDTO) Validate() *internal.AppError {
	if dto.Status == "" {
		dto.Status = StatusFail
	}

	v := validation.NewValidator()
	v.Field("findings", dto.Findings).Required()
	v.Field("status", dto.Status).OneOf(ValidStatuses...)
	if dto.BusinessID <= 0 {
		return internal.NewValidationFieldError("business_id", "business_id is required", internal.ErrCodeValidationFailed)
	}
	return v.Validate()
}

// UpdateReportDTO carries a partial field set; nil pointers are left untouched.
type UpdateReportDTO struct {
	Findings *string `json:"findings"`
	Status   *string `json:"status"`
}

func (dto UpdateReportDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Findings != nil {
		v.Field("findings", *dto.Findings).Required()
	}
	if dto.Status != nil {
		v.Field("status", *dto.Status).OneOf(ValidStatuses...)
	}
	return v.Validate()
}
