package licensing

import (
	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/core/validation"
)

type CreateItemDTO struct {
	ItemNumber     string `json:"item_number"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	LicensingTrack string `json:"licensing_track"`

	NeedsPoliceApproval                  *bool `json:"needs_police_approval"`
	NeedsFireDeptApproval                *bool `json:"needs_fire_dept_approval"`
	NeedsHealthMinistryApproval          *bool `json:"needs_health_ministry_approval"`
	NeedsEnvironmentalProtectionApproval *bool `json:"needs_environmental_protection_approval"`
	NeedsAgricultureMinistryApproval     *bool `json:"needs_agriculture_ministry_approval"`

	ValidityYears int `json:"validity_years"`
}

func (dto *CreateItemDTO) Validate() *internal.AppError {
	if dto.LicensingTrack == "" {
		dto.LicensingTrack = TrackRegular
	}
	if dto.ValidityYears == 0 {
		dto.ValidityYears = 1
	}

	v := validation.NewValidator()
	v.Field("item_number", dto.ItemNumber).Required().MaxLength(20)
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("licensing_track", dto.LicensingTrack).OneOf(TrackRegular, TrackExpeditedA, TrackExpeditedB, TrackAffidavit)
	return v.Validate()
}

func (dto *CreateItemDTO) ToItem() *Item {
	item := &Item{
		ItemNumber:            dto.ItemNumber,
		Name:                  dto.Name,
		Description:           dto.Description,
		LicensingTrack:        dto.LicensingTrack,
		NeedsFireDeptApproval: true,
		ValidityYears:         dto.ValidityYears,
	}
	if dto.NeedsPoliceApproval != nil {
		item.NeedsPoliceApproval = *dto.NeedsPoliceApproval
	}
	if dto.NeedsFireDeptApproval != nil {
		item.NeedsFireDeptApproval = *dto.NeedsFireDeptApproval
	}
	if dto.NeedsHealthMinistryApproval != nil {
		item.NeedsHealthMinistryApproval = *dto.NeedsHealthMinistryApproval
	}
	if dto.NeedsEnvironmentalProtectionApproval != nil {
		item.NeedsEnvironmentalProtectionApproval = *dto.NeedsEnvironmentalProtectionApproval
	}
	if dto.NeedsAgricultureMinistryApproval != nil {
		item.NeedsAgricultureMinistryApproval = *dto.NeedsAgricultureMinistryApproval
	}
	return item
}

// UpdateItemDTO carries a partial field set; nil pointers are left untouched.
type UpdateItemDTO struct {
	ItemNumber     *string `json:"item_number"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	LicensingTrack *string `json:"licensing_track"`

	NeedsPoliceApproval                  *bool `json:"needs_police_approval"`
	NeedsFireDeptApproval                *bool `json:"needs_fire_dept_approval"`
	NeedsHealthMinistryApproval          *bool `json:"needs_health_ministry_approval"`
	NeedsEnvironmentalProtectionApproval *bool `json:"needs_environmental_protection_approval"`
	NeedsAgricultureMinistryApproval     *bool `json:"needs_agriculture_ministry_approval"`

	ValidityYears *int `json:"validity_years"`
}

func (dto UpdateItemDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.ItemNumber != nil {
		v.Field("item_number", *dto.ItemNumber).Required().MaxLength(20)
	}
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(200)
	}
	if dto.LicensingTrack != nil {
		v.Field("licensing_track", *dto.LicensingTrack).OneOf(TrackRegular, TrackExpeditedA, TrackExpeditedB, TrackAffidavit)
	}
	return v.Validate()
}

// Apply copies the provided fields onto the item.
func (dto UpdateItemDTO) Apply(item *Item) {
	if dto.ItemNumber != nil {
		item.ItemNumber = *dto.ItemNumber
	}
	if dto.Name != nil {
		item.Name = *dto.Name
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.LicensingTrack != nil {
		item.LicensingTrack = *dto.LicensingTrack
	}
	if dto.NeedsPoliceApproval != nil {
		item.NeedsPoliceApproval = *dto.NeedsPoliceApproval
	}
	if dto.NeedsFireDeptApproval != nil {
		item.NeedsFireDeptApproval = *dto.NeedsFireDeptApproval
	}
	if dto.NeedsHealthMinistryApproval != nil {
		item.NeedsHealthMinistryApproval = *dto.NeedsHealthMinistryApproval
	}
	if dto.NeedsEnvironmentalProtectionApproval != nil {
		item.NeedsEnvironmentalProtectionApproval = *dto.NeedsEnvironmentalProtectionApproval
	}
	if dto.NeedsAgricultureMinistryApproval != nil {
		item.NeedsAgricultureMinistryApproval = *dto.NeedsAgricultureMinistryApproval
	}
	if dto.ValidityYears != nil {
		item.ValidityYears = *dto.ValidityYears
	}
}
