package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/business"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(b *business.Business) error {
	if err := r.db.Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrDuplicateLicenseNumber
		}
		return internal.NewInternalError("failed to create business", err)
	}
	return nil
}

func (r *Repository) GetAll() ([]*business.Business, error) {
	var businesses []*business.Business
	err := r.db.
		Preload("LicensingItem").
		Order("created_at DESC").
		Find(&businesses).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list businesses", err)
	}
	return businesses, nil
}

func (r *Repository) GetByID(id int64) (*business.Business, error) {
	var b business.Business
	err := r.db.
		Preload("LicensingItem").
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrBusinessNotFound
		}
		return nil, internal.NewInternalError("failed to load business", err)
	}
	return &b, nil
}

func (r *Repository) Update(b *business.Business) error {
	if err := r.db.Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrDuplicateLicenseNumber
		}
		return internal.NewInternalError("failed to update business", err)
	}
	return nil
}

func (r *Repository) Delete(id int64) error {
	if err := r.db.Delete(&business.Business{}, id).Error; err != nil {
		return internal.NewInternalError("failed to delete business", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
