package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/defect"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*defect.Defect, error) {
	var defects []*defect.Defect
	if err := r.db.Order("id ASC").Find(&defects).Error; err != nil {
		return nil, internal.NewInternalError("failed to list defects", err)
	}
	return defects, nil
}

func (r *Repository) GetByID(id int64) (*defect.Defect, error) {
	var d defect.Defect
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDefectNotFound
		}
		return nil, internal.NewInternalError("failed to load defect", err)
	}
	return &d, nil
}
