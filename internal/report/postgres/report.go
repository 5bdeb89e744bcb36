package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/report"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(rep *report.Report) error {
	if err := r.db.Omit(clause.Associations).Create(rep).Error; err != nil {
		return internal.NewInternalError("failed to create report", err)
	}
	return nil
}

func (r *Repository) GetAll() ([]*report.Report, error) {
	var reports []*report.Report
	err := r.db.
		Preload("Business").
		Preload("Business.LicensingItem").
		Preload("Inspector").
		Order("visit_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list reports", err)
	}
	return reports, nil
}

func (r *Repository) GetByID(id int64) (*report.Report, error) {
	var rep report.Report
	err := r.db.
		Preload("Business").
		Preload("Business.LicensingItem").
		Preload("Inspector").
		Where("id = ?", id).
		First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrReportNotFound
		}
		return nil, internal.NewInternalError("failed to load report", err)
	}
	return &rep, nil
}

func (r *Repository) GetByBusiness(businessID int64) ([]*report.Report, error) {
	var reports []*report.Report
	err := r.db.
		Preload("Inspector").
		Where("business_id = ?", businessID).
		Order("visit_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list business reports", err)
	}
	return reports, nil
}

func (r *Repository) Update(rep *report.Report) error {
	err := r.db.Omit(clause.Associations).Save(rep).Error
	if err != nil {
		return internal.NewInternalError("failed to update report", err)
	}
	return nil
}

func (r *Repository) UpdateAssessment(id int64, assessment []byte) error {
	err := r.db.Model(&report.Report{}).
		Where("id = ?", id).
		Update("ai_risk_assessment", assessment).Error
	if err != nil {
		return internal.NewInternalError("failed to store risk assessment", err)
	}
	return nil
}

func (r *Repository) UpdatePDFPath(id int64, path string) error {
	err := r.db.Model(&report.Report{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
	if err != nil {
		return internal.NewInternalError("failed to store pdf path", err)
	}
	return nil
}
