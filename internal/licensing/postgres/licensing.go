package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(item *licensing.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrDuplicateItemNumber
		}
		return internal.NewInternalError("failed to create licensing item", err)
	}
	return nil
}

func (r *Repository) GetAll() ([]*licensing.Item, error) {
	var items []*licensing.Item
	if err := r.db.Order("item_number ASC").Find(&items).Error; err != nil {
		return nil, internal.NewInternalError("failed to list licensing items", err)
	}
	return items, nil
}

func (r *Repository) GetByID(id int64) (*licensing.Item, error) {
	var item licensing.Item
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrLicensingItemNotFound
		}
		return nil, internal.NewInternalError("failed to load licensing item", err)
	}
	return &item, nil
}

func (r *Repository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&licensing.Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, internal.NewInternalError("failed to check licensing item", err)
	}
	return count > 0, nil
}

func (r *Repository) Update(item *licensing.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrDuplicateItemNumber
		}
		return internal.NewInternalError("failed to update licensing item", err)
	}
	return nil
}

func (r *Repository) Delete(id int64) error {
	if err := r.db.Delete(&licensing.Item{}, id).Error; err != nil {
		return internal.NewInternalError("failed to delete licensing item", err)
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
