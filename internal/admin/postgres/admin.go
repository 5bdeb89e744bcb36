package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/auth"
)

// Repository implements admin.Repository using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPendingUsers() ([]*auth.User, error) {
	var users []*auth.User
	err := r.db.
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list pending users", err)
	}
	return users, nil
}

func (r *Repository) GetByID(id int64) (*auth.User, error) {
	var user auth.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewInternalError("failed to load user", err)
	}
	return &user, nil
}

func (r *Repository) Approve(id int64) error {
	err := r.db.Model(&auth.User{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
	if err != nil {
		return internal.NewInternalError("failed to approve user", err)
	}
	return nil
}

func (r *Repository) Delete(id int64) error {
	err := r.db.Delete(&auth.User{}, id).Error
	if err != nil {
		return internal.NewInternalError("failed to delete user", err)
	}
	return nil
}
