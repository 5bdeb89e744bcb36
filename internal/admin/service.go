package admin

import (
	"log/slog"

	"github.com/cityhall-dev/licensing-management/internal/auth"
)

// Repository is the slice of the identity store the approval flow needs.
type Repository interface {
	GetPendingUsers() ([]*auth.User, error)
	GetByID(id int64) (*auth.User, error)
	Approve(id int64) error
	Delete(id int64) error
}

// Service handles the admin approval step that gates first use.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// PendingUsers lists identities still waiting for approval.
func (s *Service) PendingUsers() ([]*auth.User, error) {
	return s.repo.GetPendingUsers()
}

// ApproveUser flips the approval flag, unblocking login.
func (s *Service) ApproveUser(id int64) (*auth.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Approve(user.ID); err != nil {
		return nil, err
	}
	user.IsApproved = true

	s.logger.Info("user approved", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// DenyUser permanently removes an identity. A later login for the same
// email fails as unauthorized, same as any unknown account.
func (s *Service) DenyUser(id int64) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(user.ID); err != nil {
		return err
	}

	s.logger.Info("user denied and removed", "user_id", user.ID, "email", user.Email)
	return nil
}
