package business

import (
	"log/slog"

	"github.com/cityhall-dev/licensing-management/internal"
)

type Repository interface {
	Create(b *Business) error
	GetAll() ([]*Business, error)
	GetByID(id int64) (*Business, error)
	Update(b *Business) error
	Delete(id int64) error
}

// LicensingCatalog is the slice of the licensing-item catalog the business
// domain needs for classification checks.
type LicensingCatalog interface {
	Exists(id int64) (bool, error)
}

// Service manages the business registry.
type Service struct {
	repo    Repository
	catalog LicensingCatalog
	logger  *slog.Logger
}

func NewService(repo Repository, catalog LicensingCatalog, logger *slog.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, logger: logger}
}

func (s *Service) CreateBusiness(dto *CreateBusinessDTO) (*Business, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	if err := s.checkLicensingItem(dto.LicensingItemID); err != nil {
		return nil, err
	}

	b := dto.ToBusiness()
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}

	s.logger.Info("business registered",
		"business_id", b.ID,
		"business_name", b.BusinessName,
		"licensing_item_id", b.LicensingItemID)

	return s.repo.GetByID(b.ID)
}

func (s *Service) ListBusinesses() ([]*Business, error) {
	return s.repo.GetAll()
}

func (s *Service) GetBusiness(id int64) (*Business, error) {
	return s.repo.GetByID(id)
}

func (s *Service) UpdateBusiness(id int64, dto UpdateBusinessDTO) (*Business, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.LicensingItemID != nil && *dto.LicensingItemID != b.LicensingItemID {
		if err := s.checkLicensingItem(*dto.LicensingItemID); err != nil {
			return nil, err
		}
	}

	dto.Apply(b)
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}

	s.logger.Info("business updated", "business_id", b.ID)
	return s.repo.GetByID(b.ID)
}

func (s *Service) DeleteBusiness(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("business deleted", "business_id", id)
	return nil
}

// checkLicensingItem rejects classifications that point at a catalog entry
// that does not exist. The reference is client input, so a miss is a
// validation failure rather than a not-found.
func (s *Service) checkLicensingItem(id int64) error {
	ok, err := s.catalog.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return internal.NewValidationFieldError("licensing_item_id", "licensing item does not exist", internal.ErrCodeLicensingItemNotFound)
	}
	return nil
}
