package licensing

import (
	"log/slog"
)

type Repository interface {
	Create(item *Item) error
	GetAll() ([]*Item, error)
	GetByID(id int64) (*Item, error)
	Update(item *Item) error
	Delete(id int64) error
}

// Service manages the licensing-item catalog.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateItem(dto *CreateItemDTO) (*Item, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	item := dto.ToItem()
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	s.logger.Info("licensing item created", "item_id", item.ID, "item_number", item.ItemNumber)
	return item, nil
}

func (s *Service) ListItems() ([]*Item, error) {
	return s.repo.GetAll()
}

func (s *Service) GetItem(id int64) (*Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) UpdateItem(id int64, dto UpdateItemDTO) (*Item, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dto.Apply(item)
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	s.logger.Info("licensing item updated", "item_id", item.ID)
	return item, nil
}

func (s *Service) DeleteItem(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("licensing item deleted", "item_id", id)
	return nil
}
