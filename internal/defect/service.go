package defect

type Repository interface {
	GetAll() ([]*Defect, error)
	GetByID(id int64) (*Defect, error)
}

// Service exposes the read-only defect catalog used when writing findings.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDefects() ([]*Defect, error) {
	return s.repo.GetAll()
}

func (s *Service) GetDefect(id int64) (*Defect, error) {
	return s.repo.GetByID(id)
}
