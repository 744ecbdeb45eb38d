package department

import (
	"log/slog"

	"github.com/frahmantamala/smart-records/internal"
	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	"github.com/frahmantamala/smart-records/internal/database"
)

type Repository interface {
	Create(name, description string) (int64, error)
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	Update(id int64, name, description string) (bool, error)
	Delete(id int64) (bool, error)
	DetachEmployees(id int64) (int64, error)
	HasEmployees(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(input DepartmentInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(input.Name, input.Description)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return 0, internal.NewConflictError("Department name already exists", internal.ErrCodeDuplicateName)
		}
		s.logger.Error("failed to create department", "name", input.Name, "error", err)
		return 0, err
	}

	s.logger.Info("department created", "id", id, "name", input.Name)
	return id, nil
}

// GetAll returns every department ordered by name.
func (s *Service) GetAll() ([]*departmentDatamodel.Department, error) {
	depts, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, err
	}
	return depts, nil
}

func (s *Service) GetByID(id int64) (*departmentDatamodel.Department, error) {
	dept, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get department", "id", id, "error", err)
		return nil, err
	}
	if dept == nil {
		return nil, internal.ErrDepartmentNotFound
	}
	return dept, nil
}

func (s *Service) Update(id int64, input DepartmentInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(id, input.Name, input.Description)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return false, internal.NewConflictError("Department name already exists", internal.ErrCodeDuplicateName)
		}
		s.logger.Error("failed to update department", "id", id, "error", err)
		return false, err
	}
	return updated, nil
}

// Delete removes a department after detaching its employees. Employees are
// never deleted as a side effect: their department reference becomes absent.
func (s *Service) Delete(id int64) (bool, error) {
	detached, err := s.repo.DetachEmployees(id)
	if err != nil {
		s.logger.Error("failed to detach employees", "department_id", id, "error", err)
		return false, err
	}
	if detached > 0 {
		s.logger.Info("detached employees from department", "department_id", id, "count", detached)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete department", "id", id, "error", err)
		return false, err
	}
	return deleted, nil
}

// HasEmployees reports whether any employee references the department.
// Fail-safe: a lookup failure answers false so the caller's delete
// confirmation flow never blocks on it.
func (s *Service) HasEmployees(id int64) bool {
	has, err := s.repo.HasEmployees(id)
	if err != nil {
		s.logger.Warn("has-employees check failed, defaulting to false", "department_id", id, "error", err)
		return false
	}
	return has
}
