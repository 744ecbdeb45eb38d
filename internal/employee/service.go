package employee

import (
	"log/slog"

	"github.com/frahmantamala/smart-records/internal"
	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/smart-records/internal/database"
)

type Repository interface {
	Create(e *employeeDatamodel.Employee) (int64, error)
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	Search(term string) ([]*employeeDatamodel.Employee, error)
	GetByDepartment(deptID int64) ([]*employeeDatamodel.Employee, error)
	Update(e *employeeDatamodel.Employee) (bool, error)
	Delete(id int64) (bool, error)
	GetStatistics() (*employeeDatamodel.Statistics, error)
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

func (s *Service) Create(input EmployeeInput) (int64, error) {
	salary, verr := input.Validate()
	if verr != nil {
		return 0, verr
	}

	id, err := s.repo.Create(&employeeDatamodel.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		Salary:       salary,
		DepartmentID: input.DepartmentID,
		HireDate:     input.HireDate,
	})
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return 0, internal.NewConflictError("Email already exists", internal.ErrCodeDuplicateEmail)
		}
		s.logger.Error("failed to create employee", "email", input.Email, "error", err)
		return 0, err
	}

	s.logger.Info("employee created", "id", id, "email", input.Email)
	return id, nil
}

// GetAll returns every employee ordered by last name then first name, each
// row enriched with the joined department name.
func (s *Service) GetAll() ([]*employeeDatamodel.Employee, error) {
	emps, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return emps, nil
}

func (s *Service) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "id", id, "error", err)
		return nil, err
	}
	if emp == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

// Search matches the term case-insensitively against first name, last name,
// email and position.
func (s *Service) Search(term string) ([]*employeeDatamodel.Employee, error) {
	emps, err := s.repo.Search(term)
	if err != nil {
		s.logger.Error("employee search failed", "term", term, "error", err)
		return nil, err
	}
	return emps, nil
}

func (s *Service) GetByDepartment(deptID int64) ([]*employeeDatamodel.Employee, error) {
	emps, err := s.repo.GetByDepartment(deptID)
	if err != nil {
		s.logger.Error("failed to list employees by department", "department_id", deptID, "error", err)
		return nil, err
	}
	return emps, nil
}

func (s *Service) Update(id int64, input EmployeeInput) (bool, error) {
	salary, verr := input.Validate()
	if verr != nil {
		return false, verr
	}

	updated, err := s.repo.Update(&employeeDatamodel.Employee{
		ID:           id,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		Salary:       salary,
		DepartmentID: input.DepartmentID,
		HireDate:     input.HireDate,
	})
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return false, internal.NewConflictError("Email already exists", internal.ErrCodeDuplicateEmail)
		}
		s.logger.Error("failed to update employee", "id", id, "error", err)
		return false, err
	}
	return updated, nil
}

func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete employee", "id", id, "error", err)
		return false, err
	}
	return deleted, nil
}

// GetStatistics returns the salary aggregate snapshot. Fail-safe: any
// persistence failure yields the all-zero shape with the Degraded flag set
// instead of propagating, because this feeds reporting only.
func (s *Service) GetStatistics() *employeeDatamodel.Statistics {
	stats, err := s.repo.GetStatistics()
	if err != nil {
		s.logger.Warn("statistics query failed, defaulting to zeros", "error", err)
		return &employeeDatamodel.Statistics{Degraded: true}
	}
	return stats
}
