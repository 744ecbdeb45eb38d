package mysql

import (
	"strings"

	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/internal/employee"
)

const selectEmployees = `
SELECT e.id, e.first_name, e.last_name, e.email, e.phone, e.position,
       e.salary, e.department_id, e.hire_date, e.created_at,
       d.name AS department_name
FROM employees e
LEFT JOIN departments d ON e.department_id = d.id`

const orderEmployees = " ORDER BY e.last_name, e.first_name"

type EmployeeRepository struct {
	gw *database.Gateway
}

func NewEmployeeRepository(gw *database.Gateway) employee.Repository {
	return &EmployeeRepository{gw: gw}
}

func scanEmployee(row database.Row) *employeeDatamodel.Employee {
	e := &employeeDatamodel.Employee{
		ID:             row.Int64("id"),
		FirstName:      row.String("first_name"),
		LastName:       row.String("last_name"),
		Email:          row.String("email"),
		Phone:          row.String("phone"),
		Position:       row.String("position"),
		Salary:         row.Float("salary"),
		DepartmentName: row.String("department_name"),
		HireDate:       row.String("hire_date"),
		CreatedAt:      row.Time("created_at"),
	}
	if deptID, ok := row.NullInt64("department_id"); ok {
		e.DepartmentID = &deptID
	}
	return e
}

func scanEmployees(rows []database.Row) []*employeeDatamodel.Employee {
	emps := make([]*employeeDatamodel.Employee, 0, len(rows))
	for _, row := range rows {
		emps = append(emps, scanEmployee(row))
	}
	return emps
}

// nullable maps Go zero values to SQL NULL for optional columns.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func (r *EmployeeRepository) Create(e *employeeDatamodel.Employee) (int64, error) {
	return r.gw.RunInsert(
		`INSERT INTO employees (first_name, last_name, email, phone, position, salary, department_id, hire_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Salary,
		nullableID(e.DepartmentID), nullableString(e.HireDate),
	)
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	rows, err := r.gw.RunQuery(selectEmployees + orderEmployees)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows), nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	rows, err := r.gw.RunQuery(selectEmployees+" WHERE e.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return scanEmployee(rows[0]), nil
}

func (r *EmployeeRepository) Search(term string) ([]*employeeDatamodel.Employee, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := r.gw.RunQuery(
		selectEmployees+`
 WHERE LOWER(e.first_name) LIKE ?
    OR LOWER(e.last_name) LIKE ?
    OR LOWER(e.email) LIKE ?
    OR LOWER(e.position) LIKE ?`+orderEmployees,
		pattern, pattern, pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows), nil
}

func (r *EmployeeRepository) GetByDepartment(deptID int64) ([]*employeeDatamodel.Employee, error) {
	rows, err := r.gw.RunQuery(
		selectEmployees+" WHERE e.department_id = ?"+orderEmployees,
		deptID,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows), nil
}

func (r *EmployeeRepository) Update(e *employeeDatamodel.Employee) (bool, error) {
	affected, err := r.gw.RunUpdate(
		`UPDATE employees
		 SET first_name = ?, last_name = ?, email = ?, phone = ?, position = ?,
		     salary = ?, department_id = ?, hire_date = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Salary,
		nullableID(e.DepartmentID), nullableString(e.HireDate), e.ID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EmployeeRepository) Delete(id int64) (bool, error) {
	affected, err := r.gw.RunUpdate("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetStatistics runs the one aggregate query. COALESCE keeps every field
// zero on an empty table instead of NULL.
func (r *EmployeeRepository) GetStatistics() (*employeeDatamodel.Statistics, error) {
	rows, err := r.gw.RunQuery(`
SELECT COUNT(*) AS total_employees,
       COALESCE(AVG(salary), 0) AS avg_salary,
       COALESCE(MIN(salary), 0) AS min_salary,
       COALESCE(MAX(salary), 0) AS max_salary,
       COALESCE(SUM(salary), 0) AS total_salary
FROM employees`)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &employeeDatamodel.Statistics{}, nil
	}

	row := rows[0]
	return &employeeDatamodel.Statistics{
		TotalEmployees: row.Int64("total_employees"),
		AvgSalary:      row.Float("avg_salary"),
		MinSalary:      row.Float("min_salary"),
		MaxSalary:      row.Float("max_salary"),
		TotalSalary:    row.Float("total_salary"),
	}, nil
}
