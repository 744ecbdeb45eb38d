package mysql

import (
	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/internal/department"
)

type DepartmentRepository struct {
	gw *database.Gateway
}

func NewDepartmentRepository(gw *database.Gateway) department.Repository {
	return &DepartmentRepository{gw: gw}
}

func scanDepartment(row database.Row) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:          row.Int64("id"),
		Name:        row.String("name"),
		Description: row.String("description"),
		CreatedAt:   row.Time("created_at"),
	}
}

func (r *DepartmentRepository) Create(name, description string) (int64, error) {
	return r.gw.RunInsert(
		"INSERT INTO departments (name, description) VALUES (?, ?)",
		name, description,
	)
}

func (r *DepartmentRepository) GetAll() ([]*departmentDatamodel.Department, error) {
	rows, err := r.gw.RunQuery(
		"SELECT id, name, description, created_at FROM departments ORDER BY name",
	)
	if err != nil {
		return nil, err
	}

	depts := make([]*departmentDatamodel.Department, 0, len(rows))
	for _, row := range rows {
		depts = append(depts, scanDepartment(row))
	}
	return depts, nil
}

func (r *DepartmentRepository) GetByID(id int64) (*departmentDatamodel.Department, error) {
	rows, err := r.gw.RunQuery(
		"SELECT id, name, description, created_at FROM departments WHERE id = ?",
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return scanDepartment(rows[0]), nil
}

func (r *DepartmentRepository) Update(id int64, name, description string) (bool, error) {
	affected, err := r.gw.RunUpdate(
		"UPDATE departments SET name = ?, description = ? WHERE id = ?",
		name, description, id,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *DepartmentRepository) Delete(id int64) (bool, error) {
	affected, err := r.gw.RunUpdate("DELETE FROM departments WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DetachEmployees nulls the department reference on every employee assigned
// to the department. The schema's ON DELETE SET NULL is a backstop; the
// decoupling contract is enforced here explicitly.
func (r *DepartmentRepository) DetachEmployees(id int64) (int64, error) {
	return r.gw.RunUpdate(
		"UPDATE employees SET department_id = NULL WHERE department_id = ?",
		id,
	)
}

func (r *DepartmentRepository) HasEmployees(id int64) (bool, error) {
	rows, err := r.gw.RunQuery(
		"SELECT COUNT(*) AS count FROM employees WHERE department_id = ?",
		id,
	)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	return rows[0].Int64("count") > 0, nil
}
