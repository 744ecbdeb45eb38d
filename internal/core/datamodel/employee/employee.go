package employee

import "time"

// Employee holds one employee row. DepartmentID is a weak reference:
// DepartmentName is joined in at read time for display, never stored.
type Employee struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Position       string    `json:"position,omitempty"`
	Salary         float64   `json:"salary"`
	DepartmentID   *int64    `json:"department_id,omitempty"`
	DepartmentName string    `json:"department_name,omitempty"`
	HireDate       string    `json:"hire_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Statistics is the salary aggregate snapshot. Degraded marks the fail-safe
// all-zero shape substituted when the aggregate query itself failed, so
// callers can tell "truly zero employees" from "query failed, defaulted".
type Statistics struct {
	TotalEmployees int64   `json:"total_employees"`
	AvgSalary      float64 `json:"avg_salary"`
	MinSalary      float64 `json:"min_salary"`
	MaxSalary      float64 `json:"max_salary"`
	TotalSalary    float64 `json:"total_salary"`
	Degraded       bool    `json:"degraded,omitempty"`
}
