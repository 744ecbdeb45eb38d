package employee

import (
	"github.com/frahmantamala/smart-records/internal"
	"github.com/frahmantamala/smart-records/internal/core/validation"
)

// EmployeeInput is the transport shape for create and update requests.
// Salary and hire date arrive as strings, matching the form fields the
// record originally comes from; Validate parses and checks them.
type EmployeeInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Salary       string `json:"salary"`
	DepartmentID *int64 `json:"department_id"`
	HireDate     string `json:"hire_date"`
}

// Validate applies every field rule and returns the parsed salary.
func (d *EmployeeInput) Validate() (float64, *internal.AppError) {
	if err := validation.ValidateRequired(d.FirstName, "First name"); err != nil {
		return 0, err
	}
	if err := validation.ValidateRequired(d.LastName, "Last name"); err != nil {
		return 0, err
	}
	if err := validation.ValidateRequired(d.Email, "Email"); err != nil {
		return 0, err
	}
	if err := validation.ValidateEmail(d.Email); err != nil {
		return 0, err
	}
	if err := validation.ValidatePhone(d.Phone); err != nil {
		return 0, err
	}
	salary, err := validation.ValidateSalary(d.Salary)
	if err != nil {
		return 0, err
	}
	if err := validation.ValidateDate(d.HireDate); err != nil {
		return 0, err
	}
	return salary, nil
}
