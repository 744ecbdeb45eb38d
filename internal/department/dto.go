package department

import (
	"github.com/frahmantamala/smart-records/internal"
	"github.com/frahmantamala/smart-records/internal/core/validation"
)

// DepartmentInput is the transport shape for create and update requests.
type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d *DepartmentInput) Validate() *internal.AppError {
	return validation.ValidateRequired(d.Name, "Name")
}
