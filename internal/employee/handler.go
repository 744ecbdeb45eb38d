package employee

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	employeeDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/smart-records/internal/transport"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

type ServiceAPI interface {
	Create(input EmployeeInput) (int64, error)
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	Search(term string) ([]*employeeDatamodel.Employee, error)
	GetByDepartment(deptID int64) ([]*employeeDatamodel.Employee, error)
	Update(id int64, input EmployeeInput) (bool, error)
	Delete(id int64) (bool, error)
	GetStatistics() *employeeDatamodel.Statistics
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Service.Create(input)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// GetAll lists employees, or filters them when a search term is present.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	var (
		emps []*employeeDatamodel.Employee
		err  error
	)

	if term := r.URL.Query().Get("search"); term != "" {
		emps, err = h.Service.Search(term)
	} else {
		emps, err = h.Service.GetAll()
	}
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emps)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var input EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(id, input)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !updated {
		h.WriteError(w, http.StatusNotFound, "Employee not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	if !deleted {
		h.WriteError(w, http.StatusNotFound, "Employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetByDepartment serves the employee list of one department.
func (h *Handler) GetByDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	emps, err := h.Service.GetByDepartment(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, emps)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.GetStatistics())
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
