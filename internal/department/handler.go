package department

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	"github.com/frahmantamala/smart-records/internal/transport"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

type ServiceAPI interface {
	Create(input DepartmentInput) (int64, error)
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	Update(id int64, input DepartmentInput) (bool, error)
	Delete(id int64) (bool, error)
	HasEmployees(id int64) bool
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
	var input DepartmentInput
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

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, depts)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	dept, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, dept)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var input DepartmentInput
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
		h.WriteError(w, http.StatusNotFound, "Department not found")
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
		h.WriteError(w, http.StatusNotFound, "Department not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HasEmployees backs the delete-confirmation flow in clients.
func (h *Handler) HasEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"has_employees": h.Service.HasEmployees(id)})
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
