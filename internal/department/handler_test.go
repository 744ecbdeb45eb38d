package department_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/smart-records/internal"
	departmentDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/department"
	"github.com/frahmantamala/smart-records/internal/department"
)

// fakeDepartmentService serves canned answers so handler tests cover only
// the HTTP mapping.
type fakeDepartmentService struct {
	departments map[int64]*departmentDatamodel.Department
	nextID      int64
}

func newFakeDepartmentService() *fakeDepartmentService {
	return &fakeDepartmentService{
		departments: map[int64]*departmentDatamodel.Department{
			1: {ID: 1, Name: "Engineering", Description: "Software development"},
			2: {ID: 2, Name: "Sales", Description: "Business development"},
		},
		nextID: 3,
	}
}

func (f *fakeDepartmentService) Create(input department.DepartmentInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	for _, d := range f.departments {
		if d.Name == input.Name {
			return 0, internal.NewConflictError("Department name already exists", internal.ErrCodeDuplicateName)
		}
	}
	id := f.nextID
	f.nextID++
	f.departments[id] = &departmentDatamodel.Department{ID: id, Name: input.Name, Description: input.Description}
	return id, nil
}

func (f *fakeDepartmentService) GetAll() ([]*departmentDatamodel.Department, error) {
	out := make([]*departmentDatamodel.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentService) GetByID(id int64) (*departmentDatamodel.Department, error) {
	if d, ok := f.departments[id]; ok {
		return d, nil
	}
	return nil, internal.ErrDepartmentNotFound
}

func (f *fakeDepartmentService) Update(id int64, input department.DepartmentInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}
	_, ok := f.departments[id]
	return ok, nil
}

func (f *fakeDepartmentService) Delete(id int64) (bool, error) {
	if _, ok := f.departments[id]; !ok {
		return false, nil
	}
	delete(f.departments, id)
	return true, nil
}

func (f *fakeDepartmentService) HasEmployees(id int64) bool {
	return id == 1
}

var _ = Describe("Department Handler", func() {
	var (
		router  *chi.Mux
		service *fakeDepartmentService
	)

	BeforeEach(func() {
		service = newFakeDepartmentService()
		handler := department.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/departments", handler.Create)
		router.Get("/departments", handler.GetAll)
		router.Get("/departments/{id}", handler.GetByID)
		router.Put("/departments/{id}", handler.Update)
		router.Delete("/departments/{id}", handler.Delete)
		router.Get("/departments/{id}/has-employees", handler.HasEmployees)
	})

	Describe("POST /departments", func() {
		It("should create and return the new id", func() {
			req := httptest.NewRequest(http.MethodPost, "/departments",
				strings.NewReader(`{"name":"Marketing","description":"Brand"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var body map[string]int64
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["id"]).To(Equal(int64(3)))
		})

		It("should return 400 with the error envelope for a missing name", func() {
			req := httptest.NewRequest(http.MethodPost, "/departments",
				strings.NewReader(`{"name":""}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body internal.Response
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Error.Message).To(Equal("Name is required"))
			Expect(body.Error.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should return 409 for a duplicate name", func() {
			req := httptest.NewRequest(http.MethodPost, "/departments",
				strings.NewReader(`{"name":"Engineering"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{not json`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /departments/{id}", func() {
		It("should return the department as JSON", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var dept departmentDatamodel.Department
			Expect(json.NewDecoder(w.Body).Decode(&dept)).To(Succeed())
			Expect(dept.Name).To(Equal("Engineering"))
		})

		It("should return 404 for a missing id", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /departments/{id}", func() {
		It("should return 204 on success", func() {
			req := httptest.NewRequest(http.MethodDelete, "/departments/2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(service.departments).NotTo(HaveKey(int64(2)))
		})

		It("should return 404 when nothing was deleted", func() {
			req := httptest.NewRequest(http.MethodDelete, "/departments/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /departments/{id}/has-employees", func() {
		It("should report the flag", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/1/has-employees", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["has_employees"]).To(BeTrue())
		})
	})
})
