package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/smart-records/internal/auth"
	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/internal/department"
	"github.com/frahmantamala/smart-records/internal/employee"
	"github.com/frahmantamala/smart-records/internal/reports"
	"github.com/frahmantamala/smart-records/internal/transport/middleware"
	"github.com/frahmantamala/smart-records/internal/transport/swagger"
)

// RegisterAllRoutes mounts the full API. Record and report routes sit behind
// the auth middleware: the presentation layer goes through the
// Authentication Service gate before it reaches the record models.
func RegisterAllRoutes(
	router *chi.Mux,
	gateway *database.Gateway,
	authHandler *auth.Handler,
	departmentHandler *department.Handler,
	employeeHandler *employee.Handler,
	reportHandler *reports.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(gateway)

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", authHandler.Me)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Post("/", departmentHandler.Create)
				dr.Get("/", departmentHandler.GetAll)
				dr.Get("/{id}", departmentHandler.GetByID)
				dr.Put("/{id}", departmentHandler.Update)
				dr.Delete("/{id}", departmentHandler.Delete)
				dr.Get("/{id}/has-employees", departmentHandler.HasEmployees)
				dr.Get("/{id}/employees", employeeHandler.GetByDepartment)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.Create)
				er.Get("/", employeeHandler.GetAll)
				er.Get("/statistics", employeeHandler.GetStatistics)
				er.Get("/{id}", employeeHandler.GetByID)
				er.Put("/{id}", employeeHandler.Update)
				er.Delete("/{id}", employeeHandler.Delete)
			})

			pr.Get("/reports", reportHandler.Get)
		})
	})
}
