package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/smart-records/internal"
	"github.com/frahmantamala/smart-records/internal/auth"
	authMysql "github.com/frahmantamala/smart-records/internal/auth/mysql"
	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/internal/department"
	departmentMysql "github.com/frahmantamala/smart-records/internal/department/mysql"
	"github.com/frahmantamala/smart-records/internal/employee"
	employeeMysql "github.com/frahmantamala/smart-records/internal/employee/mysql"
	"github.com/frahmantamala/smart-records/internal/reports"
	"github.com/frahmantamala/smart-records/internal/transport/rest"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config  *internal.Config
	Gateway *database.Gateway
	Router  *chi.Mux
	Logger  *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.Gateway.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Environment)
	lg := logger.L()

	gateway := database.NewGateway(config.Database, lg)

	// Connection failure or a broken schema is fatal at startup.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := gateway.InitializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenDuration)
	authService := auth.NewService(authMysql.NewRepository(gateway), tokenGen, lg)
	departmentService := department.NewService(departmentMysql.NewDepartmentRepository(gateway), lg)
	employeeService := employee.NewService(employeeMysql.NewEmployeeRepository(gateway), lg)
	reportGenerator := reports.NewGenerator(employeeService, departmentService, lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		gateway,
		auth.NewHandler(authService),
		department.NewHandler(departmentService),
		employee.NewHandler(employeeService),
		reports.NewHandler(reportGenerator),
		lg,
	)

	return &Dependencies{
		Config:  config,
		Gateway: gateway,
		Router:  router,
		Logger:  lg,
	}, nil
}
