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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/admin"
	adminpg "github.com/cityhall-dev/licensing-management/internal/admin/postgres"
	"github.com/cityhall-dev/licensing-management/internal/auth"
	authpg "github.com/cityhall-dev/licensing-management/internal/auth/postgres"
	"github.com/cityhall-dev/licensing-management/internal/business"
	businesspg "github.com/cityhall-dev/licensing-management/internal/business/postgres"
	"github.com/cityhall-dev/licensing-management/internal/defect"
	defectpg "github.com/cityhall-dev/licensing-management/internal/defect/postgres"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
	licensingpg "github.com/cityhall-dev/licensing-management/internal/licensing/postgres"
	"github.com/cityhall-dev/licensing-management/internal/pdfgen"
	"github.com/cityhall-dev/licensing-management/internal/report"
	reportpg "github.com/cityhall-dev/licensing-management/internal/report/postgres"
	"github.com/cityhall-dev/licensing-management/internal/riskai"
	"github.com/cityhall-dev/licensing-management/internal/transport/rest"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
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
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB, deps.Handlers, deps.Config, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
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

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	handlers := buildHandlers(config, gormDB, lg)

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

func buildHandlers(cfg *internal.Config, gormDB *gorm.DB, lg *slog.Logger) rest.Handlers {
	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration)

	authService := auth.NewService(authpg.NewRepository(gormDB), tokens, cfg.Security.BCryptCost, lg)
	adminService := admin.NewService(adminpg.NewRepository(gormDB), lg)

	licensingRepo := licensingpg.NewRepository(gormDB)
	licensingService := licensing.NewService(licensingRepo, lg)
	defectService := defect.NewService(defectpg.NewRepository(gormDB))

	businessRepo := businesspg.NewRepository(gormDB)
	businessService := business.NewService(businessRepo, licensingRepo, lg)

	// The summarizer is optional; without an API key the reports flow
	// simply skips the assessment step.
	var summarizer report.RiskSummarizer
	if cfg.RiskAI.Enabled() {
		summarizer = riskai.NewClient(cfg.RiskAI)
	} else {
		lg.Warn("risk assessment disabled, no API key configured")
	}

	reportService := report.NewService(
		reportpg.NewRepository(gormDB),
		businessRepo,
		summarizer,
		pdfgen.NewRenderer(),
		cfg.Reports,
		lg,
	)

	return rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Admin:     admin.NewHandler(adminService),
		Licensing: licensing.NewHandler(licensingService),
		Defect:    defect.NewHandler(defectService),
		Business:  business.NewHandler(businessService),
		Report:    report.NewHandler(reportService),
	}
}

// initDB opens the pgx-backed connection pool used for health checks and
// raw queries.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the existing pool so both share one set of
// connections.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
