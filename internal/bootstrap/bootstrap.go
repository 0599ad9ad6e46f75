package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yusuf/campushub/docs" // Import generated swagger docs
	appControllers "github.com/yusuf/campushub/internal/app/controllers"
	appMigrations "github.com/yusuf/campushub/internal/app/migrations"
	appReport "github.com/yusuf/campushub/internal/app/report"
	appRepos "github.com/yusuf/campushub/internal/app/repositories"
	appRoutes "github.com/yusuf/campushub/internal/app/routes"
	appServices "github.com/yusuf/campushub/internal/app/services"
	"github.com/yusuf/campushub/internal/config"
	"github.com/yusuf/campushub/internal/db"
	appMiddleware "github.com/yusuf/campushub/internal/middleware"
	"github.com/yusuf/campushub/internal/pkg/artifacts"
	pkgAuth "github.com/yusuf/campushub/internal/pkg/auth"
	"github.com/yusuf/campushub/internal/pkg/helpers"
	"github.com/yusuf/campushub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ReportService       *appServices.ReportService
	CatalogService      *appServices.CatalogService
	DashboardService    *appServices.DashboardService
	AuthService         *appServices.AuthService
	AuthController      *appControllers.AuthController
	ReportController    *appControllers.ReportController
	CatalogController   *appControllers.CatalogController
	DashboardController *appControllers.DashboardController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	ArtifactStore       *artifacts.Store
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.ArtifactStore, err = artifacts.NewStore(cfg.Server.StoragePath, cfg.RetentionWindow(), cfg.SweepInterval())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize artifact store")
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)

	deps.ReportService = appServices.NewReportService(
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		appReport.NewPDFRenderer(),
		appReport.NewExcelRenderer(),
		deps.ArtifactStore,
		lgr,
	)

	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.AcademicYearRepository,
	)

	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, deps.ArtifactStore)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ReportController,
		deps.CatalogController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
