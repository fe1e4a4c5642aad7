package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/controllers"
	appMigrations "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/migrations"
	appModels "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	appRepos "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/repositories"
	appRoutes "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/routes"
	appServices "github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/services"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/config"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/db"
	appMiddleware "github.com/ekanshs25160-bit/Achievement-Management-System/internal/middleware"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/filestorage"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/logger"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/observability"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/session"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/seed"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database              *db.PostgresDB
	Repos                 *appRepos.Repositories
	Services              *appServices.Services
	FileStorage           *filestorage.LocalStorage
	PageController        *appControllers.PageController
	AuthController        *appControllers.AuthController
	DashboardController   *appControllers.DashboardController
	AchievementController *appControllers.AchievementController
	HealthController      *appControllers.HealthController
	SessionStore          sessions.Store
	FlushSentry           func()
	Logger                zerolog.Logger
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

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the demo teacher.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		teachers := appRepos.NewAccountRepository(database, appModels.RoleTeacher)
		demo := seed.DemoTeacher{
			ID:       cfg.Seed.TeacherID,
			Name:     cfg.Seed.TeacherName,
			Email:    cfg.Seed.TeacherEmail,
			Password: cfg.Seed.TeacherPassword,
			Dept:     cfg.Seed.TeacherDept,
		}
		if err := seed.CreateDefaultData(ctx, teachers, demo, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}

	flush, err := observability.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment, cfg.Sentry.Release)
	if err != nil {
		lgr.Warn().Err(err).Msg("Sentry initialization failed, continuing without error reporting")
	}
	deps.FlushSentry = flush

	secret, err := session.ResolveSecret(cfg.Session.Secret, lgr)
	if err != nil {
		return nil, err
	}
	deps.SessionStore = session.NewStore(secret, session.Options{
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	})

	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.UploadPath(), config.UploadsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, lgr)

	deps.PageController = appControllers.NewPageController()
	deps.AuthController = appControllers.NewAuthController(deps.Services.AccountService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.AchievementService)
	deps.AchievementController = appControllers.NewAchievementController(deps.Services.AchievementService, lgr)
	deps.HealthController = appControllers.NewHealthController(database, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	router.SetHTMLTemplate(tmpl)

	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Metrics())
	router.Use(sessions.Sessions(cfg.Session.CookieName, deps.SessionStore))
	router.Use(appMiddleware.LoadSession())

	router.Static("/static", cfg.Server.StaticPath)
	lgr.Info().Str("path", cfg.Server.StaticPath).Msg("Static file serving configured")

	appRoutes.SetupRouter(router,
		deps.PageController,
		deps.AuthController,
		deps.DashboardController,
		deps.AchievementController,
		deps.HealthController,
	)

	return router, nil
}
