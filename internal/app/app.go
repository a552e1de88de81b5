package app

import (
	"fmt"
	"time"

	"repogenesis_backend/database"
	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/config"
	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/handlers"
	"repogenesis_backend/internal/logger"
	"repogenesis_backend/internal/middleware"
	"repogenesis_backend/internal/routes"
	"repogenesis_backend/internal/services"
	"repogenesis_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run поднимает приложение: конфиг, логгер, база, миграции, HTTP сервер
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine со всеми зависимостями
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	repos := services.NewRepositories()
	container := initializeServices(cfg, repos)
	appHandlers := handlers.NewAppHandlers(container, validator.New(), cfg)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.SetupRoutes(ginRouter, appHandlers, container.Tokens, repos.Principals)

	return ginRouter
}

func initializeServices(cfg *config.Config, repos *services.Repositories) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host is not configured, outgoing email is logged instead of sent")
		emailProvider = &MockEmailProvider{}
	} else {
		renderer := email.NewTemplateManager()
		if cfg.Email.TemplatesDir != "" {
			if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
				logger.Fatal("Failed to load email templates", "error", err, "dir", cfg.Email.TemplatesDir)
			}
		}
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		}, renderer)
	}

	tokens := auth.NewTokenService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	return services.NewServiceContainer(repos, tokens, emailProvider, cfg.Frontend.BaseURL)
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.CORSMiddleware(cfg.Frontend.BaseURL))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
