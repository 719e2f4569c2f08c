package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/application/serviceimpl"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/ports"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/infrastructure/postgres"
	redispkg "github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/infrastructure/redis"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/infrastructure/storage"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/interfaces/api/handlers"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/config"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, nil when cache is disabled
	Storage        ports.StoragePort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository    repositories.UserRepository
	ProfileRepository repositories.ProfileRepository
	TaskRepository    repositories.TaskRepository
	LogoRepository    repositories.LogoRepository

	// Services
	UserService      services.UserService
	ProfileService   services.ProfileService
	TaskService      services.TaskService
	AnalyticsService services.AnalyticsService
	LogoService      services.LogoService

	// Background maintenance
	LogoCleanupService *serviceimpl.LogoCleanupService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}
	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize S3 storage for logo blobs
	s3Config := storage.S3StorageConfig{
		Endpoint:  c.Config.Storage.S3.Endpoint,
		AccessKey: c.Config.Storage.S3.AccessKey,
		SecretKey: c.Config.Storage.S3.SecretKey,
		Bucket:    c.Config.Storage.S3.Bucket,
		UseSSL:    c.Config.Storage.S3.UseSSL,
		Region:    c.Config.Storage.S3.Region,
		PublicURL: c.Config.Storage.S3.PublicURL,
	}
	s3Storage, err := storage.NewS3Storage(s3Config)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 storage: %w", err)
	}
	c.Storage = s3Storage
	logger.Info("S3 Storage initialized",
		"endpoint", c.Config.Storage.S3.Endpoint,
		"bucket", c.Config.Storage.S3.Bucket,
	)

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.ProfileRepository = postgres.NewProfileRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.LogoRepository = postgres.NewLogoRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.ProfileService = serviceimpl.NewProfileService(c.ProfileRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.ProfileRepository)
	c.AnalyticsService = serviceimpl.NewAnalyticsService(c.TaskRepository, c.ProfileRepository)
	c.LogoService = serviceimpl.NewLogoService(
		c.LogoRepository,
		c.ProfileRepository,
		c.Storage,
		c.RedisClient,
		c.Config.Storage,
	)

	if c.RedisClient != nil {
		logger.Info("Logo service initialized with Redis cache")
	} else {
		logger.Info("Logo service initialized without cache")
	}

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	if c.Config.Storage.CleanupDisabled {
		logger.Info("Logo cleanup sweep disabled")
		return nil
	}

	c.LogoCleanupService = serviceimpl.NewLogoCleanupService(
		c.LogoRepository,
		c.Storage,
		c.Config.Storage.LogoPrefix,
		time.Duration(c.Config.Storage.CleanupMinAge)*time.Hour,
	)

	err := c.EventScheduler.AddJob("logo-cleanup", c.Config.Storage.CleanupCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := c.LogoCleanupService.SweepOrphans(ctx); err != nil {
			logger.Warn("Logo cleanup sweep failed", "error", err)
		}
	})
	if err != nil {
		logger.Warn("Failed to register logo cleanup job", "error", err)
		return nil
	}

	logger.Info("Logo cleanup job registered", "cron", c.Config.Storage.CleanupCron)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Info("Event scheduler stopped")
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:      c.UserService,
		ProfileService:   c.ProfileService,
		TaskService:      c.TaskService,
		AnalyticsService: c.AnalyticsService,
		LogoService:      c.LogoService,
	}
}
