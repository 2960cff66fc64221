package di

import (
	"fmt"

	"shopadmin/application/serviceimpl"
	"shopadmin/domain/ports"
	"shopadmin/domain/repositories"
	"shopadmin/domain/services"
	"shopadmin/infrastructure/postgres"
	"shopadmin/infrastructure/storage"
	"shopadmin/interfaces/api/handlers"
	"shopadmin/pkg/config"
	"shopadmin/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB      *gorm.DB
	Storage ports.StoragePort

	// Repositories
	CategoryRepository repositories.CategoryRepository
	ProductRepository  repositories.ProductRepository
	OrderRepository    repositories.OrderRepository

	// Services
	CategoryService services.CategoryService
	ProductService  services.ProductService
	OrderService    services.OrderService
	UploadService   services.UploadService
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

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	return c.initStorage()
}

// initStorage picks the storage adapter from config.
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
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

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.OrderRepository = postgres.NewOrderRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository)
	c.OrderService = serviceimpl.NewOrderService(c.OrderRepository)
	c.UploadService = serviceimpl.NewUploadService(c.Storage)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

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
		CategoryService: c.CategoryService,
		ProductService:  c.ProductService,
		OrderService:    c.OrderService,
		UploadService:   c.UploadService,
	}
}
