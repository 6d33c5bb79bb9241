package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"file-gateway/application/serviceimpl"
	"file-gateway/domain/ports"
	"file-gateway/domain/repositories"
	"file-gateway/domain/services"
	"file-gateway/infrastructure/postgres"
	"file-gateway/infrastructure/storage"
	"file-gateway/pkg/config"
	"file-gateway/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB      *gorm.DB
	Storage ports.ObjectStorage

	FileRepository repositories.FileMetadataRepository

	FileService services.FileService
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

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	objectStorage, err := storage.NewMinioStorage(c.Config.Storage)
	if err != nil {
		return err
	}
	c.Storage = objectStorage

	// Bucket bootstrap is best-effort: the gateway still starts if the
	// store is briefly unreachable, it just fails per-request later.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Storage.EnsureBucket(ctx, c.Config.Storage.Bucket); err != nil {
		logger.Warn("Failed to ensure bucket, continuing", "bucket", c.Config.Storage.Bucket, "error", err)
	}

	return nil
}

func (c *Container) initRepositories() {
	c.FileRepository = postgres.NewFileMetadataRepository(c.DB)
}

func (c *Container) initServices() {
	c.FileService = serviceimpl.NewFileService(
		c.FileRepository,
		c.Storage,
		c.Config.Storage.Bucket,
		c.Config.File,
	)
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
