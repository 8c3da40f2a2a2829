package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/willcheung/robinhood-export-function/domain"
	"github.com/willcheung/robinhood-export-function/internal/config"
	"github.com/willcheung/robinhood-export-function/internal/infrastructure/audit"
	"github.com/willcheung/robinhood-export-function/internal/infrastructure/auth"
	"github.com/willcheung/robinhood-export-function/internal/infrastructure/brokerage"
	"github.com/willcheung/robinhood-export-function/internal/infrastructure/repositories"
	"github.com/willcheung/robinhood-export-function/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Brokerage   *brokerage.Client

	// Shared state
	AuthState *services.AuthorizationState

	// Services
	AuthSvc   domain.AuthService
	ExportSvc domain.ExportService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	cache, err := container.initSessionCache()
	if err != nil {
		return nil, err
	}

	container.Brokerage = brokerage.NewClient(cfg.BrokerageBaseURL, cfg.BrokerageTimeout)
	container.AuthState = services.NewAuthorizationState()
	auditLogger := audit.NewLogAuditLogger(nil)

	container.AuthSvc = services.NewAuthService(
		cache,
		container.Brokerage,
		auth.NewDeviceTokenGenerator(),
		container.AuthState,
		auditLogger,
		services.LoginConfig{
			ClientID:  cfg.BrokerageClient,
			Scope:     cfg.LoginScope,
			ExpiresIn: cfg.LoginExpiresIn,
		},
	)
	container.ExportSvc = services.NewExportService(container.Brokerage, container.AuthState, auditLogger)

	return container, nil
}

// initSessionCache opens the configured session cache backend. Redis is the
// default; postgres is for deployments without a Redis to lean on.
func (c *Container) initSessionCache() (domain.SessionCache, error) {
	if c.Config.CacheBackend == "postgres" {
		db, err := gorm.Open(postgres.Open(c.Config.DSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&repositories.DBSessionRecord{}); err != nil {
			return nil, err
		}
		c.DB = db
		return repositories.NewDBSessionCache(db), nil
	}

	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
	return repositories.NewRedisSessionCache(c.RedisClient, c.Config.CacheTTL), nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
