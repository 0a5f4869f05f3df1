package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fortizbank/fortiz/infra"
	infra_cache "github.com/fortizbank/fortiz/infra/cache"
	infra_eventbus "github.com/fortizbank/fortiz/infra/eventbus"
	"github.com/fortizbank/fortiz/infra/notifier"
	infra_repository "github.com/fortizbank/fortiz/infra/repository"
	"github.com/fortizbank/fortiz/pkg/app"
	"github.com/fortizbank/fortiz/pkg/cache"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/eventbus"
	"github.com/fortizbank/fortiz/pkg/service/notification"
	"github.com/redis/go-redis/v9"
)

// memoryCacheSweep is how often the in-memory dashboard cache drops expired entries.
const memoryCacheSweep = time.Minute

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.MigrateOnStart {
		if err := infra.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	deps.EventBus, err = initEventBus(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.Cache = initCache(cfg, logger)
	deps.Sender = initSender(cfg.Email, logger)
	return deps, nil
}

// initEventBus builds the notification transport named by EVENT_BUS_DRIVER.
// An unreachable broker falls back to the in-memory bus; a misconfigured
// driver is an error.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	driver := ""
	if cfg.EventBus != nil {
		driver = strings.ToLower(strings.TrimSpace(cfg.EventBus.Driver))
	}

	switch driver {
	case "", "memory":
		logger.Info("Using in-memory event bus")
		return infra_eventbus.NewWithMemoryAsync(logger), nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, errors.New("event bus driver redis requires REDIS_URL")
		}
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		bus, err := infra_eventbus.NewWithRedis(client, cfg.Redis.KeyPrefix, logger)
		if err != nil {
			logger.Warn("Redis event bus unavailable, falling back to in-memory bus", "error", err)
			_ = client.Close()
			return infra_eventbus.NewWithMemoryAsync(logger), nil
		}
		logger.Info("Using Redis streams event bus")
		return bus, nil
	case "kafka":
		if cfg.Kafka == nil || strings.TrimSpace(cfg.Kafka.Brokers) == "" {
			return nil, errors.New("event bus driver kafka requires KAFKA_BROKERS")
		}
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka.Brokers, infra_eventbus.KafkaEventBusConfig{
			GroupID:     cfg.Kafka.GroupID,
			TopicPrefix: cfg.Kafka.Topic,
		}, logger)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, falling back to in-memory bus", "error", err)
			return infra_eventbus.NewWithMemoryAsync(logger), nil
		}
		logger.Info("Using Kafka event bus", "brokers", cfg.Kafka.Brokers)
		return bus, nil
	default:
		return nil, fmt.Errorf("unknown event bus driver %q", driver)
	}
}

// initCache builds the dashboard cache. Redis problems degrade to memory.
func initCache(cfg *config.App, logger *slog.Logger) cache.Cache {
	if cfg.Dashboard == nil || !strings.EqualFold(cfg.Dashboard.CacheDriver, "redis") {
		return infra_cache.NewMemoryCache(memoryCacheSweep)
	}
	client, err := newRedisClient(cfg.Redis)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		err = client.Ping(ctx).Err()
		cancel()
	}
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		logger.Warn("Redis cache unavailable, using in-memory cache", "error", err)
		return infra_cache.NewMemoryCache(memoryCacheSweep)
	}
	return infra_cache.NewRedisCache(client, cfg.Redis.KeyPrefix, logger)
}

// initSender returns the email sender; without an API key emails are only logged.
func initSender(cfg *config.Email, logger *slog.Logger) notification.Sender {
	if cfg == nil || cfg.ApiKey == "" {
		logger.Warn("EMAIL_API_KEY not set, notifications will be logged only")
		return notifier.NewLogSender(logger)
	}
	return notifier.NewHTTPSender(cfg, logger)
}

func newRedisClient(cfg *config.Redis) (*redis.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("REDIS_URL is not set")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return redis.NewClient(opts), nil
}
