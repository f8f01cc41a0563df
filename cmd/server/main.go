package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/pkg/api"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/discovery"
	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/store"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := buildLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront server",
		zap.String("name", cfg.Server.Name),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port))

	// Build in-memory store
	st := store.New(ident.UUID{})
	if cfg.Seed.Enabled {
		store.Seed(st)
		logger.Info("Seed data loaded")
	}

	collab, closeCollab := setupCollaborators(cfg, logger)
	defer closeCollab()

	// Register in etcd
	var registry *discovery.Registry
	instance := &discovery.ServiceInstance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	if cfg.Etcd.Enabled {
		registry, err = discovery.NewRegistry(&cfg.Etcd)
		if err != nil {
			logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		} else if err := registry.Register(context.Background(), instance); err != nil {
			logger.Warn("Failed to register service", zap.Error(err))
		} else {
			logger.Info("Service registered in etcd",
				zap.String("address", fmt.Sprintf("%s:%d", instance.Host, instance.Port)))
		}
	}

	// Create HTTP server
	auth := api.NewStaticTokens(cfg.Auth.Tokens, st.Users)
	server := api.NewServer(cfg, logger, st, auth, collab)
	server.SetupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			serverErr <- err
		}
	}()

	logger.Info("Server started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if registry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := registry.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
		cancel()
		registry.Close()
	}

	logger.Info("Server stopped")
}

func buildLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zc.Level = level
	}
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	return zc.Build()
}

// setupCollaborators connects the optional external systems. Each one
// that fails is logged and skipped; the server runs without it.
func setupCollaborators(cfg *config.Config, logger *zap.Logger) (api.Collaborators, func()) {
	var collab api.Collaborators
	var closers []func()

	if cfg.Redis.Enabled {
		cache := repository.NewProductCache(&cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("Redis connection failed, continuing without product cache", zap.Error(err))
			cache.Close()
		} else {
			logger.Info("Redis connected successfully")
			collab.Cache = cache
			closers = append(closers, func() { cache.Close() })
		}
		cancel()
	}

	if cfg.MongoDB.Enabled {
		audit, err := repository.NewAuditTrail(&cfg.MongoDB)
		if err != nil {
			logger.Warn("MongoDB connection failed, continuing without audit trail", zap.Error(err))
		} else {
			logger.Info("MongoDB connected successfully")
			collab.Audit = audit
			closers = append(closers, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				audit.Close(ctx)
			})
		}
	}

	if cfg.MySQL.Enabled {
		archive, err := repository.NewOrderArchive(&cfg.MySQL)
		if err != nil {
			logger.Warn("MySQL connection failed, continuing without order archive", zap.Error(err))
		} else {
			logger.Info("MySQL connected successfully")
			collab.Archive = archive
			closers = append(closers, func() { archive.Close() })
		}
	}

	notifier, err := notify.New(logger)
	if err != nil {
		logger.Warn("Failed to start notification actor", zap.Error(err))
	} else {
		collab.Notifier = notifier
		closers = append(closers, notifier.Close)
	}

	return collab, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
