package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"infinite-experiment/sponsorlink/internal/api"
	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/config"
	"infinite-experiment/sponsorlink/internal/db"
	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/metrics"
	"infinite-experiment/sponsorlink/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Sponsorlink admin API starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	orm, err := db.InitORM(cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database (GORM)", "error", err.Error())
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(orm); err != nil {
			logging.Fatal("Failed to migrate schema", "error", err.Error())
		}
		logging.Info("Schema migrated")
	}

	sqlxDB, err := db.NewSQLX(orm, cfg.DBDriver)
	if err != nil {
		logging.Fatal("Failed to share pool with sqlx", "error", err.Error())
	}

	cache, err := newCache(cfg)
	if err != nil {
		logging.Fatal("Failed to initialize response cache", "backend", cfg.CacheBackend, "error", err.Error())
	}
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	deps := api.InitDependencies(orm, sqlxDB, cache, []byte(cfg.JWTSecret), metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
		"cache_backend", cfg.CacheBackend,
		"cache_ttl", cfg.CacheTTL.String(),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newCache builds the configured response cache backend.
func newCache(cfg *config.Config) (common.CacheInterface, error) {
	if cfg.CacheBackend == config.CacheBackendRedis {
		client := common.NewRedisClient(cfg)
		cache := common.NewRedisCacheService(client, cfg.CachePrefix)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, fmt.Errorf("redis at %s: %w", cfg.RedisAddr(), err)
		}
		logging.Info("Using Redis response cache", "addr", cfg.RedisAddr(), "prefix", cfg.CachePrefix)
		return cache, nil
	}

	logging.Info("Using in-memory response cache")
	return common.NewCacheService(cfg.CacheTTL, time.Minute), nil
}
