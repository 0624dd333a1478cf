package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"route-summary-service/internal/adapters/cache"
	"route-summary-service/internal/adapters/repositories"
	"route-summary-service/internal/api"
	"route-summary-service/internal/api/handlers"
	"route-summary-service/internal/config"
	"route-summary-service/internal/format"
	"route-summary-service/internal/platform/db"
	"route-summary-service/internal/ports"
	"route-summary-service/internal/resultjson"
	"route-summary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, Redis or memory) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := format.NewFromLocale(cfg.Locale)
	if err != nil {
		log.Fatal(err)
	}

	checks := map[string]handlers.HealthCheck{}

	results, contextRepo, closeDB, err := openStores(ctx, cfg, checks)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	summaryCache, closeCache, err := openCache(ctx, cfg, checks)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	svc := &services.SummaryService{
		Results:  results,
		Context:  contextRepo,
		Cache:    summaryCache,
		CacheTTL: cfg.CacheTTL,
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	router := api.NewRouter(svc, f, limiter, checks)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: err=%v", err)
		}
	}()

	log.Printf("Server listening addr=:%s locale=%s", cfg.Port, cfg.Locale)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// openStores uses Postgres when DATABASE_URL is set and falls back to memory
// results plus an optional context file otherwise.
func openStores(ctx context.Context, cfg config.Config, checks map[string]handlers.HealthCheck) (ports.ResultRepository, ports.ContextRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set; storing results in memory")
		c, err := loadContextFile(cfg.ContextPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewMemoryResultRepository(), repositories.NewStaticContextRepository(c), func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	checks["database"] = conn.PingContext
	closeFn := func() { closeQuietly(conn) }
	return repositories.NewSQLResultRepository(conn), repositories.NewSQLContextRepository(conn), closeFn, nil
}

func openCache(ctx context.Context, cfg config.Config, checks map[string]handlers.HealthCheck) (ports.SummaryCache, func(), error) {
	if cfg.RedisURL == "" {
		return cache.NewMemorySummaryCache(), func() {}, nil
	}

	rc, err := cache.NewRedisSummaryCache(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := rc.Ping(ctx); err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("open cache: ping redis: %w", err)
	}
	checks["cache"] = rc.Ping
	return rc, func() { _ = rc.Close() }, nil
}

func loadContextFile(path string) (*resultjson.Context, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load context file %q: %w", path, err)
	}
	return resultjson.DecodeContext(b)
}

func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		log.Printf("close database failed: err=%v", err)
	}
}
