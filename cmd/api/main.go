// ABOUTME: Main entry point for the Newsgrid companion API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsgrid/api"
	"newsgrid/api/handlers"
	"newsgrid/core/interfaces"
	"newsgrid/core/news"
	stdhttp "newsgrid/infrastructure/http/standard"
	"newsgrid/infrastructure/logger/structured"
	"newsgrid/infrastructure/metrics/collector"
	"newsgrid/infrastructure/session/memory"
	"newsgrid/pkg/config"
	"newsgrid/pkg/featureflags"
)

func main() {
	// Load configuration
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	// Create logger
	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: structured.Format(cfg.Log.Format),
		Output: os.Stderr,
	})
	logger.Info("Starting Newsgrid API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"page_size":   cfg.News.PageSize,
		"session_ttl": cfg.Server.SessionTTL.String(),
	})

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.NewsAPI.Timeout, logger),
		Logger:     logger,
	}

	apiConfig := api.APIConfig{
		Logger: logger,
	}

	var metrics *collector.Collector
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		metrics = collector.New()
		deps.Metrics = metrics
		apiConfig.Observer = metrics
		apiConfig.MetricsHandler = metrics.Handler()
	}

	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
		apiConfig.TrustProxy = cfg.Server.TrustProxy
	}

	// Create services
	service := news.NewService(deps, newsOptions(cfg))

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	newsHandler := handlers.NewNewsHandler(service, loc)
	newsHandler.RegisterRoutes(humaAPI)

	var store *memory.Store
	if flags.IsEnabled(ctx, featureflags.SessionsEnabled) {
		opts := []memory.Option{memory.WithLogger(logger)}
		if metrics != nil {
			opts = append(opts, memory.WithCountObserver(metrics.SetActiveSessions))
		}
		store = memory.NewStore(cfg.Server.SessionTTL, time.Minute, opts...)

		factory := func() *news.Controller {
			return news.NewController(service, deps)
		}
		sessionHandler := handlers.NewSessionHandler(store, factory, loc)
		sessionHandler.RegisterRoutes(humaAPI)
	}

	var counter handlers.SessionCounter
	if store != nil {
		counter = store
	}
	healthHandler := handlers.NewHealthHandler(counter, flags)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Stop every session's in-flight cycle
	if store != nil {
		store.Close()
	}

	logger.Info("Server stopped", nil)
}

func newsOptions(cfg *config.Config) news.Options {
	return news.Options{
		Endpoint: cfg.NewsAPI.Endpoint,
		APIKey:   cfg.NewsAPI.APIKey,
		PageSize: cfg.News.PageSize,
		Regional: news.Query{
			Name:     news.DefaultRegionalQuery.Name,
			Term:     cfg.News.RegionalQuery,
			Language: cfg.News.RegionalLanguage,
		},
		Default: news.Query{
			Name:     news.DefaultTopicQuery.Name,
			Term:     cfg.News.DefaultQuery,
			Language: cfg.News.DefaultLanguage,
		},
	}
}

func init() {
	// Print banner
	fmt.Println(`
 _   _                              _     _
| \ | | _____      _____  __ _ _ __(_) __| |
|  \| |/ _ \ \ /\ / / __|/ _' | '__| |/ _' |
| |\  |  __/\ V  V /\__ \ (_| | |  | | (_| |
|_| \_|\___| \_/\_/ |___/\__, |_|  |_|\__,_|
                         |___/
	`)
}
