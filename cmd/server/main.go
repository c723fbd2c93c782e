package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benvon/zenith-task/internal/config"
	"github.com/benvon/zenith-task/internal/handlers"
	"github.com/benvon/zenith-task/internal/logger"
	"github.com/benvon/zenith-task/internal/middleware"
	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/telemetry"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		// Sync fails on some terminals; nothing useful to do about it
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.Strings("cors_allowed_origins", cfg.CORSAllowedOrigins),
		zap.String("rate_limit", cfg.RateLimit),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	tracingActive, shutdownTracing := telemetry.Setup(context.Background(), cfg.OTELEnabled, cfg.OTELEndpoint, zapLogger)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
		}
	}()

	rateLimiter, err := middleware.NewRateLimiter(context.Background(), cfg.RateLimit, cfg.RedisURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}
	defer func() {
		if err := rateLimiter.Close(); err != nil {
			zapLogger.Warn("failed_to_close_rate_limiter", zap.Error(err))
		}
	}()
	zapLogger.Info("rate_limiter_ready", zap.String("backend", rateLimiter.Backend()))

	taskStore := store.NewMemoryStore()
	taskStore.SetLogger(zapLogger)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        newRouter(cfg, taskStore, rateLimiter, tracingActive, zapLogger),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// newRouter wires middleware and routes. In gorilla/mux the middleware
// registered first is the outermost wrapper.
func newRouter(cfg *config.Config, s store.TaskStore, rateLimiter *middleware.RateLimiter, tracing bool, zapLogger *zap.Logger) *mux.Router {
	metrics := middleware.NewMetrics()

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	if tracing {
		r.Use(otelmux.Middleware(telemetry.ServiceName))
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(zapLogger))
	r.Use(middleware.Audit(zapLogger))
	r.Use(metrics.Middleware)
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins, zapLogger))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Operational routes are not rate limited
	var healthOpts []handlers.HealthOption
	if rateLimiter.Backend() == "redis" {
		healthOpts = append(healthOpts, handlers.WithCheck("rate_limit_store", rateLimiter.Ping))
	}
	healthChecker := handlers.NewHealthChecker(s, healthOpts...)
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/version", versionInfo).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	handlers.NewOpenAPIHandler(cfg.OpenAPIPath).RegisterRoutes(r)

	api := r.NewRoute().Subrouter()
	api.Use(rateLimiter.Middleware())
	handlers.NewTaskHandler(s, zapLogger).RegisterRoutes(api)
	handlers.NewCategoryHandler(s, zapLogger).RegisterRoutes(api)
	handlers.NewTimerHandler().RegisterRoutes(api)

	// Preflight requests need a matching route for the CORS middleware to run
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"version":%q,"timestamp":"%s"}`, version, time.Now().UTC().Format(time.RFC3339))
}
