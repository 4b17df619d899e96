package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/stardental/clinic-backend/internal/adapters/cache"
	"github.com/stardental/clinic-backend/internal/adapters/database"
	"github.com/stardental/clinic-backend/internal/adapters/events"
	"github.com/stardental/clinic-backend/internal/api/handlers"
	"github.com/stardental/clinic-backend/internal/api/middleware"
	"github.com/stardental/clinic-backend/internal/api/routes"
	"github.com/stardental/clinic-backend/internal/application/services"
	"github.com/stardental/clinic-backend/internal/domain/providers"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	redisclient "github.com/stardental/clinic-backend/internal/infrastructure/clients/redis"
	"github.com/stardental/clinic-backend/internal/infrastructure/observability"
	"github.com/stardental/clinic-backend/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second)); err != nil {
				logger.Warn().Err(err).Msg("failed to start runtime instrumentation")
			}
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without it: the cache
	// middleware and the live appointment stream are simply disabled.
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		logger.Info().Msg("event bus initialized")
	}

	// Initialize adapters
	appointmentAdapter := database.NewAppointmentAdapter(pgClient)
	blogAdapter := database.NewBlogPostAdapter(pgClient)
	testimonialAdapter := database.NewTestimonialAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)

	// Initialize services
	appointmentService := services.NewAppointmentService(appointmentAdapter, eventBus)
	blogService := services.NewBlogService(blogAdapter)
	testimonialService := services.NewTestimonialService(testimonialAdapter)
	authService := services.NewAuthService(
		userAdapter,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour,
	)

	// Initialize handlers
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, metrics)
	blogHandler := handlers.NewBlogHandler(blogService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	contactHandler := handlers.NewContactHandler()
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(appointmentService, blogService)

	var sseHandler *handlers.SSEHandler
	if eventBus != nil {
		sseHandler = handlers.NewSSEHandler(eventBus)
	}

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		appointmentHandler,
		blogHandler,
		testimonialHandler,
		contactHandler,
		authHandler,
		dashboardHandler,
		sseHandler,
		cacheMiddleware,
		metrics,
		cfg.Auth.JWTSecret,
		strings.Split(cfg.CORS.AllowedOrigins, ","),
	)

	handler := router.SetupRoutes()

	// Create HTTP server. The write timeout is generous because the admin
	// dashboard holds a long-lived SSE connection.
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing event bus")
		}
	}

	logger.Info().Msg("server stopped")
}
