package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/config"
	"github.com/myarea/app-myarea/internal/handlers"
	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/middleware"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/screens"
	"github.com/myarea/app-myarea/internal/services"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/myarea/app-myarea/docs"
)

const (
	sosWorkers   = 2
	sosQueueSize = 100
)

// @title           MyArea API
// @version         1.0
// @description     Backend of the MyArea community app. A client opens a session and drives it screen by screen: language choice, login or signup with a one-time code, profile completion and verification, then the community features (notices, volunteering, help requests, services, safety alerts, polls and profile settings).

// @contact.name   MyArea Support
// @contact.email  support@myarea.gov.in

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name sessions
// @tag.description Session lifecycle and screen navigation

// @tag.name auth
// @tag.description Login and signup with one-time codes

// @tag.name community
// @tag.description Profile, verification and community actions

// @tag.name catalog
// @tag.description Read-only community content

// @tag.name validation
// @tag.description Standalone field validation

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Sync()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections. Without MongoDB the stores stay in process.
	var (
		profiles services.ProfileStore
		help     services.HelpStore
	)
	if err := config.InitMongoDB(); err != nil {
		logging.Logger.Error("mongodb unavailable, using in-memory stores", zap.Error(err))
		profiles = services.NewMemoryProfileStore()
		help = services.NewMemoryHelpStore()
	} else {
		profiles = services.NewMongoProfileStore(config.MongoDB, cfg.ProfileCollection)
		help = services.NewMongoHelpStore(config.MongoDB, cfg.HelpRequestCollection, cfg.HelpOfferCollection)
	}
	config.InitRedis()

	otpConfig := otp.Config{
		ResendSeconds:   cfg.OTPResendSeconds,
		MaxResends:      cfg.OTPMaxResends,
		AutoSubmitDelay: cfg.OTPAutoSubmitDelay,
	}

	var auth services.AuthBackend
	if cfg.AuthBackendURL != "" {
		auth = services.NewHTTPAuthBackend(cfg.AuthBackendURL, cfg.AuthBackendTimeout)
		logging.Logger.Info("using remote auth backend", zap.String("url", cfg.AuthBackendURL))
	} else {
		auth = services.NewSimulatedAuthBackend(otpConfig.MaxResends, 10*time.Minute)
		logging.Logger.Warn("AUTH_BACKEND_URL not set, using simulated auth backend")
	}

	manager := session.NewManager(session.ManagerConfig{
		TTL:              cfg.SessionTTL,
		Store:            session.NewRedisStore(config.Redis, cfg.SessionTTL),
		StrictNavigation: cfg.NavigationStrictLogging,
	})

	sos := services.NewDispatchQueue(services.NewLoggingSOSDispatcher(), sosWorkers, sosQueueSize, 10*time.Second)

	app := screens.NewApp(screens.Deps{
		Auth:     auth,
		Profiles: profiles,
		Help:     help,
		SOS:      sos,
		OTP:      otpConfig,
	})

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	handlers.RegisterRoutes(v1,
		handlers.NewSessionHandlers(manager, app),
		handlers.NewHealthHandlers(config.MongoDB, config.Redis),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("version", cfg.Version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	// closing sessions stops their OTP timers before the stores go away
	manager.Close()
	sos.Stop()
	config.Disconnect(ctx)

	logging.Logger.Info("server exited gracefully")
}
