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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-recipe-accounts/docs"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/config"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/services"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/storage"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/transaction"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-recipe-accounts API
// @version 1.0.0
// @description User registration, availability checks and image uploads for the recipes site
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, blob store and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	var limiter middlewares.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, rate limiting fails open", "addr", cfg.RedisAddr, "error", err)
		}
		limiter = repositories.NewRateLimitRepository(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow)
	} else {
		logger.Log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, registration events disabled")
	}

	// Blob store
	blobStore, err := newBlobStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store: %w", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, transaction.FromContext)
	profileRepo := repositories.NewStudentProfileRepository(db, transaction.FromContext)
	txManager := transaction.NewManager(db)

	// Initialize services
	availabilityService := services.NewAvailabilityService(userReadRepo, cfg.StorageTimeout)
	registrationService := services.NewRegistrationService(
		userWriteRepo, profileRepo, txManager, validation.New(), kafkaWriter,
		cfg.RegistrationAtomic, cfg.StorageTimeout,
	)
	userService := services.NewUserService(userReadRepo, cfg.StorageTimeout)
	assetService := services.NewAssetService(blobStore, cfg.BlobKeyPrefix, cfg.StorageTimeout)

	// Initialize handlers
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	registerHandler := handlers.NewRegisterHandler(registrationService)
	usersHandler := handlers.NewUsersHandler(userService)
	uploadImageHandler := handlers.NewUploadImageHandler(assetService, cfg.MaxUploadBytes)

	// Setup router
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	r := chi.NewRouter()
	if !cfg.TrustProxyHeaders {
		logger.Log.Info("TRUST_PROXY_HEADERS not set, rate limiting keys on the peer address")
	}
	r.Use(clientAddressMiddleware(cfg.TrustProxyHeaders))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RecoverMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigin))

	r.With(middlewares.RateLimitMiddleware(limiter, "availability")).Post("/availability", availabilityHandler)
	r.Post("/register", registerHandler)
	r.Get("/users", usersHandler)
	r.Post("/upload-image", uploadImageHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// clientAddressMiddleware rewrites RemoteAddr from forwarding headers only
// when trustProxy is set.
func clientAddressMiddleware(trustProxy bool) func(http.Handler) http.Handler {
	if trustProxy {
		return chimiddleware.RealIP
	}
	return func(next http.Handler) http.Handler { return next }
}

// newKafkaWriter builds the registration event writer. Each message is sent
// on its own with a single attempt, bounded by StorageTimeout.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            1,
		WriteTimeout:           cfg.StorageTimeout,
	}
}

// newBlobStore builds the blob store selected by BLOB_PROVIDER.
func newBlobStore(ctx context.Context, cfg *config.Config) (services.BlobStore, error) {
	switch cfg.BlobProvider {
	case config.BlobProviderS3:
		return storage.NewS3Store(ctx, storage.S3Options{
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	case config.BlobProviderCloudinary:
		return storage.NewCloudinaryStore(cfg.CloudinaryURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		return nil, fmt.Errorf("unknown blob provider %q", cfg.BlobProvider)
	}
}
