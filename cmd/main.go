package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-tweets/docs"
	"github.com/sbilibin2017/gw-tweets/internal/handlers"
	"github.com/sbilibin2017/gw-tweets/internal/jwt"
	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/middlewares"
	"github.com/sbilibin2017/gw-tweets/internal/migrations"
	"github.com/sbilibin2017/gw-tweets/internal/repositories"
	"github.com/sbilibin2017/gw-tweets/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-tweets API
// @version 1.0.0
// @description Minimal social posting backend: accounts, bearer tokens, tweets and likes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExpMinutes,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFormat,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExpMinutes,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, JWT and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFormat string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpMinutes int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "postgres")
	pgPassword = getEnv("POSTGRES_PASSWORD", getEnv("tpass", "password"))
	pgDB = getEnv("POSTGRES_DB", "twiter")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpMinutes, err = strconv.Atoi(getEnv("JWT_EXP_MINUTES", "30")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "tweet-events")

	return
}

// newKafkaWriter returns an async writer for post events, or nil when no
// brokers are configured.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver post events", "count", len(messages), "error", err)
			}
		},
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// Mutating routes run behind the auth middleware and inside a per-request
// transaction.
func newRouter(db *sqlx.DB, tokens *jwt.JWT, kafkaWriter services.KafkaWriter) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	postReadRepo := repositories.NewPostReadRepository(db, middlewares.GetTxFromContext)
	postWriteRepo := repositories.NewPostWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	postService := services.NewPostService(postReadRepo, postWriteRepo, kafkaWriter)

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Get("/home", handlers.NewHomeHandler(postService))
	r.With(txMiddleware).Post("/users/signup", handlers.NewSignupHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))

	r.Route("/tweets", func(r chi.Router) {
		r.Get("/", handlers.NewListTweetsHandler(postService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)
			r.Post("/", handlers.NewCreateTweetHandler(postService))
			r.Patch("/{id}", handlers.NewEditTweetHandler(postService))
			r.Delete("/{id}", handlers.NewDeleteTweetHandler(postService))
			r.Post("/{id}/like", handlers.NewLikeTweetHandler(postService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It sets up routes and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFormat string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpMinutes int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", pgHost, "port", pgPort, "db", pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := migrations.Run(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpMinutes)*time.Minute),
	)

	// Initialize Kafka writer; a nil *kafka.Writer must not reach the
	// service as a non-nil interface.
	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(kafkaBrokers, kafkaTopic); w != nil {
		logger.Log.Infow("Publishing post events", "brokers", kafkaBrokers, "topic", kafkaTopic)
		kafkaWriter = w
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(db, tokens, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
