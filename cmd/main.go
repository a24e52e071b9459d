package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/fitness-tracker/docs"
	"github.com/sbilibin2017/fitness-tracker/internal/handlers"
	"github.com/sbilibin2017/fitness-tracker/internal/hash"
	"github.com/sbilibin2017/fitness-tracker/internal/health"
	"github.com/sbilibin2017/fitness-tracker/internal/jwt"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/middlewares"
	"github.com/sbilibin2017/fitness-tracker/internal/migrations"
	"github.com/sbilibin2017/fitness-tracker/internal/repositories"
	"github.com/sbilibin2017/fitness-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment at startup.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseDSN    string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey string
	JWTExpSecond int
	BcryptCost   int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	GRPCHealthPort string
}

// dsn returns DatabaseDSN or builds one from the POSTGRES_* settings.
func (c config) dsn() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title fitness-tracker API
// @version 1.0.0
// @description Fitness tracking backend: user accounts and ownership-checked trainings
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// parseConfig loads environment variables from a file and returns
// the application, database, auth, Redis, Kafka and health configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "")
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Auth config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", "10"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "training-events")

	// gRPC health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "")

	return
}

// run initializes the logger, database, optional Redis, Kafka and gRPC health server,
// then serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	pingers := map[string]health.Pinger{"postgres": db}

	// Connect to Redis
	var userCache services.UserCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		userCache = repositories.NewUserCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		pingers["redis"] = health.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		logger.Log.Infow("Redis user cache enabled", "host", cfg.RedisHost)
	}

	// Kafka writer for training events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
			Async:    true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("failed to deliver training events", "count", len(messages), "err", err)
				}
			},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("Kafka training events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT and password hashing
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)
	hasher := hash.New(cfg.BcryptCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	trainingReadRepo := repositories.NewTrainingReadRepository(db, middlewares.GetTxFromContext)
	trainingWriteRepo := repositories.NewTrainingWriteRepository(db, middlewares.GetTxFromContext)
	trainingTypeReadRepo := repositories.NewTrainingTypeReadRepository(db, middlewares.GetTxFromContext)
	trainingTypeWriteRepo := repositories.NewTrainingTypeWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, userCache, tokens, hasher)
	trainingService := services.NewTrainingService(
		trainingReadRepo, trainingWriteRepo,
		trainingTypeReadRepo, trainingTypeWriteRepo,
		kafkaWriter,
	)

	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	r := newRouter(db, authService, trainingService, tokens,
		fmt.Sprintf("http://%s/swagger/doc.json", docs.SwaggerInfo.Host))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	errChan := make(chan error, 2)

	// gRPC health server
	if cfg.GRPCHealthPort != "" {
		checker := health.NewChecker(health.DefaultInterval, pingers)
		grpcSrv := grpc.NewServer()
		checker.Register(grpcSrv)

		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("failed to listen for gRPC health: %w", err)
		}
		go checker.Run(ctx)
		go func() {
			logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcSrv.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
		defer grpcSrv.GracefulStop()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
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

// newRouter wires handlers and middlewares. Multi-step writes run inside TxMiddleware.
func newRouter(
	db *sqlx.DB,
	authService *services.AuthService,
	trainingService *services.TrainingService,
	tokener middlewares.Tokener,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running..."))
	})

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
	})

	// Protected routes
	tx := middlewares.TxMiddleware(db)
	r.Route("/api/trainings", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, authService))

		r.Get("/", handlers.NewListTrainingsHandler(trainingService))
		r.Post("/", handlers.NewCreateTrainingHandler(trainingService))
		r.With(tx).Post("/day", handlers.NewDayTrainingHandler(trainingService))
		r.With(tx).Post("/create-type", handlers.NewCreateTypeHandler(trainingService))
		r.Post("/update-duration", handlers.NewUpdateDurationHandler(trainingService))
		r.Post("/update-repetitions", handlers.NewUpdateRepetitionsHandler(trainingService))

		r.Get("/{id}", handlers.NewGetTrainingHandler(trainingService))
		r.Put("/{id}", handlers.NewUpdateTrainingHandler(trainingService))
		r.With(tx).Delete("/{id}", handlers.NewDeleteTrainingHandler(trainingService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
