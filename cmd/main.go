package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/job-portal/internal/handlers"
	"github.com/sbilibin2017/job-portal/internal/jwt"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/middlewares"
	"github.com/sbilibin2017/job-portal/internal/models"
	"github.com/sbilibin2017/job-portal/internal/ratelimit"
	"github.com/sbilibin2017/job-portal/internal/repositories"
	"github.com/sbilibin2017/job-portal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/job-portal/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// requestTimeout bounds every request, including its database round-trips.
const requestTimeout = 15 * time.Second

// @title Job Portal API
// @version 1.0.0
// @description Job marketplace backend: employers post jobs, freelancers bid on them
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		rateLimitStore, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		rateLimitStore, logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, rate-limit, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	rateLimitStore, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Rate-limit counter storage: redis (shared across instances) or memory
	rateLimitStore = getEnv("RATE_LIMIT_STORE", "redis")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, rate-limit store, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	rateLimitStore, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Pick the rate-limit counter store
	var store ratelimit.Store
	switch rateLimitStore {
	case "memory":
		store = ratelimit.NewMemoryStore()
		logger.Log.Info("Rate limiting with in-memory counters")
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		store = ratelimit.NewRedisStore(rdb)
		logger.Log.Info("Rate limiting with Redis counters")
	}

	baseLimiter := ratelimit.New(store, ratelimit.BasePolicy)
	authLimiter := ratelimit.New(store, ratelimit.AuthPolicy)
	jobPostLimiter := ratelimit.New(store, ratelimit.JobPostPolicy)
	bidLimiter := ratelimit.New(store, ratelimit.BidPolicy)

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	jobReadRepo := repositories.NewJobReadRepository(db)
	jobWriteRepo := repositories.NewJobWriteRepository(db)
	bidReadRepo := repositories.NewBidReadRepository(db)
	bidWriteRepo := repositories.NewBidWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	jobService := services.NewJobService(jobReadRepo, jobWriteRepo)
	bidService := services.NewBidService(bidReadRepo, bidWriteRepo, jobReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createJobHandler := handlers.NewCreateJobHandler(jobService)
	getJobsHandler := handlers.NewGetJobsHandler(jobService)
	getJobHandler := handlers.NewGetJobHandler(jobService)
	getMyJobsHandler := handlers.NewGetMyJobsHandler(jobService)
	createBidHandler := handlers.NewCreateBidHandler(bidService)
	getBidsHandler := handlers.NewGetBidsHandler(bidService)
	acceptBidHandler := handlers.NewAcceptBidHandler(bidService)
	rejectBidHandler := handlers.NewRejectBidHandler(bidService)
	getMyBidsHandler := handlers.NewGetMyBidsHandler(bidService)

	// Middlewares
	authMiddleware := middlewares.AuthMiddleware(jwtSvc, userReadRepo)
	employerOnly := middlewares.RequireRole(models.RoleEmployer)
	freelancerOnly := middlewares.RequireRole(models.RoleFreelancer)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.RateLimitMiddleware(baseLimiter))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message":       "Welcome to Job Portal API",
			"documentation": "Visit /swagger/index.html for API documentation",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(authLimiter))
			r.Post("/register", registerHandler)
			r.Post("/login", loginHandler)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", getJobsHandler)
			r.With(middlewares.RateLimitMiddleware(jobPostLimiter), authMiddleware, employerOnly).
				Post("/create", createJobHandler)
			r.With(authMiddleware, employerOnly).Get("/my-jobs", getMyJobsHandler)
			r.Get("/{jobId}", getJobHandler)
		})

		r.Route("/bids", func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(bidLimiter))
			r.With(authMiddleware, freelancerOnly).Get("/my-bids", getMyBidsHandler)
			r.Get("/{jobId}", getBidsHandler)
			r.With(authMiddleware, freelancerOnly).Post("/{jobId}", createBidHandler)
			r.With(authMiddleware, employerOnly).Patch("/{bidId}/accept", acceptBidHandler)
			r.With(authMiddleware, employerOnly).Patch("/{bidId}/reject", rejectBidHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
