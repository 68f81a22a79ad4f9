package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/gymtracker-app/backend/internal/auth"
	"github.com/gymtracker-app/backend/internal/config"
	"github.com/gymtracker-app/backend/internal/exercise"
	"github.com/gymtracker-app/backend/internal/health"
	"github.com/gymtracker-app/backend/internal/logger"
	"github.com/gymtracker-app/backend/internal/metrics"
	appmw "github.com/gymtracker-app/backend/internal/middleware"
	"github.com/gymtracker-app/backend/internal/repository"
	"github.com/gymtracker-app/backend/internal/suggestion"
	"github.com/gymtracker-app/backend/internal/template"
	"github.com/gymtracker-app/backend/internal/weight"
	"github.com/gymtracker-app/backend/internal/workout"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	log := logger.New(logger.DefaultConfig())

	db, err := setupDatabase(cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Info("connected to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"dbname", cfg.Database.DBName,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	weightRepo := repository.NewWeightRepository(db)

	// Services
	keyService := auth.NewKeyService(cfg.Auth.KeyTTL)
	passwordValidator := auth.NewPasswordValidator()
	authService := auth.NewAuthService(userRepo, keyService, passwordValidator, log)
	workoutService := workout.NewService(workoutRepo, authService, log)
	templateService := template.NewService(templateRepo, log)
	exerciseService := exercise.NewService(exerciseRepo, log)
	weightService := weight.NewService(weightRepo, authService)
	suggestionService := suggestion.NewService(
		suggestion.NewClient(cfg.OpenAI),
		exerciseService,
		log,
	)

	// Seed the exercise catalog on first start
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := exerciseService.SeedIfEmpty(seedCtx); err != nil {
		cancelSeed()
		log.Error("failed to seed exercise catalog", "error", err)
		os.Exit(1)
	}
	cancelSeed()

	// Background auth-key rotation
	rotationScheduler := auth.NewRotationScheduler(authService, auth.RotationSchedulerConfig{
		Interval: cfg.Auth.RotateInterval,
	}, log)
	rotationScheduler.Start()
	defer rotationScheduler.Stop()

	// Database pool metrics
	statsDone := make(chan struct{})
	defer close(statsDone)
	go metrics.CollectDBStats(statsDone, db.Stats, 15*time.Second)

	// Handlers
	authHandler := auth.NewAuthHandler(authService, log)
	workoutHandler := workout.NewHandler(workoutService, log)
	templateHandler := template.NewHandler(templateService, log)
	exerciseHandler := exercise.NewHandler(exerciseService, log)
	weightHandler := weight.NewHandler(weightService, log)
	suggestionHandler := suggestion.NewHandler(suggestionService, log)
	healthHandler := health.NewHandler(health.Config{DB: db, Version: version})

	loginLimiter := appmw.NewLoginRateLimiter(cfg.RateLimit.Attempts, cfg.RateLimit.Window)

	// Router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(appmw.StructuredLogger(log))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// The frontend calls every endpoint at the root path
	auth.RegisterRoutes(r, authHandler, loginLimiter.Handler)
	workout.RegisterRoutes(r, workoutHandler)
	template.RegisterRoutes(r, templateHandler)
	exercise.RegisterRoutes(r, exerciseHandler)
	weight.RegisterRoutes(r, weightHandler)
	suggestion.RegisterRoutes(r, suggestionHandler)

	r.Get("/health", healthHandler.Health)
	r.Get("/health/ready", healthHandler.Ready)
	r.Get("/health/live", healthHandler.Live)
	r.Handle("/metrics", metrics.Handler())

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	healthHandler.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}

// setupDatabase opens and configures the database connection pool
func setupDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)

	return db, nil
}
