// Package main is the application entry point. It wires together the
// repositories, services, adapters, scheduler, and HTTP router.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"nexpo/config"
	"nexpo/internal/adapters/auth"
	"nexpo/internal/adapters/email"
	"nexpo/internal/adapters/genai"
	"nexpo/internal/adapters/pass"
	delivery "nexpo/internal/delivery/http"
	"nexpo/internal/delivery/http/controllers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/repository/postgres"
	"nexpo/internal/scheduler"
	"nexpo/internal/services"
)

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	expoRepo := postgres.NewExpoRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	expoRegRepo := postgres.NewExpoRegistrationRepository(db)
	sessionRegRepo := postgres.NewSessionRegistrationRepository(db)
	expoBookmarkRepo := postgres.NewExpoBookmarkRepository(db)
	sessionBookmarkRepo := postgres.NewSessionBookmarkRepository(db)
	boothRepo := postgres.NewBoothRepository(db)
	boothVisitRepo := postgres.NewBoothVisitRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	mailer, err := email.NewMailer(cfg.Mailer, logger)
	if err != nil {
		logger.Error("failed to create mailer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()
	passGen := pass.NewGenerator(http.DefaultClient, logger, cfg.FrontendURL)
	completer := genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		Timeout: cfg.GenAI.Timeout,
	}, http.DefaultClient, logger)
	hasher := auth.NewBcryptHasher(10)
	tokens := auth.NewJWTManager(cfg.JWTSecret)

	// Services
	emailSvc := services.NewEmailService(mailer, renderer)
	expoSvc := services.NewExpoService(expoRepo, boothRepo, scheduleRepo, userRepo, notificationRepo, logger)
	sessionSvc := services.NewSessionService(sessionRepo, expoRepo)
	scheduleSvc := services.NewScheduleService(scheduleRepo, expoRepo)
	messageSvc := services.NewMessageService(messageRepo, userRepo, notificationRepo, emailSvc, logger)
	registrationSvc := services.NewRegistrationService(
		expoRepo, sessionRepo, expoRegRepo, sessionRegRepo, userRepo,
		passGen, emailSvc, logger)
	bookmarkSvc := services.NewBookmarkService(expoBookmarkRepo, sessionBookmarkRepo)
	boothSvc := services.NewBoothService(boothRepo, expoRepo, userRepo, passGen, emailSvc, logger)
	boothVisitSvc := services.NewBoothVisitService(boothRepo, boothVisitRepo, expoRegRepo)
	notificationSvc := services.NewNotificationService(notificationRepo)
	recommendSvc := services.NewRecommendationService(completer, logger)
	authSvc := services.NewAuthService(userRepo, hasher, tokens)
	reminderSvc := services.NewReminderService(
		expoRepo, sessionRepo, boothRepo, expoRegRepo,
		expoBookmarkRepo, sessionBookmarkRepo, notificationRepo, userRepo,
		emailSvc, logger)

	// Daily reminder sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched := scheduler.New(reminderSvc, cfg.ReminderHour, logger)
	if err := sched.Start(ctx); err != nil {
		logger.Error("failed to start scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// HTTP
	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authSvc),
		Expo:         controllers.NewExpoController(logger, expoSvc),
		Session:      controllers.NewSessionController(logger, sessionSvc),
		Schedule:     controllers.NewScheduleController(logger, scheduleSvc),
		Registration: controllers.NewRegistrationController(logger, registrationSvc),
		Bookmark:     controllers.NewBookmarkController(logger, bookmarkSvc),
		Booth:        controllers.NewBoothController(logger, boothSvc, boothVisitSvc),
		AI:           controllers.NewAIController(logger, recommendSvc),
		Notification: controllers.NewNotificationController(logger, notificationSvc),
		Message:      controllers.NewMessageController(logger, messageSvc),
	}, tokens, logger)

	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS([]string{cfg.FrontendURL}, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	if err := sched.Stop(); err != nil {
		logger.Error("scheduler stop failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
