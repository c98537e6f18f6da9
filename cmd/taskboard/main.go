package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/internal/server"
	"taskboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	if cfg.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET is required")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	jwtManager := service.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	handler := server.New(db, jwtManager, cfg.AllowedOrigins)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	reminderSvc := service.NewReminderService(taskRepo, categoryRepo)

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ReminderInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReminderInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			runReminders(jobCtx, logger, userRepo, reminderSvc)
		}); err != nil {
			logger.Fatal().Err(err).Msg("schedule reminders")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info().Str("addr", cfg.ListenAddr).Msg("taskboard started")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("shutdown complete")
}

// runReminders logs a due-date summary for every registered user. The
// summaries stand in for an outbound notification channel.
func runReminders(ctx context.Context, logger zerolog.Logger, users *repository.UserRepository, reminders *service.ReminderService) {
	all, err := users.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("reminder: list users")
		return
	}
	now := time.Now()
	for _, user := range all {
		summary, err := reminders.DailySummary(ctx, user, now)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Uint("user_id", user.ID).Msg("reminder")
			}
			continue
		}
		if summary == "" {
			continue
		}
		logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg(summary)
	}
}
