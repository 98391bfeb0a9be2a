package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/config"
	"github.com/diegoclair/ops-reminder-bot/internal/database"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/service"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"github.com/diegoclair/ops-reminder-bot/internal/handlers"
	"github.com/diegoclair/ops-reminder-bot/internal/notifier"
	"github.com/diegoclair/ops-reminder-bot/migrator/sqlite"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatalw("bot stopped", "error", err)
	}
}

func newLogger(debug bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	return logger.Sugar()
}

func run(cfg *config.Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	logger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	botUserID := cfg.BotUserID
	if botUserID == "" {
		auth, err := slackClient.AuthTest()
		if err != nil {
			return fmt.Errorf("failed to identify bot user: %w", err)
		}
		botUserID = auth.UserID
	}

	clock := clockwork.NewRealClock()
	gc, err := gameclock.New(cfg.GameClockOffsetHours, clock)
	if err != nil {
		return err
	}

	services := service.NewInstance(database.NewInstance(db), notifier.NewSlack(slackClient, logger), service.Options{
		Clock:             clock,
		GameClock:         gc,
		Logger:            logger,
		BotUserID:         botUserID,
		RSVPEmoji:         cfg.RSVPEmoji,
		DailyPollInterval: cfg.DailyPollInterval,
		DuelHour:          cfg.DuelHour,
	})

	// Reminders must be armed again before any new command can arrive.
	if err := services.Reminders.Recover(ctx); err != nil {
		return fmt.Errorf("failed to recover reminders: %w", err)
	}
	defer services.Reminders.Stop()

	if err := services.Broadcast.Start(); err != nil {
		return fmt.Errorf("failed to start daily broadcasts: %w", err)
	}
	defer services.Broadcast.Stop()

	handler := handlers.New(services.Missions, services.RSVP, cfg.SlackSigningSecret, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/events", handler.HandleEvents)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server starting", "port", cfg.Port, "game_clock", gc.Label(), "active_reminders", services.Reminders.Active())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
