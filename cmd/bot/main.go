package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocaquiz/internal/config"
	"vocaquiz/internal/handler"
	"vocaquiz/internal/provider/randomword"
	"vocaquiz/internal/provider/translator"
	"vocaquiz/internal/provider/voicerss"
	"vocaquiz/internal/quiz"
	"vocaquiz/internal/repository/postgres"
	"vocaquiz/internal/service"
	"vocaquiz/migrations"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	dbConnectAttempts = 30
	dbConnectDelay    = 2 * time.Second
	cleanupInterval   = 24 * time.Hour
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Fatal("Bot failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	logger.Info("Starting vocabulary quiz bot")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := connectDatabase(ctx, cfg.DSN(), logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := runMigrations(db, logger); err != nil {
		return err
	}

	// Quiz core and its HTTP collaborators
	words := randomword.NewSource()
	generator := quiz.NewService(
		words,
		translator.NewClient(cfg.API.TranslatorURL, cfg.API.RapidAPIKey, logger),
		voicerss.NewClient(cfg.API.TTSURL, cfg.API.TTSKey, cfg.API.RapidAPIKey, logger),
		logger,
	)
	logger.Info("Quiz generator ready", zap.Int("dictionary_size", words.Size()))

	resultRepo := postgres.NewResultRepo(db)
	authService := service.NewAuthService(postgres.NewUserRepo(db), cfg.BotPassword)
	quizService := service.NewQuizService(generator, resultRepo, logger)
	statsService := service.NewStatsService(resultRepo, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	handler.NewHandler(bot, authService, quizService, statsService, logger).RegisterHandlers()

	go runCleanupJob(ctx, statsService, logger)
	go bot.Start()

	logger.Info("Bot started", zap.String("username", bot.Me.Username))

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot")
	bot.Stop()
	logger.Info("Bot stopped gracefully")

	return nil
}

// connectDatabase opens PostgreSQL and waits until it answers pings
func connectDatabase(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			logger.Info("Database connection established", zap.Int("attempt", attempt))
			return db, nil
		}

		logger.Warn("Database is not ready",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(dbConnectDelay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", dbConnectAttempts, err)
}

// runMigrations applies the embedded schema migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("Schema is up to date")
	case err != nil:
		return fmt.Errorf("apply migrations: %w", err)
	default:
		logger.Info("Migrations applied")
	}

	return nil
}

// runCleanupJob drops quiz results past retention at startup and then daily
func runCleanupJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		if err := statsService.CleanupOldData(); err != nil {
			logger.Error("Cleanup failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
		}
	}
}
