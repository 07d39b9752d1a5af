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

	"adminbot/internal/config"
	"adminbot/internal/gateway"
	"adminbot/internal/handler"
	"adminbot/internal/repository/postgres"
	"adminbot/internal/server"
	"adminbot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Admin Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	adminRepo := postgres.NewAdminRepo(db)
	stateRepo := postgres.NewStateRepo(db)
	questionRepo := postgres.NewQuestionRepo(db)
	groupRepo := postgres.NewGroupRepo(db)

	// Initialize Telegram bot. Updates arrive over the webhook endpoint,
	// so there is no poller; handlers run synchronously within the
	// webhook request so its recover guard covers them.
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Synchronous: true,
		OnError:     logBotError(logger),
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize gateway and services
	gw := gateway.NewTelebotGateway(bot)
	broadcastService := service.NewBroadcastService(groupRepo, stateRepo, gw, logger)
	questionService := service.NewQuestionService(questionRepo, groupRepo, stateRepo, gw, logger)

	// Initialize handler
	h := handler.NewHandler(bot, adminRepo, stateRepo, broadcastService, questionService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start HTTP server with webhook and liveness endpoints
	srv := server.New(server.Options{
		ListenAddr:     cfg.ListenAddr,
		WebhookPath:    cfg.WebhookPath(),
		AllowedOrigins: cfg.AllowedOrigins,
	}, bot, logger)

	go func() {
		logger.Info("HTTP server started", zap.String("addr", cfg.ListenAddr))
		if err := srv.Run(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down server gracefully", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// logBotError logs handler failures, separating platform API errors
// (rate limits, bad chat ids, blocked bot) from unexpected ones
func logBotError(logger *zap.Logger) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		var senderID int64
		if c != nil && c.Sender() != nil {
			senderID = c.Sender().ID
		}

		var apiErr *tele.Error
		if errors.As(err, &apiErr) {
			logger.Error("telegram api error",
				zap.Int("code", apiErr.Code),
				zap.String("description", apiErr.Description),
				zap.Int64("sender_id", senderID),
			)
			return
		}

		logger.Error("update handling failed",
			zap.Error(err),
			zap.Int64("sender_id", senderID),
		)
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}
