package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vocabu/internal/config"
	"vocabu/internal/handler"
	"vocabu/internal/metrics"
	"vocabu/internal/middleware"
	"vocabu/internal/repository"
	"vocabu/internal/repository/postgres"
	"vocabu/internal/repository/redisstore"
	"vocabu/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot (default)",
	RunE:  runServe,
}

type stateStores struct {
	pending   repository.PendingInteractionRepository
	exercises repository.ExerciseRepository
	close     func() error
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting vocabu bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return err
	}

	logger.Info("Configuration loaded successfully", zap.String("state_backend", cfg.StateBackend))

	db, err := openDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Error("Failed to prepare database", zap.Error(err))
		return err
	}
	defer db.Close()

	stores, err := newStateStores(ctx, cfg, db)
	if err != nil {
		logger.Error("Failed to initialize state stores", zap.Error(err))
		return err
	}
	defer stores.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)
	dictRepo := postgres.NewDictionaryRepo(db)
	stagedRepo := postgres.NewStagedTranslationRepo(db)

	if cfg.Dictionary.ImportOnStartup {
		importer := service.NewDictionaryImporter(dictRepo, logger)
		if _, err := importer.ImportFile(ctx, cfg.Dictionary.File, cfg.Dictionary.ResetBeforeLoad); err != nil {
			logger.Error("Failed to import dictionary", zap.Error(err))
		}
	}

	// Initialize services
	translator := service.NewGoogleTranslator(cfg.TranslateURL, cfg.TranslateTimeout, service.NewTranslationCache(), m, logger)
	resolver := service.NewResolver(dictRepo, translator, m, logger)
	services := handler.Services{
		Auth:       service.NewAuthService(userRepo, cfg.AdminChatID, logger),
		Words:      service.NewWordService(wordRepo, stagedRepo, stores.pending, resolver, logger),
		Exercises:  service.NewExerciseService(wordRepo, dictRepo, stores.exercises, m, logger),
		Moderation: service.NewModerationService(userRepo, wordRepo, dictRepo, logger),
		Stats:      service.NewStatsService(userRepo, dictRepo, translator, logger),
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Error("Failed to create bot", zap.Error(err))
		return err
	}

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(services, stores.pending, handler.NewTelegramMessenger(bot), m, logger)
	bot.Use(middleware.Logging(logger), middleware.ChatLock(middleware.NewChatLocks()))
	h.RegisterHandlers(bot)

	logger.Info("Handlers registered")

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = startMetricsServer(cfg.MetricsAddr, registry, logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop metrics server", zap.Error(err))
		}
	}

	logger.Info("Bot stopped gracefully")
	return nil
}

// newStateStores selects where pending interactions and exercises live
func newStateStores(ctx context.Context, cfg *config.Config, db *sql.DB) (*stateStores, error) {
	if cfg.StateBackend != config.BackendRedis {
		return &stateStores{
			pending:   postgres.NewPendingInteractionRepo(db),
			exercises: postgres.NewExerciseRepo(db),
			close:     func() error { return nil },
		}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &stateStores{
		pending:   redisstore.NewPendingStore(client),
		exercises: redisstore.NewExerciseStore(client),
		close:     client.Close,
	}, nil
}

func startMetricsServer(addr string, registry *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("Metrics server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
	return server
}
