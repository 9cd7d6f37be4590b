package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"crmdesk/internal/config"
	v1 "crmdesk/internal/infrastructure/http/v1"
	"crmdesk/internal/infrastructure/kv"
	"crmdesk/internal/infrastructure/notify"
	"crmdesk/internal/infrastructure/storage/postgres"
	"crmdesk/pkg/logger"
)

func main() {
	// .env is optional, real deployments configure via the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Default().Fatalw("failed to load config", "error", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Default().Fatalw("failed to create logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatalw("server exited with error", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.DB.URL)
	poolCfg.MaxConns = cfg.DB.MaxConns
	poolCfg.MinConns = cfg.DB.MinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Infow("connected to database")

	txManager := postgres.NewTxManager(pool)

	var store kv.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := kv.NewRedisStore(kv.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = redisStore.Close() }()
		store = redisStore
		log.Infow("trash ledger backed by redis", "addr", cfg.Redis.Addr)
	} else {
		store = kv.NewMemoryStore()
		log.Infow("trash ledger backed by in-memory store, contents are lost on restart")
	}

	var notifier notify.Notifier
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaNotifier, err := notify.NewKafkaNotifier(notify.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			return err
		}
		notifier = kafkaNotifier
		log.Infow("activity events published to kafka", "topic", cfg.Kafka.Topic)
	} else {
		notifier = notify.NewLogNotifier()
	}
	defer func() { _ = notifier.Close() }()

	router, err := v1.NewRouter(v1.Deps{
		Pool:      pool,
		TxManager: txManager,
		KV:        store,
		JWTSecret: cfg.Auth.JWTSecret,
		Notifier:  notifier,
		Log:       log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Infow("server stopped")
	return nil
}
