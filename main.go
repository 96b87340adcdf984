package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/auth"
	"homerepair/internal/config"
	"homerepair/internal/database"
	"homerepair/internal/logging"
	"homerepair/internal/revocation"
	"homerepair/internal/routes"
)

func main() {
	envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	if envErr != nil {
		logger.Debug("main: .env not loaded", zap.Error(envErr))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to open store", zap.Error(err))
	}

	var denylist revocation.Denylist = revocation.Noop{}
	if cfg.TokenDenylist {
		redisDenylist, err := revocation.Dial(context.Background(), revocation.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("main: token denylist unavailable", zap.Error(err))
		}
		defer redisDenylist.Close()
		denylist = redisDenylist
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	router := routes.NewRouter(routes.Dependencies{
		Store:            store,
		Tokens:           tokens,
		Cookies:          auth.NewCookiePolicy(cfg.IsProduction(), cfg.TokenTTL),
		Denylist:         denylist,
		Logger:           logger,
		ClientOrigins:    cfg.ClientOrigins,
		RequestTimeout:   cfg.RequestTimeout,
		DefaultPageLimit: cfg.DefaultPageLimit,
		PopularLimit:     cfg.PopularLimit,
		RateLimitPerMin:  cfg.RateLimitPerMin,
		TrustedProxies:   cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("main: starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := store.Close(ctx); err != nil {
		logger.Warn("main: store close failed", zap.Error(err))
	}
	logger.Info("main: server stopped gracefully")
}

// openStore returns the configured store. An unreachable mongo deployment
// is logged and the process keeps serving; requests fail until it recovers.
func openStore(cfg config.Config, logger *zap.Logger) (database.Store, error) {
	if cfg.StoreDriver == "memory" {
		logger.Warn("main: using in-memory store, data is lost on restart")
		return database.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoConnectionURI())
	if err != nil {
		return nil, err
	}
	store := database.NewMongoStore(client, cfg.DBName)

	if err := store.Ping(ctx); err != nil {
		logger.Warn("main: mongo ping failed, continuing", zap.Error(err))
		return store, nil
	}
	logger.Info("main: mongo connected", zap.String("db", cfg.DBName))

	if err := database.EnsureServiceIndexes(store.Database()); err != nil {
		logger.Warn("main: service index warning", zap.Error(err))
	}
	if err := database.EnsureBookingIndexes(store.Database()); err != nil {
		logger.Warn("main: booking index warning", zap.Error(err))
	}
	return store, nil
}
