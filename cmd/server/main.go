package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkvault/internal/auth"
	"linkvault/internal/config"
	"linkvault/internal/handler"
	"linkvault/internal/middleware"
	"linkvault/internal/repository"
	"linkvault/internal/service"
	authz "linkvault/internal/service/auth"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logOutput, closeLog, err := cfg.LogWriter()
	if err != nil {
		log.Fatalf("Failed to set up log file: %v", err)
	}
	defer closeLog()

	logger := config.NewLogger(cfg.Environment, logOutput)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"storage", cfg.Storage,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Session tokens
	tokens, err := auth.NewTokenManager(auth.TokenConfig{
		Secret:         cfg.TokenSecret,
		PreviousSecret: cfg.TokenPreviousSecret,
		TTL:            cfg.TokenTTL,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}
	defer tokens.Close()

	hasher := auth.NewBcryptHasher(0)
	authorizer := authz.NewOwnerBasedAuthorizer(store.Folders)

	// Services
	authService := service.NewAuthService(store.Users, hasher, tokens, tokens, logger)
	folderService := service.NewFolderService(store.Folders, store.Links, store.TxManager, logger)
	linkService := service.NewLinkService(store.Links, authorizer, logger)

	logger.Info("services initialized")

	mux := handler.NewRouter(handler.Handlers{
		Auth:   handler.NewAuthHandler(authService, cfg.IsProd(), logger),
		Folder: handler.NewFolderHandler(folderService, logger),
		Link:   handler.NewLinkHandler(linkService, logger),
		Health: handler.NewHealthHandler(store, logger),
	}, handler.RouterConfig{
		AuthService: authService,
		AuthLimiter: middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		Logger:      logger,
	})

	// Middleware, outermost last
	var h http.Handler = mux
	h = middleware.RequestLogger(logger)(h)
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
