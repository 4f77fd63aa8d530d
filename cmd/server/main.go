package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Mintopia/internal/cli/bootstrap"
	"Mintopia/internal/config"
	"Mintopia/internal/handlers"
	"Mintopia/internal/logger"
	"Mintopia/internal/middleware"
)

func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer logger.Sync(sugar)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, cleanup, err := bootstrap.OpenSession(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to open session storage", "error", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			sugar.Errorw("failed to close storage", "error", err)
		}
	}()

	h := handlers.NewHandler(st, sugar)
	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting UI bridge",
		"addr", cfg.BaseURL,
		"storage", cfg.StorageBackend,
		"sessionKey", cfg.SessionKey,
		"authenticated", st.IsAuthenticated(),
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Errorw("Server failed", "error", err)
	}
}
