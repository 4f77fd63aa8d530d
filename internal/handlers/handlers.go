package handlers

import (
	"Mintopia/internal/cli/session"
	"Mintopia/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler собирает роутер UI-моста поверх хранилища сессии.
func NewHandler(st *session.Store[any], logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(st))

	sessionHandler := NewSessionHandler(logger)

	r.Get("/api/session", sessionHandler.Get)
	r.Post("/api/session/login", sessionHandler.Login)
	r.Post("/api/session/logout", sessionHandler.Logout)

	return &Handler{Router: r}
}
