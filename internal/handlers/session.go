package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"Mintopia/internal/cli/session"

	"go.uber.org/zap"
)

// maxUserBody ограничивает размер тела запроса login.
const maxUserBody = 1 << 20

type SessionHandler struct {
	Logger *zap.SugaredLogger
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
	User          any  `json:"user"`
}

func NewSessionHandler(logger *zap.SugaredLogger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionHandler{Logger: logger}
}

// Get отдаёт текущее состояние сессии.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, session.MustFrom[any](r.Context()))
}

// Login принимает пользователя в теле запроса (произвольный JSON) и делает его текущим.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	st := session.MustFrom[any](r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUserBody))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	var user any
	if err := session.DecodeJSON(body, &user); err != nil {
		http.Error(w, "invalid user json", http.StatusBadRequest)
		return
	}
	if err := st.Login(r.Context(), user); err != nil {
		if errors.Is(err, session.ErrEmptyUser) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeState(w, st)
}

// Logout очищает сессию.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st := session.MustFrom[any](r.Context())
	if err := st.Logout(r.Context()); err != nil {
		h.Logger.Errorw("logout failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeState(w, st)
}

func (h *SessionHandler) writeState(w http.ResponseWriter, st session.Accessor[any]) {
	user, ok := st.CurrentUser()
	resp := sessionResponse{Authenticated: ok, User: user}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Errorw("failed to encode response", "error", err)
	}
}
