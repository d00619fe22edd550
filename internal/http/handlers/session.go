package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openhms/hospital-portal/internal/session"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// SessionHandler exchanges a backend-issued token for a portal session. The
// token itself is never validated locally; the backend answers 401 on the
// first real call if it is bad, which is when the session gets cleared.
type SessionHandler struct {
	store  *session.Store
	logger *logging.Logger
}

// NewSessionHandler creates the session handler.
func NewSessionHandler(store *session.Store, logger *logging.Logger) *SessionHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionHandler{store: store, logger: logger}
}

// Routes wires the session endpoints.
func (h *SessionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Get("/{sessionID}", h.Get)
	r.Delete("/{sessionID}", h.Logout)
	return r
}

type loginRequest struct {
	Token string `json:"token"`
}

type loginResponse struct {
	SessionID string           `json:"sessionID"`
	Identity  session.Identity `json:"identity"`
}

// Login parses the token's claims, stores the identity under a fresh
// session ID, and hands both back to the front end.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "token is required"})
		return
	}
	ident, err := session.FromToken(req.Token)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed token"})
		return
	}
	sessionID := uuid.NewString()
	if err := h.store.Save(r.Context(), sessionID, ident); err != nil {
		h.logger.Error("session save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not persist session"})
		return
	}
	writeJSON(w, http.StatusCreated, loginResponse{SessionID: sessionID, Identity: ident})
}

// Get resolves a session ID back to its identity, refreshing nothing.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, err := h.store.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown or expired session"})
			return
		}
		h.logger.Error("session load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not load session"})
		return
	}
	writeJSON(w, http.StatusOK, ident)
}

// Logout drops the session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.logger.Error("session clear failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not clear session"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
