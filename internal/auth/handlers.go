package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"agencydesk/internal/agent"
	"agencydesk/internal/api"
	"agencydesk/pkg/config"
	"agencydesk/pkg/session"
)

type Handlers struct {
	Cfg    config.Config
	Agents *agent.Repository
	Log    *zap.SugaredLogger
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AgentID   string    `json:"agentId"`
	Name      string    `json:"name"`
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "email and password are required")
		return
	}

	a, err := h.Agents.FindByEmail(r.Context(), email)
	if err != nil {
		// Same response as a bad password so login probing can't enumerate agents.
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}
	if !a.Active {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "agent deactivated")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}

	now := time.Now()
	ttl := time.Duration(h.Cfg.SessionTTLMinutes) * time.Minute
	token, err := session.Issue(a.ID, a.Email, h.Cfg.SessionSecret, ttl, now)
	if err != nil {
		h.Log.Errorw("issue session token", "err", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(ttl),
		AgentID:   a.ID,
		Name:      a.Name,
	})
}

func (h Handlers) Me(w http.ResponseWriter, r *http.Request) {
	a := api.AgentFromContext(r.Context())
	if a == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing agent identity")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"agentId": a.ID,
		"email":   a.Email,
		"name":    a.Name,
	})
}
