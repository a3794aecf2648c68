package api

import (
	"net/http"
	"strings"
	"time"

	"agencydesk/internal/agent"
	"agencydesk/pkg/config"
	"agencydesk/pkg/session"
)

// SessionAuth validates agent session tokens.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// The agent row is loaded from DB and attached to context; deactivated
// agents are rejected even with a valid token.
func SessionAuth(cfg config.Config, agents *agent.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session token")
				return
			}

			token := strings.TrimSpace(authz[7:])
			s, err := session.Verify(token, cfg.SessionSecret, time.Now())
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid session token")
				return
			}

			a, err := agents.GetByID(r.Context(), s.AgentID)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown agent")
				return
			}
			if !a.Active {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "agent deactivated")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAgent(r.Context(), a)))
		})
	}
}
