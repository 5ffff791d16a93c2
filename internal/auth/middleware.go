package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/antarin/antarin/internal/platform/httpx"
	"github.com/antarin/antarin/internal/shared"
)

// Middleware gates protected routes on a valid bearer token and,
// optionally, the admin role claim.
type Middleware struct {
	Codec  *TokenCodec
	Logger *slog.Logger
}

// RequireAuth verifies the bearer token and attaches the principal to the
// request context. Verification failures short-circuit the request.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.RespondError(w, shared.ErrTokenMissing)
			return
		}
		claims, err := m.Codec.Verify(token)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Debug("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			httpx.RespondError(w, err)
			return
		}
		principal := shared.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithPrincipal(r.Context(), principal)))
	})
}

// RequireAdmin rejects principals without the admin role claim. It must run
// after RequireAuth. Authorization is claim-based: demoting a user takes
// effect only once their outstanding tokens expire.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := shared.PrincipalFromContext(r.Context())
		if !ok {
			httpx.RespondError(w, shared.ErrTokenMissing)
			return
		}
		if !principal.IsAdmin() {
			if m.Logger != nil {
				m.Logger.Warn("admin route denied",
					slog.String("username", principal.Username),
					slog.String("path", r.URL.Path))
			}
			httpx.RespondError(w, shared.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
