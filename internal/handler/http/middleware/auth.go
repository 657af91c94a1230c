package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/domain/auth"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

// AuthRequired lets through requests carrying a verified access token.
// Refresh or service tokens with another "type" claim are rejected.
func AuthRequired(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				logger.DebugContext(r.Context(), "rejected token", slog.String("error", err.Error()))
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if kind, ok := claims["type"].(string); !ok || kind != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
