package middleware

import (
	"net/http"

	"github.com/quanamco/payroll-edi/internal/handler/http/response"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

// RequireCompany rejects tokens that are not bound to a company. Every payroll resource is company scoped.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := jwt.ClaimsFromContext(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
