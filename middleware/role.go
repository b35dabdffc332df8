package middleware

import (
	"net/http"

	"github.com/akinalp/antren/handlers"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
)

// RequireRole, route'u tek bir role kilitler. Auth middleware'den SONRA
// çalışmalıdır — principal context'te olmalı.
//
// Kontrol TAM EŞLEŞMEDİR, hiyerarşi yoktur: ADMIN, USER rolü isteyen bir
// route'a giremez. "Access denied" mesajı bilinçli olarak çevrilmez —
// orijinal API sözleşmesi böyledir.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := handlers.PrincipalFromContext(r.Context())
			if !ok {
				pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if principal.Role != role {
				pkg.WriteMessage(w, http.StatusForbidden, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
