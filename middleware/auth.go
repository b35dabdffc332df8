// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Her korumalı istek şu zincirden geçer: RequestID → Auth → Role → Handler.
// Middleware kendi işini yapar, sorun yoksa next'i çağırır; sorun varsa
// yanıtı kendisi yazar ve zincir orada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/antren/handlers"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/repository"
	"github.com/akinalp/antren/services"
)

// AuthMiddleware, JWT access token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Require, Bearer token zorunlu kılar.
//
// Token'daki rol DEĞİL, DB'deki güncel rol context'e konur: her istekte
// principal yeniden okunur. Böylece silinen kullanıcının elindeki geçerli
// token işe yaramaz ve rol değişikliği anında etkili olur.
//
// Tüm başarısızlık dalları aynı gövdeyi döner — neden ayrıştırılmaz.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// claims.UserID ham string'dir — repository'ye olduğu gibi gider.
		principal, err := m.userRepo.GetPrincipal(r.Context(), claims.UserID)
		if err != nil {
			pkg.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), handlers.PrincipalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
