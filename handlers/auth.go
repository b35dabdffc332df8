package handlers

import (
	"io"
	"net/http"

	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
	"github.com/akinalp/antren/validation"
)

// refreshCookieName — refresh token'ın taşındığı HttpOnly cookie.
const refreshCookieName = "refreshToken"

// AuthHandler, kayıt/giriş/token yenileme endpoint'lerini karşılar.
type AuthHandler struct {
	authService services.AuthService

	// production, cookie bayraklarını etkiler: Secure + SameSite=Strict.
	production      bool
	refreshExpHours int
}

func NewAuthHandler(authService services.AuthService, production bool, refreshExpHours int) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		production:      production,
		refreshExpHours: refreshExpHours,
	}
}

// Register — POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "auth.errors.registrationFailed")
		return
	}

	input, issues := validation.ParseRegisterBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	result, err := h.authService.Register(r.Context(), input)
	if err != nil {
		rp.FromError(err, "auth.errors.registrationFailed")
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	rp.Success("auth.registered", pkg.SuccessOpts{
		Status: http.StatusCreated,
		Data: map[string]any{
			"accessToken": result.AccessToken,
			"user":        result.User,
		},
	})
}

// Login — POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rp.FromError(err, "auth.errors.loginFailed")
		return
	}

	input, issues := validation.ParseLoginBody(body)
	if issues != nil {
		rp.ValidationError(issues)
		return
	}

	result, err := h.authService.Login(r.Context(), input)
	if err != nil {
		rp.FromError(err, "auth.errors.loginFailed")
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	rp.Success("auth.loggedIn", pkg.SuccessOpts{
		Data: map[string]any{
			"accessToken": result.AccessToken,
			"user":        result.User,
		},
	})
}

// Refresh — POST /auth/refresh
//
// Refresh token body'den değil cookie'den okunur; istemci JS'i token'a
// hiç dokunmaz. Yanıt yeni bir access token taşır, cookie değişmez.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		rp.Error("auth.errors.missingRefreshToken", pkg.ErrorOpts{Status: http.StatusUnauthorized})
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		rp.FromError(err, "auth.errors.refreshFailed")
		return
	}

	rp.Success("auth.tokenRefreshed", pkg.SuccessOpts{
		Data: map[string]any{
			"accessToken": result.AccessToken,
			"user":        result.User,
		},
	})
}

// Logout — POST /auth/logout
//
// Server tarafında state yok — logout sadece cookie'yi düşürmektir.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	rp := pkg.NewResponder(w, r)

	h.clearRefreshCookie(w)
	rp.Success("auth.loggedOut", pkg.SuccessOpts{})
}

// ─── Private Helpers ───

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.refreshExpHours * 3600,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: sameSite,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: sameSite,
	})
}
