package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/akinalp/antren/handlers"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleUserRepo, middleware testleri için tek kullanıcılık UserRepository.
type singleUserRepo struct {
	user *models.User
}

func (s *singleUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = 1
	cp := *user
	s.user = &cp
	return nil
}

func (s *singleUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		cp := *s.user
		return &cp, nil
	}
	return nil, pkg.ErrNotFound
}

func (s *singleUserRepo) GetByEmailOrNick(_ context.Context, _, _ string) (*models.User, error) {
	return nil, pkg.ErrNotFound
}

func (s *singleUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if s.user != nil && id == strconv.FormatInt(s.user.ID, 10) {
		cp := *s.user
		return &cp, nil
	}
	return nil, pkg.ErrNotFound
}

func (s *singleUserRepo) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.Principal{UserID: u.ID, Role: u.Role}, nil
}

func (s *singleUserRepo) GetAllBasic(_ context.Context) ([]models.UserBasic, error) { return nil, nil }

func (s *singleUserRepo) GetProfile(_ context.Context, _ int64) (*models.UserProfile, error) {
	return nil, pkg.ErrNotFound
}

func (s *singleUserRepo) GetAll(_ context.Context) ([]models.User, error) { return nil, nil }

func (s *singleUserRepo) Update(_ context.Context, _ string, _ *models.UserUpdate) error {
	return pkg.ErrNotFound
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["message"]
}

// newAuthFixture, gerçek kayıt akışıyla imzalı bir access token üretir.
func newAuthFixture(t *testing.T, role models.Role) (*AuthMiddleware, string) {
	t.Helper()

	repo := &singleUserRepo{}
	svc := services.NewAuthService(repo, "access-secret", "refresh-secret", 15, 24)

	result, err := svc.Register(context.Background(), &models.RegisterInput{
		Name: "Ada", Surname: "Lovelace", NickName: "ada",
		Email: "ada@example.com", Password: "secret1", Role: role,
	})
	require.NoError(t, err)

	return NewAuthMiddleware(svc, repo), result.AccessToken
}

func TestAuthRequire(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := handlers.PrincipalFromContext(r.Context())
		require.True(t, ok, "principal must be in context")
		assert.Equal(t, int64(1), principal.UserID)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("valid token reaches the handler with principal", func(t *testing.T) {
		mw, token := newAuthFixture(t, models.RoleUser)

		r := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		mw.Require(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		mw, _ := newAuthFixture(t, models.RoleUser)

		w := httptest.NewRecorder()
		mw.Require(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", messageOf(t, w))
	})

	t.Run("tampered token", func(t *testing.T) {
		mw, token := newAuthFixture(t, models.RoleUser)

		r := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		r.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()

		mw.Require(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", messageOf(t, w))
	})

	t.Run("deleted user behind a valid token", func(t *testing.T) {
		mw, token := newAuthFixture(t, models.RoleUser)

		// Kullanıcı token alındıktan sonra silinmiş gibi davran.
		mw.userRepo.(*singleUserRepo).user = nil

		r := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		mw.Require(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	withPrincipal := func(r *http.Request, role models.Role) *http.Request {
		principal := &models.Principal{UserID: 1, Role: role}
		return r.WithContext(context.WithValue(r.Context(), handlers.PrincipalContextKey, principal))
	}

	t.Run("matching role passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withPrincipal(httptest.NewRequest(http.MethodGet, "/users/all", nil), models.RoleUser)

		RequireRole(models.RoleUser)(okHandler).ServeHTTP(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("admin cannot use a user route", func(t *testing.T) {
		// Rol kontrolü hiyerarşik değildir, tam eşleşme aranır.
		w := httptest.NewRecorder()
		r := withPrincipal(httptest.NewRequest(http.MethodGet, "/users/all", nil), models.RoleAdmin)

		RequireRole(models.RoleUser)(okHandler).ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Access denied", messageOf(t, w))
	})

	t.Run("user cannot use an admin route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withPrincipal(httptest.NewRequest(http.MethodPost, "/admin/exercises", nil), models.RoleUser)

		RequireRole(models.RoleAdmin)(okHandler).ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing principal", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequireRole(models.RoleUser)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/all", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
