// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturur: şifre hash'leme,
// token üretimi, çakışma ve sahiplik kuralları burada yaşar.
//
// Service ASLA http.Request/Response bilmez — domain modelleri alır/verir.
// Beklenen hata durumları *pkg.AppError olarak döner (status + mesaj
// anahtarı taşır); beklenmeyen hatalar sarmalanmış düz error'dur ve
// handler'da 500 olarak maskelenir.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost — orijinal API sözleşmesiyle aynı maliyet.
const bcryptCost = 10

// AuthService, kayıt/giriş/token yenileme akışlarını yönetir.
type AuthService interface {
	Register(ctx context.Context, input *models.RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *models.LoginInput) (*AuthResult, error)

	// Refresh, geçerli bir refresh token karşılığında yeni access token üretir.
	// Refresh token YENİLENMEZ — ömrü dolana kadar aynı cookie kullanılır.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// ValidateAccessToken, Bearer token'ı doğrular ve claims döner.
	ValidateAccessToken(tokenString string) (*models.AccessClaims, error)
}

// AuthResult, auth operasyonlarının dönüşü. Refresh akışında RefreshToken
// boştur — handler cookie'ye sadece doluysa yazar.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.SanitizedUser
}

type authService struct {
	userRepo      repository.UserRepository
	accessSecret  string
	refreshSecret string
	accessExp     time.Duration
	refreshExp    time.Duration
}

// NewAuthService, constructor.
//
// Secret'lar boş olabilir — kontrol istek anında yapılır ve eksikse
// config hatası (500) döner. Bu, orijinal API'nin davranışıdır: uygulama
// secret'sız ayağa kalkar, sadece auth akışları çalışmaz.
func NewAuthService(
	userRepo repository.UserRepository,
	accessSecret string,
	refreshSecret string,
	accessExpMinutes int,
	refreshExpHours int,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessExp:     time.Duration(accessExpMinutes) * time.Minute,
		refreshExp:    time.Duration(refreshExpHours) * time.Hour,
	}
}

// Register, yeni kullanıcı kaydı oluşturur.
//
// Çakışma kontrolü tek sorguyla yapılır ve email önceliklidir: hem email
// hem nick doluysa istemci önce emailTaken görür. Secret kontrolünün
// kullanıcı OLUŞTURULDUKTAN sonra yapıldığına dikkat — orijinal akış
// böyledir ve sözleşmenin parçasıdır.
func (s *authService) Register(ctx context.Context, input *models.RegisterInput) (*AuthResult, error) {
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	existing, err := s.userRepo.GetByEmailOrNick(ctx, input.Email, input.NickName)
	if err != nil && !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Email == input.Email {
			return nil, pkg.Conflict("auth.errors.emailTaken")
		}
		return nil, pkg.Conflict("auth.errors.nickTaken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         input.Name,
		Surname:      input.Surname,
		NickName:     input.NickName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Age:          input.Age,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Eşzamanlı kayıt çakışması: ön kontrolü geçip UNIQUE'e takılmış.
		if errors.Is(err, pkg.ErrAlreadyExists) {
			if strings.Contains(err.Error(), "email") {
				return nil, pkg.Conflict("auth.errors.emailTaken")
			}
			return nil, pkg.Conflict("auth.errors.nickTaken")
		}
		return nil, err
	}

	if s.accessSecret == "" || s.refreshSecret == "" {
		return nil, pkg.Config("auth.errors.registrationConfig", errors.New("jwt secrets are not configured"))
	}

	accessToken, refreshToken, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitize(),
	}, nil
}

// Login, email + şifre ile giriş yapar.
//
// Kullanıcı yok ile şifre yanlış AYNI hatayı döner — hangi email'lerin
// kayıtlı olduğu yanıtlardan çıkarılamamalı.
func (s *authService) Login(ctx context.Context, input *models.LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.Unauthorized("auth.errors.invalidCredentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, pkg.Unauthorized("auth.errors.invalidCredentials")
	}

	if s.accessSecret == "" || s.refreshSecret == "" {
		return nil, pkg.Config("auth.errors.loginConfig", errors.New("jwt secrets are not configured"))
	}

	accessToken, refreshToken, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitize(),
	}, nil
}

// Refresh, refresh token'ı doğrulayıp yeni access token üretir.
// Token'daki kullanıcı DB'den yeniden okunur: silinen kullanıcının
// elindeki geçerli token işe yaramaz.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if s.accessSecret == "" || s.refreshSecret == "" {
		return nil, pkg.Config("auth.errors.refreshFailed", errors.New("jwt secrets are not configured"))
	}

	claims := &models.RefreshClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, pkg.Unauthorized("auth.errors.invalidRefreshToken")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.Unauthorized("auth.errors.invalidRefreshToken")
		}
		return nil, err
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken: accessToken,
		User:        user.Sanitize(),
	}, nil
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
func (s *authService) ValidateAccessToken(tokenString string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	return claims, nil
}

// ─── Private Helpers ───

func (s *authService) signAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.AccessClaims{
		UserID: strconv.FormatInt(user.ID, 10),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *authService) generateTokenPair(user *models.User) (access, refresh string, err error) {
	access, err = s.signAccessToken(user)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	refreshClaims := &models.RefreshClaims{
		UserID: strconv.FormatInt(user.ID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshExp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.refreshSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return access, refresh, nil
}
