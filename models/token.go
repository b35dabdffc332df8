package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims, access token'ın payload'ı.
//
// UserID bilinçli olarak string'dir: token'daki id her zaman stringified
// taşınır, sayıya çevirme sadece response sınırında yapılır.
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware) tarafından kullanılır — circular dependency önlenir.
type AccessClaims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims, refresh token'ın payload'ı. Sadece kullanıcı kimliği taşır —
// rol bilgisi refresh sırasında DB'den yeniden okunur.
type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
