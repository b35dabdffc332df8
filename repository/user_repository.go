// Package repository, veri erişim katmanını tanımlar.
//
// Her entity için bir interface + SQLite implementasyonu vardır. Servisler
// sadece interface'i görür — test'lerde fake implementasyon geçilebilir.
//
// Path'ten gelen id'ler interface'lere HAM STRING olarak iletilir:
// doğrulama katmanı ^\d+$ garantisini verir, SQLite tip affinity'si
// karşılaştırmayı sayısal yapar. Sayıya çevirme sadece response sınırında
// gerekir.
package repository

import (
	"context"

	"github.com/akinalp/antren/models"
)

// UserRepository, kullanıcı tablosuna erişimi soyutlar.
// Tüm okumalar soft delete filtresi uygular (deleted_at IS NULL).
type UserRepository interface {
	// Create, kullanıcıyı ekler ve DB'nin ürettiği alanları user üzerine yazar.
	// Email veya nick çakışırsa pkg.ErrAlreadyExists sarmalanmış döner.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail, giriş akışı için kullanıcıyı email ile arar.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByEmailOrNick, kayıt öncesi çakışma kontrolü için tek sorguda arar.
	// Hem email hem nick başka kayıtlarda doluysa email eşleşmesi önceliklidir.
	GetByEmailOrNick(ctx context.Context, email, nickName string) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetPrincipal, auth middleware'in her istekte yaptığı hafif okuma:
	// sadece id ve rol döner.
	GetPrincipal(ctx context.Context, id string) (*models.Principal, error)

	// GetAllBasic, herkese açık kullanıcı listesi için {id, nickName} döner.
	GetAllBasic(ctx context.Context) ([]models.UserBasic, error)

	// GetProfile, kullanıcının kendi profil görünümünü döner.
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)

	// GetAll, admin listesi için tüm kullanıcıları döner.
	GetAll(ctx context.Context) ([]models.User, error)

	// Update, sadece verilen alanları günceller (nil alanlar atlanır).
	// Hiçbir satır etkilenmezse pkg.ErrNotFound döner.
	Update(ctx context.Context, id string, update *models.UserUpdate) error
}
