package repository

import (
	"context"
	"time"

	"github.com/akinalp/antren/models"
)

// CompletedExerciseRepository, tamamlanan egzersiz kayıtlarına erişimi soyutlar.
// Tüm operasyonlar kullanıcı kapsamındadır: bir kullanıcı başka bir
// kullanıcının kaydını göremez ve silemez.
type CompletedExerciseRepository interface {
	// Create, tamamlama kaydını ekler ve oluşan satırı döner.
	Create(ctx context.Context, userID int64, exerciseID string, duration int64, completedAt time.Time) (*models.CompletedExercise, error)

	// ListByUser, kullanıcının kayıtlarını en yeniden eskiye sıralı döner.
	// Her satırın Exercise alanı join ile doldurulur.
	ListByUser(ctx context.Context, userID int64) ([]models.CompletedExercise, error)

	// SoftDeleteByIDAndUser, kaydı siler — ama sadece kayıt o kullanıcınınsa.
	// Kayıt yoksa veya başkasınınsa pkg.ErrNotFound döner.
	SoftDeleteByIDAndUser(ctx context.Context, id string, userID int64) error
}
