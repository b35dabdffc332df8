package repository

import (
	"context"

	"github.com/akinalp/antren/models"
)

// ExerciseRepository, egzersiz kataloğuna erişimi soyutlar.
// Silme soft delete'tir; tüm okumalar deleted_at IS NULL filtresi uygular.
type ExerciseRepository interface {
	// Create, egzersizi ekler ve DB'nin ürettiği alanlarla birlikte döner.
	Create(ctx context.Context, input *models.ExerciseUpsert) (*models.Exercise, error)

	GetByID(ctx context.Context, id string) (*models.Exercise, error)

	// GetRestricted, program ilişkilendirme yanıtları için kısıtlı temsil döner.
	GetRestricted(ctx context.Context, id string) (*models.ExerciseRestricted, error)

	// Update, üç alanı birden yazar. Satır yoksa pkg.ErrNotFound döner.
	Update(ctx context.Context, id string, input *models.ExerciseUpsert) error

	// SoftDelete, deleted_at'i işaretler. Satır yoksa pkg.ErrNotFound döner.
	SoftDelete(ctx context.Context, id string) error

	// List, sayfalı listeyi ve filtreye uyan toplam kayıt sayısını döner.
	// Her satırın Program alanı join ile doldurulur (programsızsa nil).
	List(ctx context.Context, q *models.ListExercisesQuery) ([]models.Exercise, int, error)

	// SetProgram, egzersizin program bağını değiştirir (nil → bağı kopar).
	// Satır yoksa pkg.ErrNotFound döner.
	SetProgram(ctx context.Context, exerciseID string, programID *string) error
}
