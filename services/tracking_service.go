package services

import (
	"context"
	"errors"
	"time"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/repository"
)

// TrackingService, kullanıcının egzersiz tamamlama kayıtlarını yönetir.
// Tüm operasyonlar doğrulanmış kimliğin userID'si kapsamındadır.
type TrackingService interface {
	// Track, tamamlama kaydı oluşturur. completedAt server saatidir,
	// istemciden alınmaz.
	Track(ctx context.Context, userID int64, exerciseID string, input *models.TrackInput) (*models.CompletedExercise, error)

	// Completed, kullanıcının kayıtlarını en yeniden eskiye döner.
	Completed(ctx context.Context, userID int64) ([]models.CompletedExercise, error)

	// Remove, kaydı siler. Kayıt yoksa veya başka kullanıcınınsa 404 —
	// iki durum yanıtla ayrıştırılmaz.
	Remove(ctx context.Context, userID int64, completedID string) error
}

type trackingService struct {
	completedRepo repository.CompletedExerciseRepository
	exerciseRepo  repository.ExerciseRepository
}

func NewTrackingService(
	completedRepo repository.CompletedExerciseRepository,
	exerciseRepo repository.ExerciseRepository,
) TrackingService {
	return &trackingService{completedRepo: completedRepo, exerciseRepo: exerciseRepo}
}

func (s *trackingService) Track(ctx context.Context, userID int64, exerciseID string, input *models.TrackInput) (*models.CompletedExercise, error) {
	// Egzersiz var olmalı — FK ihlalini beklemek yerine önce okunur ki
	// istemci anlamlı bir 404 alsın.
	if _, err := s.exerciseRepo.GetRestricted(ctx, exerciseID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("exercise.notFound")
		}
		return nil, err
	}

	return s.completedRepo.Create(ctx, userID, exerciseID, input.Duration, time.Now().UTC())
}

func (s *trackingService) Completed(ctx context.Context, userID int64) ([]models.CompletedExercise, error) {
	return s.completedRepo.ListByUser(ctx, userID)
}

func (s *trackingService) Remove(ctx context.Context, userID int64, completedID string) error {
	if err := s.completedRepo.SoftDeleteByIDAndUser(ctx, completedID, userID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFound("exercise.trackedNotFound")
		}
		return err
	}
	return nil
}
