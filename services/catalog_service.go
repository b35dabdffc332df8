package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/repository"
)

// CatalogService, egzersiz kataloğu ve program ilişkilerini yönetir.
type CatalogService interface {
	CreateExercise(ctx context.Context, input *models.ExerciseUpsert) (*models.Exercise, error)

	// UpdateExercise, günceller ve güncel halini döner.
	UpdateExercise(ctx context.Context, id string, input *models.ExerciseUpsert) (*models.Exercise, error)

	// DeleteExercise, soft delete yapar ve silinen kaydı döner — yanıt
	// mesajı egzersizin adını içerir.
	DeleteExercise(ctx context.Context, id string) (*models.Exercise, error)

	ListExercises(ctx context.Context, q *models.ListExercisesQuery) (*ExerciseListing, error)

	ListPrograms(ctx context.Context) ([]models.Program, error)

	// AddExerciseToProgram, egzersizi programa bağlar ve güncel kısıtlı
	// temsili döner. Egzersiz başka bir programdaysa bağ sessizce taşınır.
	AddExerciseToProgram(ctx context.Context, programID, exerciseID string) (*models.ExerciseRestricted, error)

	// RemoveExerciseFromProgram, egzersizin program bağını koparır.
	// Egzersiz o programda değilse 400 döner.
	RemoveExerciseFromProgram(ctx context.Context, programID, exerciseID string) error
}

// ExerciseListing, sayfalı liste sonucu. Meta alanları handler'da
// yanıtın meta bölümüne yazılır.
type ExerciseListing struct {
	Items      []models.Exercise
	Page       int
	TotalPages int
	TotalItems int
}

type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	programRepo  repository.ProgramRepository
}

func NewCatalogService(exerciseRepo repository.ExerciseRepository, programRepo repository.ProgramRepository) CatalogService {
	return &catalogService{exerciseRepo: exerciseRepo, programRepo: programRepo}
}

func (s *catalogService) CreateExercise(ctx context.Context, input *models.ExerciseUpsert) (*models.Exercise, error) {
	return s.exerciseRepo.Create(ctx, input)
}

// UpdateExercise, update-then-refetch kalıbını uygular: önce yazma denenır,
// satır yoksa 404; sonra güncel hali okunur. İki adım arasında kayıt
// silinmişse yine 404 — istemci açısından fark yok.
func (s *catalogService) UpdateExercise(ctx context.Context, id string, input *models.ExerciseUpsert) (*models.Exercise, error) {
	if err := s.exerciseRepo.Update(ctx, id, input); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("exercise.notFound")
		}
		return nil, err
	}

	ex, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("exercise.notFound")
		}
		return nil, err
	}

	return ex, nil
}

// DeleteExercise, silmeden önce kaydı okur — yanıt mesajında adı geçer.
func (s *catalogService) DeleteExercise(ctx context.Context, id string) (*models.Exercise, error) {
	ex, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("exercise.notFound")
		}
		return nil, err
	}

	if err := s.exerciseRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("exercise.notFound")
		}
		return nil, err
	}

	return ex, nil
}

func (s *catalogService) ListExercises(ctx context.Context, q *models.ListExercisesQuery) (*ExerciseListing, error) {
	items, total, err := s.exerciseRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	// ceil(total / limit) — tam sayı aritmetiğiyle.
	totalPages := (total + q.Limit - 1) / q.Limit

	return &ExerciseListing{
		Items:      items,
		Page:       q.Page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func (s *catalogService) ListPrograms(ctx context.Context) ([]models.Program, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *catalogService) AddExerciseToProgram(ctx context.Context, programID, exerciseID string) (*models.ExerciseRestricted, error) {
	// İki kayıt da var olmalı; hangisinin eksik olduğu yanıtta ayrıştırılmaz.
	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return nil, err
	}
	if _, err := s.exerciseRepo.GetRestricted(ctx, exerciseID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return nil, err
	}

	if err := s.exerciseRepo.SetProgram(ctx, exerciseID, &programID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return nil, err
	}

	ex, err := s.exerciseRepo.GetRestricted(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return nil, err
	}

	return ex, nil
}

func (s *catalogService) RemoveExerciseFromProgram(ctx context.Context, programID, exerciseID string) error {
	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return err
	}

	ex, err := s.exerciseRepo.GetRestricted(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return err
	}

	// Üyelik kontrolü sayısal yapılır — path'ten gelen id string'dir,
	// kayıttaki program_id sayıdır.
	wantID, err := strconv.ParseInt(programID, 10, 64)
	if err != nil {
		return pkg.BadRequest("program.errors.exerciseNotInProgram")
	}
	if ex.ProgramID == nil || *ex.ProgramID != wantID {
		return pkg.BadRequest("program.errors.exerciseNotInProgram")
	}

	if err := s.exerciseRepo.SetProgram(ctx, exerciseID, nil); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFound("program.errors.programOrExerciseMissing")
		}
		return err
	}

	return nil
}
