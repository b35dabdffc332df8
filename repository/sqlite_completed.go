package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/antren/database"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
)

// sqliteCompletedRepo, CompletedExerciseRepository'nin SQLite implementasyonu.
type sqliteCompletedRepo struct {
	db database.Querier
}

func NewSQLiteCompletedRepo(db database.Querier) CompletedExerciseRepository {
	return &sqliteCompletedRepo{db: db}
}

func (r *sqliteCompletedRepo) Create(ctx context.Context, userID int64, exerciseID string, duration int64, completedAt time.Time) (*models.CompletedExercise, error) {
	query := `
		INSERT INTO completed_exercises (user_id, exercise_id, duration, completed_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, user_id, exercise_id, duration, completed_at`

	ce := &models.CompletedExercise{}
	err := r.db.QueryRowContext(ctx, query, userID, exerciseID, duration, completedAt).Scan(
		&ce.ID, &ce.UserID, &ce.ExerciseID, &ce.Duration, &ce.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completed exercise: %w", err)
	}

	return ce, nil
}

func (r *sqliteCompletedRepo) ListByUser(ctx context.Context, userID int64) ([]models.CompletedExercise, error) {
	// LEFT JOIN: egzersiz sonradan soft delete edilmiş olsa bile kayıt
	// listede kalır, exercise alanı boş döner.
	query := `
		SELECT ce.id, ce.user_id, ce.exercise_id, ce.duration, ce.completed_at,
		       e.id, e.name
		FROM completed_exercises ce
		LEFT JOIN exercises e ON e.id = ce.exercise_id AND e.deleted_at IS NULL
		WHERE ce.user_id = ? AND ce.deleted_at IS NULL
		ORDER BY ce.completed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed exercises: %w", err)
	}
	defer rows.Close()

	completed := []models.CompletedExercise{}
	for rows.Next() {
		var ce models.CompletedExercise
		var exID *int64
		var exName *string

		if err := rows.Scan(
			&ce.ID, &ce.UserID, &ce.ExerciseID, &ce.Duration, &ce.CompletedAt,
			&exID, &exName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan completed exercise row: %w", err)
		}

		if exID != nil && exName != nil {
			ce.Exercise = &models.ExerciseRef{ID: *exID, Name: *exName}
		}
		completed = append(completed, ce)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completed exercise rows: %w", err)
	}

	return completed, nil
}

func (r *sqliteCompletedRepo) SoftDeleteByIDAndUser(ctx context.Context, id string, userID int64) error {
	// user_id şartı sahiplik kontrolünü sorgunun kendisine gömer:
	// başkasının kaydı için affected 0 olur → not found. Kayıt var mı
	// yok mu ayrımı bilinçli olarak yapılmaz.
	query := `
		UPDATE completed_exercises
		SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete completed exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
