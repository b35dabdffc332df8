package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/antren/database"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
)

// sqliteExerciseRepo, ExerciseRepository'nin SQLite implementasyonu.
type sqliteExerciseRepo struct {
	db database.Querier
}

func NewSQLiteExerciseRepo(db database.Querier) ExerciseRepository {
	return &sqliteExerciseRepo{db: db}
}

func (r *sqliteExerciseRepo) Create(ctx context.Context, input *models.ExerciseUpsert) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (name, difficulty, program_id)
		VALUES (?, ?, ?)
		RETURNING id, name, difficulty, program_id, created_at, updated_at`

	ex := &models.Exercise{}
	err := r.db.QueryRowContext(ctx, query, input.Name, input.Difficulty, input.ProgramID).Scan(
		&ex.ID, &ex.Name, &ex.Difficulty, &ex.ProgramID, &ex.CreatedAt, &ex.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return ex, nil
}

func (r *sqliteExerciseRepo) GetByID(ctx context.Context, id string) (*models.Exercise, error) {
	query := `
		SELECT id, name, difficulty, program_id, created_at, updated_at
		FROM exercises WHERE id = ? AND deleted_at IS NULL`

	ex := &models.Exercise{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ex.ID, &ex.Name, &ex.Difficulty, &ex.ProgramID, &ex.CreatedAt, &ex.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return ex, nil
}

func (r *sqliteExerciseRepo) GetRestricted(ctx context.Context, id string) (*models.ExerciseRestricted, error) {
	query := `
		SELECT id, name, difficulty, program_id
		FROM exercises WHERE id = ? AND deleted_at IS NULL`

	ex := &models.ExerciseRestricted{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ex.ID, &ex.Name, &ex.Difficulty, &ex.ProgramID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return ex, nil
}

func (r *sqliteExerciseRepo) Update(ctx context.Context, id string, input *models.ExerciseUpsert) error {
	query := `
		UPDATE exercises
		SET name = ?, difficulty = ?, program_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, input.Name, input.Difficulty, input.ProgramID, id)
	if err != nil {
		return fmt.Errorf("failed to update exercise: %w", err)
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

func (r *sqliteExerciseRepo) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE exercises
		SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
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

func (r *sqliteExerciseRepo) List(ctx context.Context, q *models.ListExercisesQuery) ([]models.Exercise, int, error) {
	// WHERE parçaları iki sorguda da (liste + sayım) aynı olmalı,
	// yoksa totalPages tutarsız çıkar.
	where := `e.deleted_at IS NULL`
	args := []any{}

	if q.ProgramID != nil {
		where += ` AND e.program_id = ?`
		args = append(args, *q.ProgramID)
	}
	if q.Search != "" {
		where += ` AND lower(e.name) LIKE '%' || lower(?) || '%'`
		args = append(args, q.Search)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM exercises e WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	listQuery := `
		SELECT e.id, e.name, e.difficulty, e.program_id, e.created_at, e.updated_at,
		       p.id, p.name
		FROM exercises e
		LEFT JOIN programs p ON p.id = e.program_id
		WHERE ` + where + `
		ORDER BY e.id ASC
		LIMIT ? OFFSET ?`
	listArgs := append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var ex models.Exercise
		var progID *int64
		var progName *string

		if err := rows.Scan(
			&ex.ID, &ex.Name, &ex.Difficulty, &ex.ProgramID, &ex.CreatedAt, &ex.UpdatedAt,
			&progID, &progName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan exercise row: %w", err)
		}

		if progID != nil && progName != nil {
			ex.Program = &models.ProgramRef{ID: *progID, Name: *progName}
		}
		exercises = append(exercises, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating exercise rows: %w", err)
	}

	return exercises, total, nil
}

func (r *sqliteExerciseRepo) SetProgram(ctx context.Context, exerciseID string, programID *string) error {
	query := `
		UPDATE exercises
		SET program_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, programID, exerciseID)
	if err != nil {
		return fmt.Errorf("failed to set exercise program: %w", err)
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
