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

// sqliteProgramRepo, ProgramRepository'nin SQLite implementasyonu.
type sqliteProgramRepo struct {
	db database.Querier
}

func NewSQLiteProgramRepo(db database.Querier) ProgramRepository {
	return &sqliteProgramRepo{db: db}
}

func (r *sqliteProgramRepo) GetAll(ctx context.Context) ([]models.Program, error) {
	query := `SELECT id, name, created_at, updated_at FROM programs ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan program row: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

func (r *sqliteProgramRepo) GetByID(ctx context.Context, id string) (*models.Program, error) {
	query := `SELECT id, name, created_at, updated_at FROM programs WHERE id = ?`

	p := &models.Program{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	return p, nil
}
