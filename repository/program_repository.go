package repository

import (
	"context"

	"github.com/akinalp/antren/models"
)

// ProgramRepository, antrenman programlarına erişimi soyutlar.
// Programlar seed ile gelir; API üzerinden oluşturma/silme yoktur.
type ProgramRepository interface {
	GetAll(ctx context.Context) ([]models.Program, error)
	GetByID(ctx context.Context, id string) (*models.Program, error)
}
