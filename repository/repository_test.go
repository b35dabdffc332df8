package repository

import (
	"context"
	"testing"

	"github.com/akinalp/antren/database"
	"github.com/akinalp/antren/models"
	"github.com/stretchr/testify/require"
)

// newTestDB, gerçek şema ve seed'lerle in-memory SQLite açar.
//
// MaxOpenConns(1) şart: :memory: veritabanı bağlantı başına yaşar, pool
// ikinci bir bağlantı açarsa boş bir veritabanı görür.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(":memory:", database.Migrations())
	require.NoError(t, err)
	db.Conn.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func createTestUser(t *testing.T, repo UserRepository, email, nick string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Ada",
		Surname:      "Lovelace",
		NickName:     nick,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createTestExercise(t *testing.T, repo ExerciseRepository, name string, difficulty models.Difficulty, programID int64) *models.Exercise {
	t.Helper()

	ex, err := repo.Create(context.Background(), &models.ExerciseUpsert{
		Name:       name,
		Difficulty: difficulty,
		ProgramID:  programID,
	})
	require.NoError(t, err)
	return ex
}
