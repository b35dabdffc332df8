package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseCreate(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)

	// program_id 1: migration seed'indeki 'Full Body Beginner'.
	ex := createTestExercise(t, repo, "Push Up", models.DifficultyEasy, 1)

	assert.Equal(t, int64(1), ex.ID)
	assert.Equal(t, "Push Up", ex.Name)
	require.NotNil(t, ex.ProgramID)
	assert.Equal(t, int64(1), *ex.ProgramID)
	assert.False(t, ex.CreatedAt.IsZero())
}

func TestExerciseGet(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)
	createTestExercise(t, repo, "Push Up", models.DifficultyEasy, 1)

	t.Run("full row", func(t *testing.T) {
		ex, err := repo.GetByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, models.DifficultyEasy, ex.Difficulty)
	})

	t.Run("restricted view", func(t *testing.T) {
		ex, err := repo.GetRestricted(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "Push Up", ex.Name)
		require.NotNil(t, ex.ProgramID)
		assert.Equal(t, int64(1), *ex.ProgramID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "9")
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})
}

func TestExerciseList(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)
	for i := 1; i <= 12; i++ {
		programID := int64(1)
		if i > 8 {
			programID = 2
		}
		createTestExercise(t, repo, fmt.Sprintf("Exercise %02d", i), models.DifficultyMedium, programID)
	}

	t.Run("pagination", func(t *testing.T) {
		items, total, err := repo.List(context.Background(), &models.ListExercisesQuery{Page: 2, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, items, 5)
		assert.Equal(t, "Exercise 06", items[0].Name)
	})

	t.Run("program filter", func(t *testing.T) {
		programID := int64(2)
		items, total, err := repo.List(context.Background(), &models.ListExercisesQuery{
			Page: 1, Limit: 10, ProgramID: &programID,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, items, 4)
		assert.Equal(t, "Exercise 09", items[0].Name)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		items, total, err := repo.List(context.Background(), &models.ListExercisesQuery{
			Page: 1, Limit: 10, Search: "EXERCISE 01",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Exercise 01", items[0].Name)
	})

	t.Run("program join is populated", func(t *testing.T) {
		items, _, err := repo.List(context.Background(), &models.ListExercisesQuery{Page: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Program)
		assert.Equal(t, "Full Body Beginner", items[0].Program.Name)
	})

	t.Run("soft-deleted rows are invisible", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(context.Background(), "1"))

		_, total, err := repo.List(context.Background(), &models.ListExercisesQuery{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 11, total)
	})
}

func TestExerciseUpdate(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)
	createTestExercise(t, repo, "Push Up", models.DifficultyEasy, 1)

	err := repo.Update(context.Background(), "1", &models.ExerciseUpsert{
		Name: "Diamond Push Up", Difficulty: models.DifficultyHard, ProgramID: 2,
	})
	require.NoError(t, err)

	ex, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Diamond Push Up", ex.Name)
	assert.Equal(t, models.DifficultyHard, ex.Difficulty)
	require.NotNil(t, ex.ProgramID)
	assert.Equal(t, int64(2), *ex.ProgramID)

	err = repo.Update(context.Background(), "9", &models.ExerciseUpsert{
		Name: "x", Difficulty: models.DifficultyEasy, ProgramID: 1,
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestExerciseSoftDelete(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)
	createTestExercise(t, repo, "Push Up", models.DifficultyEasy, 1)

	require.NoError(t, repo.SoftDelete(context.Background(), "1"))

	_, err := repo.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// İkinci silme aynı satırı artık göremez.
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), "1"), pkg.ErrNotFound)
}

func TestSetProgram(t *testing.T) {
	repo := NewSQLiteExerciseRepo(newTestDB(t).Conn)
	createTestExercise(t, repo, "Push Up", models.DifficultyEasy, 1)

	t.Run("move to another program", func(t *testing.T) {
		target := "2"
		require.NoError(t, repo.SetProgram(context.Background(), "1", &target))

		ex, err := repo.GetRestricted(context.Background(), "1")
		require.NoError(t, err)
		require.NotNil(t, ex.ProgramID)
		assert.Equal(t, int64(2), *ex.ProgramID)
	})

	t.Run("detach with nil", func(t *testing.T) {
		require.NoError(t, repo.SetProgram(context.Background(), "1", nil))

		ex, err := repo.GetRestricted(context.Background(), "1")
		require.NoError(t, err)
		assert.Nil(t, ex.ProgramID)
	})

	t.Run("missing exercise", func(t *testing.T) {
		assert.ErrorIs(t, repo.SetProgram(context.Background(), "9", nil), pkg.ErrNotFound)
	})
}
