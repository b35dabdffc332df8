package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/akinalp/antren/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracking(t *testing.T) (TrackingService, *fakeCompletedRepo, *fakeExerciseRepo) {
	t.Helper()
	completedRepo := newFakeCompletedRepo()
	exerciseRepo := newFakeExerciseRepo()
	return NewTrackingService(completedRepo, exerciseRepo), completedRepo, exerciseRepo
}

func TestTrack(t *testing.T) {
	t.Run("records completion with server time", func(t *testing.T) {
		svc, _, exerciseRepo := newTracking(t)
		_, err := exerciseRepo.Create(context.Background(), &models.ExerciseUpsert{
			Name: "Plank", Difficulty: models.DifficultyMedium, ProgramID: 1,
		})
		require.NoError(t, err)

		before := time.Now().UTC()
		ce, err := svc.Track(context.Background(), 7, "1", &models.TrackInput{Duration: 45})
		require.NoError(t, err)

		assert.Equal(t, int64(7), ce.UserID)
		assert.Equal(t, int64(1), ce.ExerciseID)
		assert.Equal(t, int64(45), ce.Duration)
		assert.False(t, ce.CompletedAt.Before(before), "completedAt comes from the server clock")
		assert.False(t, ce.CompletedAt.After(time.Now().UTC().Add(time.Second)))
	})

	t.Run("unknown exercise", func(t *testing.T) {
		svc, _, _ := newTracking(t)

		appErr := asAppError(t, mustFail(svc.Track(context.Background(), 7, "99", &models.TrackInput{Duration: 45})))
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "exercise.notFound", appErr.MessageKey)
	})
}

func TestCompleted(t *testing.T) {
	svc, _, exerciseRepo := newTracking(t)
	_, err := exerciseRepo.Create(context.Background(), &models.ExerciseUpsert{
		Name: "Plank", Difficulty: models.DifficultyMedium, ProgramID: 1,
	})
	require.NoError(t, err)

	_, err = svc.Track(context.Background(), 1, "1", &models.TrackInput{Duration: 30})
	require.NoError(t, err)
	_, err = svc.Track(context.Background(), 2, "1", &models.TrackInput{Duration: 60})
	require.NoError(t, err)

	mine, err := svc.Completed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1, "only own records are visible")
	assert.Equal(t, int64(30), mine[0].Duration)
}

func TestRemove(t *testing.T) {
	svc, _, exerciseRepo := newTracking(t)
	_, err := exerciseRepo.Create(context.Background(), &models.ExerciseUpsert{
		Name: "Plank", Difficulty: models.DifficultyMedium, ProgramID: 1,
	})
	require.NoError(t, err)

	_, err = svc.Track(context.Background(), 1, "1", &models.TrackInput{Duration: 30})
	require.NoError(t, err)

	t.Run("someone else's record looks like it does not exist", func(t *testing.T) {
		appErr := asAppError(t, svc.Remove(context.Background(), 2, "1"))
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "exercise.trackedNotFound", appErr.MessageKey)
	})

	t.Run("own record is removed", func(t *testing.T) {
		require.NoError(t, svc.Remove(context.Background(), 1, "1"))

		mine, err := svc.Completed(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, mine)

		// Aynı kaydı ikinci kez silmek 404.
		appErr := asAppError(t, svc.Remove(context.Background(), 1, "1"))
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})
}
