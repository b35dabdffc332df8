package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/akinalp/antren/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, nick string) *models.User {
	t.Helper()
	age := int64(28)
	user := &models.User{
		Name: "Ada", Surname: "Lovelace", NickName: nick, Email: email,
		PasswordHash: "hash", Age: &age, Role: models.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(t, repo, "ada@example.com", "ada")

	t.Run("returns the restricted view", func(t *testing.T) {
		profile, err := svc.Profile(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "ada", profile.NickName)
		require.NotNil(t, profile.Age)
		assert.Equal(t, int64(28), *profile.Age)
	})

	t.Run("deleted user behind a valid token", func(t *testing.T) {
		appErr := asAppError(t, mustFail(svc.Profile(context.Background(), 99)))
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "user.notFound", appErr.MessageKey)
	})
}

func TestDetail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(t, repo, "ada@example.com", "ada")

	user, err := svc.Detail(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	appErr := asAppError(t, mustFail(svc.Detail(context.Background(), "42")))
	assert.Equal(t, "user.notFound", appErr.MessageKey)
}

func TestUserUpdate(t *testing.T) {
	t.Run("partial update returns the fresh record", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		seedUser(t, repo, "ada@example.com", "ada")

		newName := "Grace"
		adminRole := models.RoleAdmin
		user, err := svc.Update(context.Background(), "1", &models.UserUpdate{
			Name: &newName,
			Role: &adminRole,
		})
		require.NoError(t, err)

		assert.Equal(t, "Grace", user.Name)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, "Lovelace", user.Surname, "untouched field survives")
	})

	t.Run("age null clears the column", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		seedUser(t, repo, "ada@example.com", "ada")

		user, err := svc.Update(context.Background(), "1", &models.UserUpdate{AgeSet: true})
		require.NoError(t, err)
		assert.Nil(t, user.Age)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		name := "x"
		appErr := asAppError(t, mustFail(svc.Update(context.Background(), "7", &models.UserUpdate{Name: &name})))
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "user.notFound", appErr.MessageKey)
	})
}

func TestListBasic(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(t, repo, "ada@example.com", "ada")
	seedUser(t, repo, "grace@example.com", "grace")

	list, err := svc.ListBasic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.UserBasic{
		{ID: 1, NickName: "ada"},
		{ID: 2, NickName: "grace"},
	}, list)
}
