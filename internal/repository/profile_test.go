package repository

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_HandleConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	first := createTestUser(t, db, "John Doe", "john@example.com")
	second := createTestUser(t, db, "Jane Doe", "jane@example.com")

	require.NoError(t, repo.Create(ctx, &models.Profile{
		UserID: first.ID, Handle: "jdoe", Status: "Developer", Skills: []string{"Go"},
	}))

	err := repo.Create(ctx, &models.Profile{
		UserID: second.ID, Handle: "jdoe", Status: "Designer", Skills: []string{"CSS"},
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "That handle is already taken.", appErr.Message)

	// The first profile is unaffected.
	got, err := repo.GetByHandle(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.UserID)
	assert.Equal(t, "Developer", got.Status)
}

func TestProfileRepository_ExperiencePrepends(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	profile := &models.Profile{UserID: user.ID, Handle: "jdoe", Status: "Developer", Skills: []string{"Go"}}
	require.NoError(t, repo.Create(ctx, profile))

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddExperience(ctx, profile.ID, &models.Experience{
		Title: "Junior Dev", Company: "Acme", From: from,
	}))
	require.NoError(t, repo.AddExperience(ctx, profile.ID, &models.Experience{
		Title: "Senior Dev", Company: "Globex", From: from.AddDate(2, 0, 0),
	}))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Senior Dev", got.Experience[0].Title)
	assert.Equal(t, "Junior Dev", got.Experience[1].Title)
}

func TestProfileRepository_RemoveEducation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	profile := &models.Profile{UserID: user.ID, Handle: "jdoe", Status: "Developer", Skills: []string{"Go"}}
	require.NoError(t, repo.Create(ctx, profile))

	edu := &models.Education{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS",
		From: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AddEducation(ctx, profile.ID, edu))

	require.NoError(t, repo.RemoveEducation(ctx, profile.ID, edu.ID))

	// A second removal reports not found.
	err := repo.RemoveEducation(ctx, profile.ID, edu.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestProfileRepository_DeleteWithUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	profile := &models.Profile{UserID: user.ID, Handle: "jdoe", Status: "Developer", Skills: []string{"Go"}}
	require.NoError(t, repo.Create(ctx, profile))
	require.NoError(t, repo.AddExperience(ctx, profile.ID, &models.Experience{
		Title: "Dev", Company: "Acme", From: time.Now(),
	}))

	require.NoError(t, repo.DeleteWithUser(ctx, user.ID))

	_, err := repo.GetByUserID(ctx, user.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	var expCount int64
	require.NoError(t, db.Model(&models.Experience{}).Where("profile_id = ?", profile.ID).Count(&expCount).Error)
	assert.Zero(t, expCount)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	assert.Zero(t, userCount)
}

func TestProfileRepository_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
