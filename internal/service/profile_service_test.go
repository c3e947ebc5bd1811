package service

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSplitSkills(t *testing.T) {
	// Tokens keep their surrounding whitespace; only the commas are consumed.
	assert.Equal(t, []string{"HTML", " CSS", " JS"}, splitSkills("HTML, CSS, JS"))
	assert.Equal(t, []string{"Go"}, splitSkills("Go"))
	assert.Equal(t, []string{"a", "", "b"}, splitSkills("a,,b"))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2020-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2020-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("June 15th")
	assert.Error(t, err)
}

func TestProfileServiceUpsert(t *testing.T) {
	ctx := context.Background()
	input := validation.ProfileInput{Handle: "jdoe", Status: "Developer", Skills: "HTML, CSS, JS"}

	t.Run("Create when no profile exists", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewProfileService(repo)

		created := &models.Profile{ID: 1, UserID: 9, Handle: "jdoe", Skills: []string{"HTML", " CSS", " JS"}}
		repo.On("GetByUserID", mock.Anything, uint(9)).
			Return(nil, models.NewNotFoundError("There is no profile for this user.")).Once()
		repo.On("GetByHandle", mock.Anything, "jdoe").
			Return(nil, models.NewNotFoundError("There is no profile for this user."))
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
			return p.UserID == 9 && p.Handle == "jdoe" &&
				assert.ObjectsAreEqual([]string{"HTML", " CSS", " JS"}, p.Skills)
		})).Return(nil)
		repo.On("GetByUserID", mock.Anything, uint(9)).Return(created, nil)

		got, err := svc.Upsert(ctx, 9, input)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		repo.AssertExpectations(t)
	})

	t.Run("Handle taken by another user", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewProfileService(repo)

		repo.On("GetByUserID", mock.Anything, uint(9)).
			Return(nil, models.NewNotFoundError("There is no profile for this user."))
		repo.On("GetByHandle", mock.Anything, "jdoe").
			Return(&models.Profile{ID: 3, UserID: 2, Handle: "jdoe"}, nil)

		got, err := svc.Upsert(ctx, 9, input)
		assert.Nil(t, got)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "That handle is already taken.", appErr.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Update in place when profile exists", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewProfileService(repo)

		existing := &models.Profile{ID: 5, UserID: 9, Handle: "old", CreatedAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)}
		repo.On("GetByUserID", mock.Anything, uint(9)).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
			return p.ID == 5 && p.Handle == "jdoe" && p.CreatedAt.Equal(existing.CreatedAt)
		})).Return(nil)

		_, err := svc.Upsert(ctx, 9, input)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProfileServiceAddExperienceValidatesDates(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo)

	repo.On("GetByUserID", mock.Anything, uint(9)).
		Return(&models.Profile{ID: 5, UserID: 9}, nil)

	_, err := svc.AddExperience(context.Background(), 9, validation.ExperienceInput{
		Title: "Dev", Company: "Acme", From: "not a date",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	repo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileServiceListEmpty(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo)

	repo.On("List", mock.Anything).Return([]*models.Profile{}, nil)

	profiles, err := svc.List(context.Background())
	assert.Nil(t, profiles)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "There are no profiles.", appErr.Message)
}
