package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostServiceCreateFillsAuthorSnapshot(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := NewPostService(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, uint(4)).
		Return(&models.User{ID: 4, Name: "John Doe", Avatar: "https://example.com/a.png"}, nil)
	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.Name == "John Doe" && p.Avatar == "https://example.com/a.png"
	})).Return(nil)
	postRepo.On("GetByID", mock.Anything, mock.Anything).
		Return(&models.Post{Name: "John Doe"}, nil)

	_, err := svc.Create(context.Background(), CreatePostInput{UserID: 4, Text: "hello world"})
	require.NoError(t, err)
	postRepo.AssertExpectations(t)
}

func TestPostServiceDeleteRequiresOwnership(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo, new(MockUserRepository))

	postRepo.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Post{ID: 10, UserID: 4}, nil)

	err := svc.Delete(context.Background(), 5, 10)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "User not authorized.", appErr.Message)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostServiceRemoveComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing comment is not found", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, new(MockUserRepository))

		postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 4}, nil)
		postRepo.On("GetComment", mock.Anything, uint(10), uint(99)).
			Return(nil, models.NewNotFoundError("Comment doesn't exist."))

		_, err := svc.RemoveComment(ctx, 4, 10, 99)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("Non-author is unauthorized and the comment stays", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, new(MockUserRepository))

		postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 4}, nil)
		postRepo.On("GetComment", mock.Anything, uint(10), uint(7)).
			Return(&models.Comment{ID: 7, PostID: 10, UserID: 4, Text: "mine"}, nil)

		_, err := svc.RemoveComment(ctx, 5, 10, 7)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		postRepo.AssertNotCalled(t, "RemoveComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Author removes the comment", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, new(MockUserRepository))

		postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 4}, nil)
		postRepo.On("GetComment", mock.Anything, uint(10), uint(7)).
			Return(&models.Comment{ID: 7, PostID: 10, UserID: 5}, nil)
		postRepo.On("RemoveComment", mock.Anything, uint(10), uint(7)).Return(nil)

		_, err := svc.RemoveComment(ctx, 5, 10, 7)
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})
}

func TestPostServiceToggleLike(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo, new(MockUserRepository))

	postRepo.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Post{ID: 10, UserID: 4}, nil)
	postRepo.On("ToggleLike", mock.Anything, uint(10), uint(5)).Return(nil)

	post, err := svc.ToggleLike(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), post.ID)
	postRepo.AssertExpectations(t)
}
