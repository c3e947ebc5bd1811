package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService handles the post feed and its owned comments and likes.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries a validated post payload.
type CreatePostInput struct {
	UserID uint
	Text   string
	Name   string
	Avatar string
}

// CreateCommentInput carries a validated comment payload.
type CreateCommentInput struct {
	UserID uint
	PostID uint
	Text   string
	Name   string
	Avatar string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create persists a new post owned by the caller. When the payload omits the
// author snapshot, it is filled from the user record.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	name, avatar := in.Name, in.Avatar
	if name == "" || avatar == "" {
		if user, err := s.userRepo.GetByID(ctx, in.UserID); err == nil {
			if name == "" {
				name = user.Name
			}
			if avatar == "" {
				avatar = user.Avatar
			}
		}
	}

	post := &models.Post{
		Text:   in.Text,
		Name:   name,
		Avatar: avatar,
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns all posts newest-first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// Get returns a single post.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes a post. Only the owning user may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized.")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's like on the post: absent becomes present,
// present is removed. Returns the updated post.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.ToggleLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// AddComment appends a comment to the post's list and returns the post.
func (s *PostService) AddComment(ctx context.Context, in CreateCommentInput) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	name, avatar := in.Name, in.Avatar
	if name == "" || avatar == "" {
		if user, err := s.userRepo.GetByID(ctx, in.UserID); err == nil {
			if name == "" {
				name = user.Name
			}
			if avatar == "" {
				avatar = user.Avatar
			}
		}
	}

	comment := &models.Comment{
		PostID: in.PostID,
		UserID: in.UserID,
		Text:   in.Text,
		Name:   name,
		Avatar: avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// RemoveComment deletes a comment from a post. The comment must exist on the
// post, and only its author may remove it. Returns the updated post.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized.")
	}

	if err := s.postRepo.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
