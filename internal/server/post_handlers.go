package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PostsTest handles the public smoke-test route.
func (s *Server) PostsTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Posts Works"})
}

// GetPosts returns the feed, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post with its comments and likes.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "post_id", "No post found with that ID.")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost creates a new post owned by the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input validation.PostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidatePostInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	post, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		UserID: currentUserID(c),
		Text:   input.Text,
		Name:   input.Name,
		Avatar: input.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost removes a post the caller owns.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "post_id", "No post found with that ID.")
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.postService.Delete(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// LikePost toggles the caller's like on a post and returns the updated post
// with 202 Accepted.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "post_id", "No post found with that ID.")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.ToggleLike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(post)
}

// AddComment appends a comment to a post.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "post_id", "No post found with that ID.")
	if err != nil {
		return respondServiceError(c, err)
	}

	var input validation.PostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidatePostInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	post, err := s.postService.AddComment(c.UserContext(), service.CreateCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   input.Text,
		Name:   input.Name,
		Avatar: input.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// RemoveComment deletes a comment the caller authored from a post.
func (s *Server) RemoveComment(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "post_id", "No post found with that ID.")
	if err != nil {
		return respondServiceError(c, err)
	}
	commentID, err := parseIDParam(c, "comment_id", "Comment doesn't exist.")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.RemoveComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
