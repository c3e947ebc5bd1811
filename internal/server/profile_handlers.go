package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProfileTest handles the public smoke-test route.
func (s *Server) ProfileTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Profile Works"})
}

// GetCurrentProfile returns the authenticated caller's profile.
func (s *Server) GetCurrentProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUserID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles returns every profile, 404 when none exist.
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByHandle returns the profile owning the given handle.
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByHandle(c.UserContext(), c.Params("handle"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUserID returns the profile owned by the given user.
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id", "There is no profile for this user.")
	if err != nil {
		return respondServiceError(c, err)
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile creates the caller's profile or updates it in place.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var input validation.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidateProfileInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	profile, err := s.profileService.Upsert(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience prepends an experience entry to the caller's profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var input validation.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidateExperienceInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation prepends an education entry to the caller's profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var input validation.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidateEducationInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience deletes one of the caller's experience entries.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	expID, err := parseIDParam(c, "exp_id", "Experience not found.")
	if err != nil {
		return respondServiceError(c, err)
	}

	profile, err := s.profileService.RemoveExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation deletes one of the caller's education entries.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	eduID, err := parseIDParam(c, "edu_id", "Education not found.")
	if err != nil {
		return respondServiceError(c, err)
	}

	profile, err := s.profileService.RemoveEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount removes the caller's profile and user record together.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
