package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// ProfileService handles profile upsert and the owned experience/education
// lists.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// splitSkills turns the comma-separated skills string into an ordered token
// list. Tokens are intentionally NOT trimmed: "HTML, CSS" yields
// ["HTML", " CSS"], matching the documented API behavior.
func splitSkills(skills string) []string {
	return strings.Split(skills, ",")
}

// parseDate accepts ISO dates with or without a time component.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Upsert updates the caller's profile in place when one exists; otherwise it
// checks handle uniqueness and creates a new profile. Optional fields are
// only written when the input is non-empty.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in validation.ProfileInput) (*models.Profile, error) {
	fields := models.Profile{
		UserID:         userID,
		Handle:         in.Handle,
		Status:         in.Status,
		Skills:         splitSkills(in.Skills),
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: models.SocialLinks{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Instagram: in.Instagram,
			Linkedin:  in.Linkedin,
		},
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		// Update in place, keeping identity and owned lists.
		fields.ID = existing.ID
		fields.CreatedAt = existing.CreatedAt
		if err := s.profileRepo.Update(ctx, &fields); err != nil {
			return nil, err
		}
		return s.profileRepo.GetByUserID(ctx, userID)
	}

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		return nil, err
	}

	// No profile yet: the handle must not be taken by anyone else.
	if taken, err := s.profileRepo.GetByHandle(ctx, in.Handle); err == nil && taken != nil {
		return nil, models.NewConflictError("That handle is already taken.")
	}

	if err := s.profileRepo.Create(ctx, &fields); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddExperience prepends a new experience entry to the caller's profile and
// returns the full profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in validation.ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, models.NewValidationError("From date is invalid.")
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		Current:     in.Current,
		Description: in.Description,
	}
	if in.To != "" {
		to, err := parseDate(in.To)
		if err != nil {
			return nil, models.NewValidationError("To date is invalid.")
		}
		exp.To = &to
	}

	if err := s.profileRepo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveExperience deletes the identified entry from the caller's profile.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation prepends a new education entry to the caller's profile and
// returns the full profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in validation.EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, models.NewValidationError("From date is invalid.")
	}

	edu := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		Current:      in.Current,
		Description:  in.Description,
	}
	if in.To != "" {
		to, err := parseDate(in.To)
		if err != nil {
			return nil, models.NewValidationError("To date is invalid.")
		}
		edu.To = &to
	}

	if err := s.profileRepo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveEducation deletes the identified entry from the caller's profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetByUserID returns the profile owned by the given user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetByHandle returns the profile with the given handle.
func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.profileRepo.GetByHandle(ctx, handle)
}

// List returns all profiles. An empty platform yields a not-found error,
// matching the API contract.
func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, models.NewNotFoundError("There are no profiles.")
	}
	return profiles, nil
}
