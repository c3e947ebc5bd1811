package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// owned experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, profileID uint, edu *models.Education) error
	RemoveEducation(ctx context.Context, profileID, eduID uint) error
	DeleteWithUser(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withOwned preloads the owning user and the embedded lists. Experience and
// education are newest-first; a later insert always appears before earlier
// ones, which is the list's prepend semantics.
func (r *profileRepository) withOwned(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile

	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		if err := r.withOwned(r.db.WithContext(ctx)).
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("There is no profile for this user.")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	var profile models.Profile

	err := cache.Aside(ctx, cache.ProfileHandleKey(handle), &profile, cache.ProfileTTL, func() error {
		if err := r.withOwned(r.db.WithContext(ctx)).
			Where("handle = ?", handle).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("There is no profile for this user.")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// invalidateByProfileID drops both cache keys of the profile that owns a
// mutated experience/education entry.
func (r *profileRepository) invalidateByProfileID(ctx context.Context, profileID uint) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Select("user_id", "handle").
		First(&profile, profileID).Error; err != nil {
		return
	}
	cache.InvalidateProfile(ctx, profile.UserID, profile.Handle)
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := r.withOwned(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("That handle is already taken.")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	var prevHandle string
	var prev models.Profile
	if err := r.db.WithContext(ctx).Select("handle").First(&prev, profile.ID).Error; err == nil {
		prevHandle = prev.Handle
	}

	if err := r.db.WithContext(ctx).
		Omit("Experience", "Education", "User").
		Save(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("That handle is already taken.")
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, profile.UserID, profile.Handle)
	// A renamed handle leaves its old key behind.
	if prevHandle != "" && prevHandle != profile.Handle {
		cache.Invalidate(ctx, cache.ProfileHandleKey(prevHandle))
	}
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error {
	exp.ProfileID = profileID
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Experience not found.")
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, profileID uint, edu *models.Education) error {
	edu.ProfileID = profileID
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Education not found.")
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

// DeleteWithUser removes the profile (with its owned entries) and the user in
// one transaction, so a partial failure cannot orphan the user record.
func (r *profileRepository) DeleteWithUser(ctx context.Context, userID uint) error {
	var handle string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			handle = profile.Handle
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, userID, handle)
	cache.InvalidateUser(ctx, userID)
	return nil
}
