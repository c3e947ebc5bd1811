package seed

import (
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Profile{}, &models.Experience{}, &models.Education{},
		&models.Post{}, &models.Comment{}, &models.Like{},
	))
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Name)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
}

func TestFactoryCreateProfileWithEntries(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)

	profile, err := f.CreateProfile(user)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(profile.Handle), 40)

	var expCount, eduCount int64
	require.NoError(t, db.Model(&models.Experience{}).Where("profile_id = ?", profile.ID).Count(&expCount).Error)
	require.NoError(t, db.Model(&models.Education{}).Where("profile_id = ?", profile.ID).Count(&eduCount).Error)
	assert.GreaterOrEqual(t, expCount, int64(1))
	assert.GreaterOrEqual(t, eduCount, int64(1))
}

func TestSeederSeedAndClear(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Seed(Options{NumUsers: 3, NumPosts: 5}))

	var users, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 5, posts)

	require.NoError(t, s.ClearAll())
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
