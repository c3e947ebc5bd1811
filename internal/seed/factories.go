// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultPassword is the plaintext behind every seeded account so demo
// logins work ("password123").
const defaultPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPools = [][]string{
	{"HTML", "CSS", "JavaScript", "React"},
	{"Go", "PostgreSQL", "Redis", "Docker"},
	{"Python", "Django", "Celery"},
	{"TypeScript", "Node.js", "Express", "MongoDB"},
	{"Java", "Spring", "Kafka"},
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	rng          *rand.Rand
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())

	// Hash once; bcrypt is slow and every seeded user shares the password.
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("seed: bcrypt failed: %v", err))
	}

	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}
}

// CreateUser persists a user with a fake identity and the shared password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	email := strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", f.rng.Intn(10000)) + "@" + gofakeit.DomainName()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: f.passwordHash,
		Avatar:   gravatar.URL(email),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a profile for the user, including a couple of
// experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", user.ID)
	if len(handle) > 40 {
		handle = handle[:40]
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handle,
		Status:         statuses[f.rng.Intn(len(statuses))],
		Skills:         skillPools[f.rng.Intn(len(skillPools))],
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       gofakeit.City(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + strings.ToLower(gofakeit.Username()),
			Linkedin: "https://linkedin.com/in/" + strings.ToLower(gofakeit.Username()),
		},
	}
	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.rng.Intn(3); i++ {
		exp := f.buildExperience(profile.ID)
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}
	for i := 0; i < 1+f.rng.Intn(2); i++ {
		edu := f.buildEducation(profile.ID)
		if err := f.db.Create(edu).Error; err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (f *Factory) buildExperience(profileID uint) *models.Experience {
	from := time.Now().AddDate(-1-f.rng.Intn(8), -f.rng.Intn(12), 0)
	exp := &models.Experience{
		ProfileID:   profileID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Description: gofakeit.Sentence(10),
	}
	if f.rng.Intn(2) == 0 {
		to := from.AddDate(0, 6+f.rng.Intn(30), 0)
		exp.To = &to
	} else {
		exp.Current = true
	}
	return exp
}

func (f *Factory) buildEducation(profileID uint) *models.Education {
	from := time.Now().AddDate(-4-f.rng.Intn(10), 0, 0)
	to := from.AddDate(3+f.rng.Intn(2), 0, 0)
	return &models.Education{
		ProfileID:    profileID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: gofakeit.JobDescriptor() + " " + gofakeit.JobLevel(),
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}
}

// CreatePost persists a post authored by the user, with the author snapshot
// denormalized the way the API writes it.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID: user.ID,
		Text:   gofakeit.Sentence(8 + f.rng.Intn(20)),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	for _, override := range overrides {
		override(post)
	}

	daysBack := f.rng.Intn(90)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(f.rng.Intn(24))*time.Hour)

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(4 + f.rng.Intn(12)),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records the user's like on the post. Duplicate likes violate
// the unique index and are reported as errors.
func (f *Factory) CreateLike(post *models.Post, user *models.User) (*models.Like, error) {
	like := &models.Like{
		PostID: post.ID,
		UserID: user.ID,
	}
	if err := f.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}
