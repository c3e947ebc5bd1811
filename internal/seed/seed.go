package seed

import (
	"fmt"
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with a realistic demo data set.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll truncates every seeded table, owned records first.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")

	tables := []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	return nil
}

// Seed creates users with profiles, then spreads posts, comments and likes
// across them.
func (s *Seeder) Seed(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}

	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		// Roughly 80% of users fill out a profile.
		if s.factory.rng.Intn(5) != 0 {
			if _, err := s.factory.CreateProfile(user); err != nil {
				return fmt.Errorf("creating profile: %w", err)
			}
		}
		users = append(users, user)
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}

		for c := 0; c < s.factory.rng.Intn(4); c++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(post, commenter); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
		}

		// Pick distinct likers; the unique index rejects duplicates.
		liked := map[uint]bool{}
		for l := 0; l < s.factory.rng.Intn(6); l++ {
			liker := users[s.factory.rng.Intn(len(users))]
			if liked[liker.ID] {
				continue
			}
			liked[liker.ID] = true
			if _, err := s.factory.CreateLike(post, liker); err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), opts.NumPosts)
	return nil
}
