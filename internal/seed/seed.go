// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
}

// Seed populates the database with test data: users, blogs with cover images
// and nested comment threads.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d blogs...", opts.NumUsers, opts.NumBlogs)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	blogs, err := createBlogs(db, users, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("✓ %d blogs created", len(blogs))

	total, err := createCommentThreads(db, users, blogs)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", total)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, blogs, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a known account for manual testing
	if count >= 1 {
		users = append(users, models.User{
			Email:           "test@example.com",
			Password:        string(hashedPassword),
			ProfileImageURL: "https://i.pravatar.cc/150?u=test",
		})
	}

	for i := len(users); i < count; i++ {
		email := gofakeit.Email()
		users = append(users, models.User{
			Email:           email,
			Password:        string(hashedPassword),
			ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email),
		})
	}

	if err := db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createBlogs(db *gorm.DB, users []models.User, count int) ([]models.Blog, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author blogs")
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	blogs := make([]models.Blog, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		blogs = append(blogs, models.Blog{
			Title:       gofakeit.Sentence(5),
			Description: gofakeit.Paragraph(2, 4, 8, "\n\n"),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%d/800/400", i),
			AuthorID:    author.ID,
		})
	}

	if err := db.CreateInBatches(&blogs, 100).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// createCommentThreads gives each blog a handful of top-level comments, some
// of which get reply chains up to three levels deep.
func createCommentThreads(db *gorm.DB, users []models.User, blogs []models.Blog) (int, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	total := 0
	for _, blog := range blogs {
		numTopLevel := r.Intn(5) + 1
		for i := 0; i < numTopLevel; i++ {
			top := models.Comment{
				Content:  gofakeit.Sentence(r.Intn(15) + 3),
				BlogID:   blog.ID,
				AuthorID: users[r.Intn(len(users))].ID,
			}
			if err := db.Create(&top).Error; err != nil {
				return total, err
			}
			total++

			parentID := top.ID
			depth := r.Intn(4)
			for d := 0; d < depth; d++ {
				pid := parentID
				reply := models.Comment{
					Content:         gofakeit.Sentence(r.Intn(10) + 3),
					BlogID:          blog.ID,
					ParentCommentID: &pid,
					AuthorID:        users[r.Intn(len(users))].ID,
				}
				if err := db.Create(&reply).Error; err != nil {
					return total, err
				}
				total++
				parentID = reply.ID
			}
		}
	}
	return total, nil
}
