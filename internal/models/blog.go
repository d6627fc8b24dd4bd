// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents a blog post in the Inkwell application.
// Deletion is always soft: DeletedAt is set and every read filters it out.
type Blog struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;index" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `gorm:"not null" json:"image_url"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	Author      User   `gorm:"foreignKey:AuthorID" json:"author"`
	// Owner indicates whether the requesting user authored this blog (computed)
	Owner     bool           `gorm:"-" json:"owner"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Pagination describes the page window of a blog listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// BlogPage is the payload of the paginated blog listing.
type BlogPage struct {
	Blogs      []*Blog    `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}
