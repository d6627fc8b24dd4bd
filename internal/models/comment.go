// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a blog in the Inkwell application.
// A nil ParentCommentID marks a top-level comment; replies reference
// another comment on the same blog.
type Comment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Content         string         `gorm:"not null" json:"content"`
	BlogID          uint           `gorm:"not null;index" json:"blog_id"`
	Blog            Blog           `gorm:"foreignKey:BlogID" json:"-"`
	ParentCommentID *uint          `gorm:"index" json:"parent_comment_id"`
	AuthorID        uint           `gorm:"not null" json:"author_id"`
	Author          User           `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentNode is a comment annotated with the viewer's ownership flag
// and its ordered replies. The forest returned for a blog is a slice of
// top-level CommentNodes.
type CommentNode struct {
	Comment
	Owner   bool           `json:"owner"`
	Replies []*CommentNode `json:"replies"`
}
