package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a top-level message within a forum. Posts are immutable after
// creation except for author edits.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	ForumID     uint   `gorm:"not null;index" json:"forum_id"`
	Forum       *Forum `gorm:"foreignKey:ForumID" json:"forum,omitempty"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	Author      *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsAnonymous bool   `gorm:"not null;default:false" json:"is_anonymous"`
	// Likes is not persisted; computed at query time
	Likes int `gorm:"->" json:"likes"`
	// Dislikes is not persisted; computed at query time
	Dislikes int `gorm:"->" json:"dislikes"`
	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->" json:"comment_count"`
	// MyReaction is the requesting user's reaction kind, empty if none (computed)
	MyReaction string         `gorm:"->" json:"my_reaction,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
