package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply to a post.
type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Content     string `gorm:"type:text;not null" json:"content"`
	PostID      uint   `gorm:"not null;index" json:"post_id"`
	Post        *Post  `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	Author      *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsAnonymous bool   `gorm:"not null;default:false" json:"is_anonymous"`
	// Likes is not persisted; computed at query time
	Likes int `gorm:"->" json:"likes"`
	// Dislikes is not persisted; computed at query time
	Dislikes    int            `gorm:"->" json:"dislikes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
