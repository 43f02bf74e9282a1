package models

import (
	"time"

	"gorm.io/gorm"
)

// Default and premium member limits for private forums.
const (
	MemberLimitDefault = 25
	MemberLimitPremium = 100
)

// Forum is a discussion space. A forum is either public (category-scoped,
// AccessCode nil) or private (access-code-gated, CategoryID nil), never both.
type Forum struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsPrivate   bool      `gorm:"not null;default:false" json:"is_private"`
	AccessCode  *string   `json:"-"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	Creator     *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	MemberLimit int       `gorm:"not null;default:25" json:"member_limit"`
	IsPremium   bool      `gorm:"not null;default:false" json:"is_premium"`
	// PostCount is not persisted; computed at query time
	PostCount int `gorm:"->" json:"post_count"`
	// MemberCount is not persisted; computed at query time
	MemberCount int            `gorm:"->" json:"member_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
