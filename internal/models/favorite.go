package models

import "time"

// FavoriteType identifies what kind of item a favorite points at.
type FavoriteType string

const (
	// FavoriteTypeForum marks a bookmarked forum.
	FavoriteTypeForum FavoriteType = "forum"
	// FavoriteTypePost marks a bookmarked post.
	FavoriteTypePost FavoriteType = "post"
)

// Favorite is a user's bookmark of a forum or post. The (user_id, type,
// item_id) triple is unique; toggling relies on that constraint under
// concurrent calls.
type Favorite struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_user_type_item" json:"user_id"`
	User      *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type      FavoriteType `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_type_item" json:"type"`
	ItemID    uint         `gorm:"not null;uniqueIndex:idx_user_type_item" json:"item_id"`
	CreatedAt time.Time    `json:"created_at"`
}
