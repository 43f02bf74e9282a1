package models

import "time"

// ForumMember records a user's membership in a forum. A user joins a given
// forum at most once; the (forum_id, user_id) pair is unique. The creator's
// row is inserted in the same transaction as the forum itself.
type ForumMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ForumID  uint      `gorm:"not null;uniqueIndex:idx_forum_user" json:"forum_id"`
	Forum    *Forum    `gorm:"foreignKey:ForumID" json:"forum,omitempty"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_forum_user" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	IsAdmin  bool      `gorm:"not null;default:false" json:"is_admin"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (ForumMember) TableName() string {
	return "forum_members"
}
