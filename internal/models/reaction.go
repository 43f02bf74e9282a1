package models

import "time"

// ReactionKind is the direction of a reaction.
type ReactionKind string

const (
	// ReactionLike is a thumbs-up.
	ReactionLike ReactionKind = "like"
	// ReactionDislike is a thumbs-down.
	ReactionDislike ReactionKind = "dislike"
)

// ReactionTarget identifies what kind of content a reaction points at.
type ReactionTarget string

const (
	// ReactionTargetPost targets a post.
	ReactionTargetPost ReactionTarget = "post"
	// ReactionTargetComment targets a comment.
	ReactionTargetComment ReactionTarget = "comment"
)

// Reaction is a user's like or dislike on a post or comment. At most one
// reaction exists per (user_id, content_type, content_id); switching
// like<->dislike updates the row in place rather than inserting a second one.
type Reaction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;uniqueIndex:idx_user_content" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type        ReactionKind   `gorm:"type:varchar(10);not null" json:"type"`
	ContentType ReactionTarget `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_content" json:"content_type"`
	ContentID   uint           `gorm:"not null;uniqueIndex:idx_user_content" json:"content_id"`
	CreatedAt   time.Time      `json:"created_at"`
}
