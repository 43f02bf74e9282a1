package repository

import (
	"context"
	"errors"

	"cheznous/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines persistence operations for likes and dislikes.
type ReactionRepository interface {
	Get(ctx context.Context, userID uint, contentType models.ReactionTarget, contentID uint) (*models.Reaction, error)
	Insert(ctx context.Context, reaction *models.Reaction) (bool, error)
	UpdateKind(ctx context.Context, id uint, kind models.ReactionKind) error
	Remove(ctx context.Context, id uint) error
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Get returns the user's reaction on the given content, or nil if none.
func (r *reactionRepository) Get(ctx context.Context, userID uint, contentType models.ReactionTarget, contentID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

// Insert adds a reaction, tolerating concurrent duplicates via
// ON CONFLICT DO NOTHING. Returns whether a new row was actually inserted.
func (r *reactionRepository) Insert(ctx context.Context, reaction *models.Reaction) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO reactions (user_id, type, content_type, content_id, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, content_type, content_id) DO NOTHING`,
		reaction.UserID, reaction.Type, reaction.ContentType, reaction.ContentID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// UpdateKind flips an existing reaction between like and dislike in place.
func (r *reactionRepository) UpdateKind(ctx context.Context, id uint, kind models.ReactionKind) error {
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("id = ?", id).
		Update("type", kind).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reactionRepository) Remove(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Reaction{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
