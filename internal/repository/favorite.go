package repository

import (
	"context"

	"cheznous/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for bookmarks.
type FavoriteRepository interface {
	Insert(ctx context.Context, fav *models.Favorite) (bool, error)
	Remove(ctx context.Context, userID uint, favType models.FavoriteType, itemID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, favType models.FavoriteType) ([]*models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Insert adds a favorite, tolerating concurrent duplicates via
// ON CONFLICT DO NOTHING. Returns whether a new row was actually inserted.
func (r *favoriteRepository) Insert(ctx context.Context, fav *models.Favorite) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO favorites (user_id, type, item_id, created_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, type, item_id) DO NOTHING`,
		fav.UserID, fav.Type, fav.ItemID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Remove hard-deletes the favorite. Returns whether a row existed.
func (r *favoriteRepository) Remove(ctx context.Context, userID uint, favType models.FavoriteType, itemID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND item_id = ?", userID, favType, itemID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListByUser returns the user's favorites, optionally filtered by type
// (pass "" for all).
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint, favType models.FavoriteType) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	query := readDB(r.db).WithContext(ctx).Where("user_id = ?", userID)
	if favType != "" {
		query = query.Where("type = ?", favType)
	}
	if err := query.Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}
