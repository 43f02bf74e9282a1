package repository

import (
	"context"
	"errors"

	"cheznous/internal/cache"
	"cheznous/internal/models"

	"gorm.io/gorm"
)

// DefaultForumPageSize is the page size used when callers do not specify one.
const DefaultForumPageSize = 20

// ForumRepository defines persistence operations for forums and memberships.
type ForumRepository interface {
	CreateWithCreator(ctx context.Context, forum *models.Forum) error
	GetByID(ctx context.Context, id uint) (*models.Forum, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*models.Forum, error)
	ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Forum, error)
	ListJoined(ctx context.Context, userID uint) ([]*models.Forum, error)
	Update(ctx context.Context, forum *models.Forum) error
	Delete(ctx context.Context, id uint) error
	AddMember(ctx context.Context, forumID, userID uint, isAdmin bool) (bool, error)
	IsMember(ctx context.Context, forumID, userID uint) (bool, error)
	CountMembers(ctx context.Context, forumID uint) (int64, error)
}

type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository returns a new ForumRepository implementation.
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

// CreateWithCreator inserts the forum and the creator's admin membership in a
// single transaction. A forum never exists without its creator enrolled.
func (r *forumRepository) CreateWithCreator(ctx context.Context, forum *models.Forum) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(forum).Error; err != nil {
			return err
		}
		member := &models.ForumMember{
			ForumID: forum.ID,
			UserID:  forum.CreatorID,
			IsAdmin: true,
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateForumLists(ctx, forum.CategoryID)
	return nil
}

// GetByID is deliberately uncached: the access code column is stripped from
// JSON, so a cached copy could not serve join verification.
func (r *forumRepository) GetByID(ctx context.Context, id uint) (*models.Forum, error) {
	var forum models.Forum
	err := r.applyForumDetails(readDB(r.db).WithContext(ctx)).
		Preload("Category").
		Preload("Creator").
		First(&forum, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Forum", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &forum, nil
}

func (r *forumRepository) ListPublic(ctx context.Context, limit, offset int) ([]*models.Forum, error) {
	var forums []*models.Forum

	fetch := func() error {
		err := r.applyForumDetails(readDB(r.db).WithContext(ctx)).
			Preload("Category").
			Where("is_private = ?", false).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&forums).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the default first page is hot enough to be worth caching.
	if limit == DefaultForumPageSize && offset == 0 {
		if err := cache.Aside(ctx, cache.PublicForumsKey, &forums, cache.PublicForumsTTL, fetch); err != nil {
			return nil, err
		}
		return forums, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return forums, nil
}

func (r *forumRepository) ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Forum, error) {
	var forums []*models.Forum

	fetch := func() error {
		err := r.applyForumDetails(readDB(r.db).WithContext(ctx)).
			Where("is_private = ? AND category_id = ?", false, categoryID).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&forums).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	if limit == DefaultForumPageSize && offset == 0 {
		if err := cache.Aside(ctx, cache.CategoryForumsKey(categoryID), &forums, cache.PublicForumsTTL, fetch); err != nil {
			return nil, err
		}
		return forums, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return forums, nil
}

func (r *forumRepository) ListJoined(ctx context.Context, userID uint) ([]*models.Forum, error) {
	var forums []*models.Forum
	err := r.applyForumDetails(readDB(r.db).WithContext(ctx)).
		Joins("JOIN forum_members ON forum_members.forum_id = forums.id").
		Where("forum_members.user_id = ?", userID).
		Order("forums.created_at DESC").
		Find(&forums).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return forums, nil
}

func (r *forumRepository) Update(ctx context.Context, forum *models.Forum) error {
	if err := r.db.WithContext(ctx).Save(forum).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateForumLists(ctx, forum.CategoryID)
	return nil
}

func (r *forumRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Forum{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateForumLists(ctx, nil)
	return nil
}

// AddMember inserts a membership row, tolerating concurrent duplicates via
// ON CONFLICT DO NOTHING. Returns whether a new row was actually inserted.
func (r *forumRepository) AddMember(ctx context.Context, forumID, userID uint, isAdmin bool) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO forum_members (forum_id, user_id, is_admin, joined_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (forum_id, user_id) DO NOTHING`,
		forumID, userID, isAdmin,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *forumRepository) IsMember(ctx context.Context, forumID, userID uint) (bool, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.ForumMember{}).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *forumRepository) CountMembers(ctx context.Context, forumID uint) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.ForumMember{}).
		Where("forum_id = ?", forumID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// applyForumDetails adds subqueries to fetch post and member counts in a single query.
func (r *forumRepository) applyForumDetails(db *gorm.DB) *gorm.DB {
	return db.Select("forums.*, " +
		"(SELECT COUNT(*) FROM posts WHERE posts.forum_id = forums.id AND posts.deleted_at IS NULL) as post_count, " +
		"(SELECT COUNT(*) FROM forum_members WHERE forum_members.forum_id = forums.id) as member_count")
}
