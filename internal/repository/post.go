package repository

import (
	"context"
	"errors"

	"cheznous/internal/cache"
	"cheznous/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	ListByForum(ctx context.Context, forumID uint, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	// The forum is always preloaded: callers need it to decide whether the
	// post is visible to the requester at all.
	query := r.applyPostDetails(readDB(r.db).WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("Forum")

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
			return query.First(&post, id).Error
		})
	} else {
		err = query.First(&post, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListByForum(ctx context.Context, forumID uint, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error) {
	var posts []*models.Post
	base := r.applyPostDetails(readDB(r.db).WithContext(ctx), currentUserID).
		Preload("Author").
		Where("forum_id = ?", forumID)
	err := r.applySort(base, sort).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applySort appends the ORDER BY clause for the requested sort type.
// likes and comment_count are SELECT aliases from applyPostDetails; PostgreSQL
// allows referencing them in ORDER BY within the same query level.
func (r *postRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "top":
		return db.Order("likes DESC, created_at DESC")
	case "active":
		return db.Order("comment_count DESC, created_at DESC")
	default: // "new" and anything unrecognized
		return db.Order("created_at DESC")
	}
}

// applyPostDetails adds subqueries to fetch reaction counts, comment count,
// and the requester's own reaction in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comment_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.content_type = 'post' AND reactions.content_id = posts.id AND reactions.type = 'like') as likes, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.content_type = 'post' AND reactions.content_id = posts.id AND reactions.type = 'dislike') as dislikes"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", COALESCE((SELECT type FROM reactions WHERE reactions.content_type = 'post' AND reactions.content_id = posts.id AND reactions.user_id = ?), '') as my_reaction",
			currentUserID)
	}

	return db.Select(selectQuery + ", '' as my_reaction")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
