package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/models"
	"cheznous/internal/repository"
	"cheznous/internal/validation"
)

type PostService struct {
	postRepo  repository.PostRepository
	forumRepo repository.ForumRepository
	policy    *authz.Policy
}

type CreatePostInput struct {
	UserID      uint
	ForumID     uint
	Title       string
	Content     string
	IsAnonymous bool
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   *string
	Content *string
}

func NewPostService(
	postRepo repository.PostRepository,
	forumRepo repository.ForumRepository,
	policy *authz.Policy,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		forumRepo: forumRepo,
		policy:    policy,
	}
}

// CreatePost publishes a post in a forum. Posting into a private forum
// requires membership; the attempt surfaces as NOT_FOUND for non-members so
// hidden forums stay hidden.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	forum, err := s.forumRepo.GetByID(ctx, in.ForumID)
	if err != nil {
		return nil, err
	}
	// Non-members must not learn the forum exists at all.
	if err := s.policy.Authorize(ctx, authz.EntityForum, authz.OpRead, authz.Actor{ID: in.UserID}, forum); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       in.Title,
		Content:     in.Content,
		ForumID:     in.ForumID,
		AuthorID:    in.UserID,
		IsAnonymous: in.IsAnonymous,
	}
	row := authz.PostRow{Post: post, Forum: forum}
	if err := s.policy.Authorize(ctx, authz.EntityPost, authz.OpInsert, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns the post if its forum is visible to the requester.
func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, currentUserID)
	if err != nil {
		return nil, err
	}
	row := authz.PostRow{Post: post, Forum: post.Forum}
	if err := s.policy.Authorize(ctx, authz.EntityPost, authz.OpRead, authz.Actor{ID: currentUserID}, row); err != nil {
		return nil, err
	}
	return post, nil
}

// ListForumPosts returns a forum's posts, provided the forum is visible.
func (s *PostService) ListForumPosts(ctx context.Context, forumID uint, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error) {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityForum, authz.OpRead, authz.Actor{ID: currentUserID}, forum); err != nil {
		return nil, err
	}
	limit = normalizePageSize(limit)
	return s.postRepo.ListByForum(ctx, forumID, limit, offset, currentUserID, sort)
}

// UpdatePost lets the author edit title and content.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	row := authz.PostRow{Post: post, Forum: post.Forum}
	if err := s.policy.Authorize(ctx, authz.EntityPost, authz.OpRead, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityPost, authz.OpUpdate, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validation.ValidatePostTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if err := validation.ValidatePostContent(*in.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Content = *in.Content
	}

	// Strip preloads so Save does not cascade into associations.
	post.Forum = nil
	post.Author = nil
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}
