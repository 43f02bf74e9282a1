package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/models"
	"cheznous/internal/repository"
	"cheznous/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	forumRepo   repository.ForumRepository
	policy      *authz.Policy
}

type CreateCommentInput struct {
	UserID      uint
	PostID      uint
	Content     string
	IsAnonymous bool
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	forumRepo repository.ForumRepository,
	policy *authz.Policy,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		forumRepo:   forumRepo,
		policy:      policy,
	}
}

// CreateComment replies to a post. Commenting requires the post's forum to be
// visible to the caller; hidden posts surface as NOT_FOUND.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:     in.Content,
		PostID:      in.PostID,
		AuthorID:    in.UserID,
		IsAnonymous: in.IsAnonymous,
	}
	row := authz.CommentRow{Comment: comment, Forum: post.Forum}
	if err := s.policy.Authorize(ctx, authz.EntityComment, authz.OpInsert, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments, provided the post is visible.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID, currentUserID)
	if err != nil {
		return nil, err
	}
	row := authz.PostRow{Post: post, Forum: post.Forum}
	if err := s.policy.Authorize(ctx, authz.EntityPost, authz.OpRead, authz.Actor{ID: currentUserID}, row); err != nil {
		return nil, err
	}
	limit = normalizePageSize(limit)
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// UpdateComment lets the author edit the comment body.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	var forum *models.Forum
	if comment.Post != nil {
		forum = comment.Post.Forum
	}
	row := authz.CommentRow{Comment: comment, Forum: forum}
	if err := s.policy.Authorize(ctx, authz.EntityComment, authz.OpRead, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityComment, authz.OpUpdate, authz.Actor{ID: in.UserID}, row); err != nil {
		return nil, err
	}

	comment.Content = in.Content
	comment.Post = nil
	comment.Author = nil
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}
