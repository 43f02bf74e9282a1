package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/models"
	"cheznous/internal/observability"
	"cheznous/internal/repository"
)

type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	policy       *authz.Policy
}

type ToggleReactionInput struct {
	UserID      uint
	Kind        models.ReactionKind
	ContentType models.ReactionTarget
	ContentID   uint
}

// ToggleReactionResult reports the user's reaction after the toggle, empty
// when the toggle removed it.
type ToggleReactionResult struct {
	Reaction string `json:"reaction"`
}

func NewReactionService(
	reactionRepo repository.ReactionRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	policy *authz.Policy,
) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		policy:       policy,
	}
}

// ToggleReaction applies like/dislike toggle semantics: no reaction inserts
// one, the same kind removes it, the opposite kind flips the existing row in
// place so the unique constraint is never violated.
func (s *ReactionService) ToggleReaction(ctx context.Context, in ToggleReactionInput) (*ToggleReactionResult, error) {
	if in.Kind != models.ReactionLike && in.Kind != models.ReactionDislike {
		return nil, models.NewValidationError("type must be 'like' or 'dislike'")
	}
	if err := s.checkTargetVisible(ctx, in); err != nil {
		return nil, err
	}

	actor := authz.Actor{ID: in.UserID}
	existing, err := s.reactionRepo.Get(ctx, in.UserID, in.ContentType, in.ContentID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		reaction := &models.Reaction{
			UserID:      in.UserID,
			Type:        in.Kind,
			ContentType: in.ContentType,
			ContentID:   in.ContentID,
		}
		if err := s.policy.Authorize(ctx, authz.EntityReaction, authz.OpInsert, actor, reaction); err != nil {
			return nil, err
		}
		if _, err := s.reactionRepo.Insert(ctx, reaction); err != nil {
			return nil, err
		}
		observability.ReactionToggles.WithLabelValues(string(in.ContentType), "added").Inc()
		return &ToggleReactionResult{Reaction: string(in.Kind)}, nil
	}

	if existing.Type == in.Kind {
		if err := s.policy.Authorize(ctx, authz.EntityReaction, authz.OpDelete, actor, existing); err != nil {
			return nil, err
		}
		if err := s.reactionRepo.Remove(ctx, existing.ID); err != nil {
			return nil, err
		}
		observability.ReactionToggles.WithLabelValues(string(in.ContentType), "removed").Inc()
		return &ToggleReactionResult{Reaction: ""}, nil
	}

	if err := s.policy.Authorize(ctx, authz.EntityReaction, authz.OpUpdate, actor, existing); err != nil {
		return nil, err
	}
	if err := s.reactionRepo.UpdateKind(ctx, existing.ID, in.Kind); err != nil {
		return nil, err
	}
	observability.ReactionToggles.WithLabelValues(string(in.ContentType), "switched").Inc()
	return &ToggleReactionResult{Reaction: string(in.Kind)}, nil
}

// checkTargetVisible verifies the reacted-to content exists and is visible.
func (s *ReactionService) checkTargetVisible(ctx context.Context, in ToggleReactionInput) error {
	actor := authz.Actor{ID: in.UserID}
	switch in.ContentType {
	case models.ReactionTargetPost:
		post, err := s.postRepo.GetByID(ctx, in.ContentID, in.UserID)
		if err != nil {
			return err
		}
		row := authz.PostRow{Post: post, Forum: post.Forum}
		return s.policy.Authorize(ctx, authz.EntityPost, authz.OpRead, actor, row)
	case models.ReactionTargetComment:
		comment, err := s.commentRepo.GetByID(ctx, in.ContentID)
		if err != nil {
			return err
		}
		var forum *models.Forum
		if comment.Post != nil {
			forum = comment.Post.Forum
		}
		row := authz.CommentRow{Comment: comment, Forum: forum}
		return s.policy.Authorize(ctx, authz.EntityComment, authz.OpRead, actor, row)
	default:
		return models.NewValidationError("content_type must be 'post' or 'comment'")
	}
}
