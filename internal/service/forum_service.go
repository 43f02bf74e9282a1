// Package service holds the application's business rules. Services validate
// input, consult the authorization policy, and orchestrate repositories.
package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/featureflags"
	"cheznous/internal/models"
	"cheznous/internal/observability"
	"cheznous/internal/repository"
	"cheznous/internal/validation"

	"github.com/google/uuid"
)

// PremiumLimitsFlag gates enforcement of private-forum member limits.
const PremiumLimitsFlag = "premium_limits"

type ForumService struct {
	forumRepo    repository.ForumRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	policy       *authz.Policy
	flags        *featureflags.Manager
}

type CreateForumInput struct {
	UserID      uint
	Title       string
	Description string
	CategoryID  *uint
	IsPrivate   bool
	AccessCode  string
	IsPremium   bool
}

type UpdateForumInput struct {
	UserID      uint
	ForumID     uint
	Title       *string
	Description *string
	AccessCode  *string
}

type JoinForumInput struct {
	UserID     uint
	ForumID    uint
	AccessCode string
}

func NewForumService(
	forumRepo repository.ForumRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	policy *authz.Policy,
	flags *featureflags.Manager,
) *ForumService {
	return &ForumService{
		forumRepo:    forumRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		policy:       policy,
		flags:        flags,
	}
}

// CreateForum creates a public or private forum. The creator is enrolled as
// an admin member in the same transaction as the forum row.
func (s *ForumService) CreateForum(ctx context.Context, in CreateForumInput) (*models.Forum, error) {
	if err := validation.ValidateForumTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	forum := &models.Forum{
		Title:       in.Title,
		Description: in.Description,
		IsPrivate:   in.IsPrivate,
		CreatorID:   in.UserID,
		MemberLimit: models.MemberLimitDefault,
	}

	if in.IsPremium {
		// The raised member limit is reserved for premium accounts.
		creator, err := s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if !creator.IsPremium {
			return nil, models.NewForbiddenError("Premium forums require a premium account")
		}
		forum.IsPremium = true
		forum.MemberLimit = models.MemberLimitPremium
	}

	if in.IsPrivate {
		// Private forums live outside the public taxonomy.
		if in.CategoryID != nil {
			return nil, models.NewValidationError("A private forum cannot belong to a category")
		}
		code := in.AccessCode
		if code == "" {
			code = uuid.NewString()
		}
		if err := validation.ValidateAccessCode(code); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		forum.AccessCode = &code
	} else {
		if in.CategoryID == nil {
			return nil, models.NewValidationError("A public forum requires a category")
		}
		if in.AccessCode != "" {
			return nil, models.NewValidationError("A public forum cannot have an access code")
		}
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		forum.CategoryID = in.CategoryID
	}

	if err := s.policy.Authorize(ctx, authz.EntityForum, authz.OpInsert, authz.Actor{ID: in.UserID}, forum); err != nil {
		return nil, err
	}

	if err := s.forumRepo.CreateWithCreator(ctx, forum); err != nil {
		return nil, err
	}
	return s.forumRepo.GetByID(ctx, forum.ID)
}

// GetForum returns the forum if it is visible to the requester. Hidden private
// forums surface as NOT_FOUND, never as FORBIDDEN.
func (s *ForumService) GetForum(ctx context.Context, forumID, currentUserID uint) (*models.Forum, error) {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityForum, authz.OpRead, authz.Actor{ID: currentUserID}, forum); err != nil {
		return nil, err
	}
	return forum, nil
}

func (s *ForumService) ListPublicForums(ctx context.Context, limit, offset int) ([]*models.Forum, error) {
	limit = normalizePageSize(limit)
	return s.forumRepo.ListPublic(ctx, limit, offset)
}

func (s *ForumService) ListForumsByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Forum, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	limit = normalizePageSize(limit)
	return s.forumRepo.ListByCategory(ctx, categoryID, limit, offset)
}

// ListMyForums returns every forum the user belongs to, private ones included.
func (s *ForumService) ListMyForums(ctx context.Context, userID uint) ([]*models.Forum, error) {
	return s.forumRepo.ListJoined(ctx, userID)
}

// UpdateForum lets the creator change title, description, or access code.
// Privacy is immutable after creation.
func (s *ForumService) UpdateForum(ctx context.Context, in UpdateForumInput) (*models.Forum, error) {
	forum, err := s.forumRepo.GetByID(ctx, in.ForumID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityForum, authz.OpUpdate, authz.Actor{ID: in.UserID}, forum); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validation.ValidateForumTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		forum.Title = *in.Title
	}
	if in.Description != nil {
		forum.Description = *in.Description
	}
	if in.AccessCode != nil {
		if !forum.IsPrivate {
			return nil, models.NewValidationError("A public forum cannot have an access code")
		}
		if err := validation.ValidateAccessCode(*in.AccessCode); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		forum.AccessCode = in.AccessCode
	}

	if err := s.forumRepo.Update(ctx, forum); err != nil {
		return nil, err
	}
	return s.forumRepo.GetByID(ctx, forum.ID)
}

// JoinForum enrolls the user. Public forums are open to any authenticated
// user; private forums require the matching access code and, when premium
// limits are enforced, a free member slot. Joining twice is a no-op.
func (s *ForumService) JoinForum(ctx context.Context, in JoinForumInput) error {
	forum, err := s.forumRepo.GetByID(ctx, in.ForumID)
	if err != nil {
		observability.ForumJoins.WithLabelValues("not_found").Inc()
		return err
	}

	member := &models.ForumMember{ForumID: in.ForumID, UserID: in.UserID}
	if err := s.policy.Authorize(ctx, authz.EntityForumMember, authz.OpInsert, authz.Actor{ID: in.UserID}, member); err != nil {
		return err
	}

	if forum.IsPrivate {
		if forum.AccessCode == nil || in.AccessCode != *forum.AccessCode {
			observability.ForumJoins.WithLabelValues("bad_code").Inc()
			return models.NewInvalidAccessCodeError()
		}

		// Member limits are a paid feature; enforcement sits behind a flag so
		// it can be rolled out gradually. Limits are a property of the
		// creator's plan, so the flag is evaluated against the creator.
		if s.flags.Enabled(PremiumLimitsFlag, forum.CreatorID) {
			count, err := s.forumRepo.CountMembers(ctx, in.ForumID)
			if err != nil {
				return err
			}
			if count >= int64(forum.MemberLimit) {
				observability.ForumJoins.WithLabelValues("full").Inc()
				return models.NewConflictError("Forum has reached its member limit")
			}
		}
	}

	if _, err := s.forumRepo.AddMember(ctx, in.ForumID, in.UserID, false); err != nil {
		observability.ForumJoins.WithLabelValues("error").Inc()
		return err
	}
	observability.ForumJoins.WithLabelValues("ok").Inc()
	return nil
}

func normalizePageSize(limit int) int {
	if limit <= 0 {
		return repository.DefaultForumPageSize
	}
	if limit > 100 {
		return 100
	}
	return limit
}
