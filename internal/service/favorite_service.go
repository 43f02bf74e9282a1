package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/models"
	"cheznous/internal/repository"
)

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	forumRepo    repository.ForumRepository
	postRepo     repository.PostRepository
	policy       *authz.Policy
}

type ToggleFavoriteInput struct {
	UserID uint
	Type   models.FavoriteType
	ItemID uint
}

// ToggleFavoriteResult reports what the toggle did.
type ToggleFavoriteResult struct {
	Favorited bool `json:"favorited"`
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	forumRepo repository.ForumRepository,
	postRepo repository.PostRepository,
	policy *authz.Policy,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		forumRepo:    forumRepo,
		postRepo:     postRepo,
		policy:       policy,
	}
}

// ToggleFavorite bookmarks the item if it is not bookmarked, and removes the
// bookmark otherwise. The uniqueness constraint on (user, type, item) keeps
// concurrent toggles from ever producing duplicates.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, in ToggleFavoriteInput) (*ToggleFavoriteResult, error) {
	if err := s.checkTargetVisible(ctx, in); err != nil {
		return nil, err
	}

	fav := &models.Favorite{UserID: in.UserID, Type: in.Type, ItemID: in.ItemID}
	if err := s.policy.Authorize(ctx, authz.EntityFavorite, authz.OpInsert, authz.Actor{ID: in.UserID}, fav); err != nil {
		return nil, err
	}

	// Try to remove first; if nothing was there, this is an add.
	removed, err := s.favoriteRepo.Remove(ctx, in.UserID, in.Type, in.ItemID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &ToggleFavoriteResult{Favorited: false}, nil
	}

	if _, err := s.favoriteRepo.Insert(ctx, fav); err != nil {
		return nil, err
	}
	return &ToggleFavoriteResult{Favorited: true}, nil
}

// ListFavorites returns the user's bookmarks, optionally filtered by type.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint, favType models.FavoriteType) ([]*models.Favorite, error) {
	if favType != "" && favType != models.FavoriteTypeForum && favType != models.FavoriteTypePost {
		return nil, models.NewValidationError("type must be 'forum' or 'post'")
	}
	return s.favoriteRepo.ListByUser(ctx, userID, favType)
}

// checkTargetVisible verifies the bookmarked item exists and is visible to
// the user. Private content the user cannot see surfaces as NOT_FOUND.
func (s *FavoriteService) checkTargetVisible(ctx context.Context, in ToggleFavoriteInput) error {
	actor := authz.Actor{ID: in.UserID}
	switch in.Type {
	case models.FavoriteTypeForum:
		forum, err := s.forumRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return err
		}
		return s.policy.Authorize(ctx, authz.EntityForum, authz.OpRead, actor, forum)
	case models.FavoriteTypePost:
		post, err := s.postRepo.GetByID(ctx, in.ItemID, in.UserID)
		if err != nil {
			return err
		}
		row := authz.PostRow{Post: post, Forum: post.Forum}
		return s.policy.Authorize(ctx, authz.EntityPost, authz.OpRead, actor, row)
	default:
		return models.NewValidationError("type must be 'forum' or 'post'")
	}
}
