package service

import (
	"context"
	"testing"

	"cheznous/internal/authz"
	"cheznous/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReactionService(reactionRepo *reactionRepoStub, postRepo *postRepoStub) *ReactionService {
	forumRepo := noopForumRepo()
	return NewReactionService(reactionRepo, postRepo, noopCommentRepo(), authz.NewPolicy(forumRepo))
}

func TestReactionService_Toggle_AddsWhenAbsent(t *testing.T) {
	t.Parallel()

	inserted := false
	reactionRepo := noopReactionRepo()
	reactionRepo.insertFn = func(_ context.Context, r *models.Reaction) (bool, error) {
		inserted = true
		assert.Equal(t, models.ReactionLike, r.Type)
		assert.Equal(t, models.ReactionTargetPost, r.ContentType)
		return true, nil
	}

	svc := newReactionService(reactionRepo, noopPostRepo())
	res, err := svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: models.ReactionLike, ContentType: models.ReactionTargetPost, ContentID: 1,
	})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "like", res.Reaction)
}

func TestReactionService_Toggle_SameKindRemoves(t *testing.T) {
	t.Parallel()

	removed := false
	reactionRepo := noopReactionRepo()
	reactionRepo.getFn = func(_ context.Context, _ uint, _ models.ReactionTarget, _ uint) (*models.Reaction, error) {
		return &models.Reaction{ID: 7, UserID: 1, Type: models.ReactionLike}, nil
	}
	reactionRepo.removeFn = func(_ context.Context, id uint) error {
		removed = true
		assert.Equal(t, uint(7), id)
		return nil
	}
	reactionRepo.insertFn = func(_ context.Context, _ *models.Reaction) (bool, error) {
		t.Fatal("insert must not be called when removing")
		return false, nil
	}

	svc := newReactionService(reactionRepo, noopPostRepo())
	res, err := svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: models.ReactionLike, ContentType: models.ReactionTargetPost, ContentID: 1,
	})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, res.Reaction)
}

func TestReactionService_Toggle_OppositeKindSwitchesInPlace(t *testing.T) {
	t.Parallel()

	switched := false
	reactionRepo := noopReactionRepo()
	reactionRepo.getFn = func(_ context.Context, _ uint, _ models.ReactionTarget, _ uint) (*models.Reaction, error) {
		return &models.Reaction{ID: 7, UserID: 1, Type: models.ReactionLike}, nil
	}
	reactionRepo.updateKindFn = func(_ context.Context, id uint, kind models.ReactionKind) error {
		switched = true
		assert.Equal(t, uint(7), id)
		assert.Equal(t, models.ReactionDislike, kind)
		return nil
	}
	reactionRepo.insertFn = func(_ context.Context, _ *models.Reaction) (bool, error) {
		t.Fatal("switching must update the existing row, not insert")
		return false, nil
	}
	reactionRepo.removeFn = func(_ context.Context, _ uint) error {
		t.Fatal("switching must update the existing row, not delete")
		return nil
	}

	svc := newReactionService(reactionRepo, noopPostRepo())
	res, err := svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: models.ReactionDislike, ContentType: models.ReactionTargetPost, ContentID: 1,
	})
	require.NoError(t, err)
	assert.True(t, switched)
	assert.Equal(t, "dislike", res.Reaction)
}

func TestReactionService_Toggle_Validation(t *testing.T) {
	t.Parallel()

	svc := newReactionService(noopReactionRepo(), noopPostRepo())

	_, err := svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: "love", ContentType: models.ReactionTargetPost, ContentID: 1,
	})
	assertValidationError(t, err)

	_, err = svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: models.ReactionLike, ContentType: "story", ContentID: 1,
	})
	assertValidationError(t, err)
}

func TestReactionService_Toggle_HiddenPostNotFound(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, ForumID: 2, AuthorID: 3, Forum: &models.Forum{ID: 2, IsPrivate: true}}, nil
	}

	svc := newReactionService(noopReactionRepo(), postRepo)
	_, err := svc.ToggleReaction(context.Background(), ToggleReactionInput{
		UserID: 1, Kind: models.ReactionLike, ContentType: models.ReactionTargetPost, ContentID: 9,
	})
	assertCode(t, err, models.CodeNotFound)
}
