package authz

import (
	"context"
	"testing"

	"cheznous/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// membershipStub implements MembershipReader over a fixed set.
type membershipStub struct {
	members map[[2]uint]bool
	err     error
}

func (m *membershipStub) IsMember(_ context.Context, forumID, userID uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.members[[2]uint{forumID, userID}], nil
}

func newMembershipStub(pairs ...[2]uint) *membershipStub {
	m := &membershipStub{members: map[[2]uint]bool{}}
	for _, p := range pairs {
		m.members[p] = true
	}
	return m
}

func TestPolicy_ForumVisibility(t *testing.T) {
	t.Parallel()

	public := &models.Forum{ID: 1, IsPrivate: false, CreatorID: 10}
	private := &models.Forum{ID: 2, IsPrivate: true, CreatorID: 10}
	policy := NewPolicy(newMembershipStub([2]uint{2, 10}))
	ctx := context.Background()

	t.Run("public forum readable anonymously", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, policy.Authorize(ctx, EntityForum, OpRead, Actor{}, public))
	})

	t.Run("private forum hidden from non-member", func(t *testing.T) {
		t.Parallel()
		err := policy.Authorize(ctx, EntityForum, OpRead, Actor{ID: 99}, private)
		require.Error(t, err)
		// Denial must read as not-found, never forbidden.
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("private forum hidden from anonymous", func(t *testing.T) {
		t.Parallel()
		err := policy.Authorize(ctx, EntityForum, OpRead, Actor{}, private)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("private forum visible to member", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, policy.Authorize(ctx, EntityForum, OpRead, Actor{ID: 10}, private))
	})
}

func TestPolicy_ForumWrite(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(newMembershipStub())
	ctx := context.Background()
	forum := &models.Forum{ID: 1, CreatorID: 10}

	t.Run("creator may insert as themself", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, policy.Authorize(ctx, EntityForum, OpInsert, Actor{ID: 10}, forum))
	})

	t.Run("insert attributed to someone else denied", func(t *testing.T) {
		t.Parallel()
		err := policy.Authorize(ctx, EntityForum, OpInsert, Actor{ID: 11}, forum)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("anonymous insert denied", func(t *testing.T) {
		t.Parallel()
		err := policy.Authorize(ctx, EntityForum, OpInsert, Actor{}, &models.Forum{CreatorID: 0})
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("only creator may update", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, policy.Authorize(ctx, EntityForum, OpUpdate, Actor{ID: 10}, forum))
		err := policy.Authorize(ctx, EntityForum, OpUpdate, Actor{ID: 11}, forum)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})
}

func TestPolicy_PostInsert(t *testing.T) {
	t.Parallel()

	publicForum := &models.Forum{ID: 1, IsPrivate: false}
	privateForum := &models.Forum{ID: 2, IsPrivate: true}
	policy := NewPolicy(newMembershipStub([2]uint{2, 7}))
	ctx := context.Background()

	t.Run("any authenticated author in public forum", func(t *testing.T) {
		t.Parallel()
		row := PostRow{Post: &models.Post{AuthorID: 5}, Forum: publicForum}
		assert.NoError(t, policy.Authorize(ctx, EntityPost, OpInsert, Actor{ID: 5}, row))
	})

	t.Run("member only in private forum", func(t *testing.T) {
		t.Parallel()
		member := PostRow{Post: &models.Post{AuthorID: 7}, Forum: privateForum}
		assert.NoError(t, policy.Authorize(ctx, EntityPost, OpInsert, Actor{ID: 7}, member))

		outsider := PostRow{Post: &models.Post{AuthorID: 8}, Forum: privateForum}
		err := policy.Authorize(ctx, EntityPost, OpInsert, Actor{ID: 8}, outsider)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("authoring as someone else denied", func(t *testing.T) {
		t.Parallel()
		row := PostRow{Post: &models.Post{AuthorID: 5}, Forum: publicForum}
		err := policy.Authorize(ctx, EntityPost, OpInsert, Actor{ID: 6}, row)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})
}

func TestPolicy_PostRead_PrivateForum(t *testing.T) {
	t.Parallel()

	privateForum := &models.Forum{ID: 2, IsPrivate: true}
	policy := NewPolicy(newMembershipStub([2]uint{2, 7}))
	ctx := context.Background()
	row := PostRow{Post: &models.Post{ID: 1, ForumID: 2}, Forum: privateForum}

	assert.NoError(t, policy.Authorize(ctx, EntityPost, OpRead, Actor{ID: 7}, row))

	err := policy.Authorize(ctx, EntityPost, OpRead, Actor{ID: 8}, row)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestPolicy_OwnerOnlyEntities(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(newMembershipStub())
	ctx := context.Background()

	t.Run("favorite insert owner only", func(t *testing.T) {
		t.Parallel()
		fav := &models.Favorite{UserID: 3, Type: models.FavoriteTypePost, ItemID: 1}
		assert.NoError(t, policy.Authorize(ctx, EntityFavorite, OpInsert, Actor{ID: 3}, fav))
		err := policy.Authorize(ctx, EntityFavorite, OpInsert, Actor{ID: 4}, fav)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("reaction update owner only", func(t *testing.T) {
		t.Parallel()
		re := &models.Reaction{UserID: 3, Type: models.ReactionLike}
		assert.NoError(t, policy.Authorize(ctx, EntityReaction, OpUpdate, Actor{ID: 3}, re))
		err := policy.Authorize(ctx, EntityReaction, OpUpdate, Actor{ID: 4}, re)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("membership self-enrollment only", func(t *testing.T) {
		t.Parallel()
		member := &models.ForumMember{ForumID: 1, UserID: 3}
		assert.NoError(t, policy.Authorize(ctx, EntityForumMember, OpInsert, Actor{ID: 3}, member))
		err := policy.Authorize(ctx, EntityForumMember, OpInsert, Actor{ID: 4}, member)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})

	t.Run("user update owner only", func(t *testing.T) {
		t.Parallel()
		user := &models.User{ID: 3}
		assert.NoError(t, policy.Authorize(ctx, EntityUser, OpUpdate, Actor{ID: 3}, user))
		err := policy.Authorize(ctx, EntityUser, OpUpdate, Actor{ID: 4}, user)
		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})
}

func TestPolicy_UnknownOperationDenies(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(newMembershipStub())
	err := policy.Authorize(context.Background(), EntityCategoryUnknown(), OpDelete, Actor{ID: 1}, nil)
	assert.True(t, models.IsCode(err, models.CodeForbidden))
}

// EntityCategoryUnknown returns an entity with no rules, exercising default deny.
func EntityCategoryUnknown() Entity {
	return Entity("category")
}
