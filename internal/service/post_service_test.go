package service

import (
	"context"
	"strings"
	"testing"

	"cheznous/internal/authz"
	"cheznous/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(postRepo *postRepoStub, forumRepo *forumRepoStub) *PostService {
	return NewPostService(postRepo, forumRepo, authz.NewPolicy(forumRepo))
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := newPostService(noopPostRepo(), noopForumRepo())
	ctx := context.Background()

	t.Run("title too short", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, ForumID: 1, Title: "abcd", Content: strings.Repeat("x", 20)})
		assertValidationError(t, err)
	})

	t.Run("content too short", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, ForumID: 1, Title: "Bonne arrivée", Content: "court"})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_PrivateForumRequiresMembership(t *testing.T) {
	t.Parallel()

	code := "secret"
	forumRepo := noopForumRepo()
	forumRepo.getByIDFn = func(_ context.Context, id uint) (*models.Forum, error) {
		return &models.Forum{ID: id, IsPrivate: true, AccessCode: &code, CreatorID: 2}, nil
	}
	forumRepo.isMemberFn = func(_ context.Context, _, userID uint) (bool, error) {
		return userID == 2, nil
	}

	svc := newPostService(noopPostRepo(), forumRepo)
	ctx := context.Background()
	input := CreatePostInput{ForumID: 5, Title: "Bonne arrivée", Content: strings.Repeat("x", 20)}

	t.Run("non-member gets NOT_FOUND", func(t *testing.T) {
		t.Parallel()
		in := input
		in.UserID = 9
		_, err := svc.CreatePost(ctx, in)
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("member can post", func(t *testing.T) {
		t.Parallel()
		in := input
		in.UserID = 2
		post, err := svc.CreatePost(ctx, in)
		require.NoError(t, err)
		assert.NotNil(t, post)
	})
}

func TestPostService_CreatePost_SetsAuthor(t *testing.T) {
	t.Parallel()

	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 11
		created = p
		return nil
	}

	svc := newPostService(postRepo, noopForumRepo())
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID: 6, ForumID: 1, Title: "Bonne arrivée", Content: strings.Repeat("x", 20), IsAnonymous: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(6), created.AuthorID)
	assert.True(t, created.IsAnonymous)
}

func TestPostService_UpdatePost_AuthorOnly(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, ForumID: 1, AuthorID: 10, Forum: &models.Forum{ID: 1}}, nil
	}

	svc := newPostService(postRepo, noopForumRepo())
	newTitle := "Nouveau titre du post"
	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 1, Title: &newTitle})
	assertCode(t, err, models.CodeForbidden)
}

func TestPostService_GetPost_HiddenForumNotFound(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, ForumID: 2, AuthorID: 3, Forum: &models.Forum{ID: 2, IsPrivate: true}}, nil
	}

	svc := newPostService(postRepo, noopForumRepo())
	_, err := svc.GetPost(context.Background(), 9, 0)
	assertCode(t, err, models.CodeNotFound)
}
