package service

import (
	"context"
	"testing"

	"cheznous/internal/models"

	"github.com/stretchr/testify/assert"
)

// forumRepoStub is a stub for repository.ForumRepository. It also serves as
// the membership reader handed to authz.NewPolicy in tests.
type forumRepoStub struct {
	createWithCreatorFn func(context.Context, *models.Forum) error
	getByIDFn           func(context.Context, uint) (*models.Forum, error)
	listPublicFn        func(context.Context, int, int) ([]*models.Forum, error)
	listByCategoryFn    func(context.Context, uint, int, int) ([]*models.Forum, error)
	listJoinedFn        func(context.Context, uint) ([]*models.Forum, error)
	updateFn            func(context.Context, *models.Forum) error
	deleteFn            func(context.Context, uint) error
	addMemberFn         func(context.Context, uint, uint, bool) (bool, error)
	isMemberFn          func(context.Context, uint, uint) (bool, error)
	countMembersFn      func(context.Context, uint) (int64, error)
}

func (s *forumRepoStub) CreateWithCreator(ctx context.Context, f *models.Forum) error {
	return s.createWithCreatorFn(ctx, f)
}
func (s *forumRepoStub) GetByID(ctx context.Context, id uint) (*models.Forum, error) {
	return s.getByIDFn(ctx, id)
}
func (s *forumRepoStub) ListPublic(ctx context.Context, limit, offset int) ([]*models.Forum, error) {
	return s.listPublicFn(ctx, limit, offset)
}
func (s *forumRepoStub) ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Forum, error) {
	return s.listByCategoryFn(ctx, categoryID, limit, offset)
}
func (s *forumRepoStub) ListJoined(ctx context.Context, userID uint) ([]*models.Forum, error) {
	return s.listJoinedFn(ctx, userID)
}
func (s *forumRepoStub) Update(ctx context.Context, f *models.Forum) error {
	return s.updateFn(ctx, f)
}
func (s *forumRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *forumRepoStub) AddMember(ctx context.Context, forumID, userID uint, isAdmin bool) (bool, error) {
	return s.addMemberFn(ctx, forumID, userID, isAdmin)
}
func (s *forumRepoStub) IsMember(ctx context.Context, forumID, userID uint) (bool, error) {
	return s.isMemberFn(ctx, forumID, userID)
}
func (s *forumRepoStub) CountMembers(ctx context.Context, forumID uint) (int64, error) {
	return s.countMembersFn(ctx, forumID)
}

func noopForumRepo() *forumRepoStub {
	return &forumRepoStub{
		createWithCreatorFn: func(_ context.Context, f *models.Forum) error { f.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Forum, error) {
			return &models.Forum{ID: id, Title: "Forum public", MemberLimit: models.MemberLimitDefault}, nil
		},
		listPublicFn:     func(_ context.Context, _, _ int) ([]*models.Forum, error) { return nil, nil },
		listByCategoryFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Forum, error) { return nil, nil },
		listJoinedFn:     func(_ context.Context, _ uint) ([]*models.Forum, error) { return nil, nil },
		updateFn:         func(_ context.Context, _ *models.Forum) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		addMemberFn:      func(_ context.Context, _, _ uint, _ bool) (bool, error) { return true, nil },
		isMemberFn:       func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countMembersFn:   func(_ context.Context, _ uint) (int64, error) { return 1, nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn    func(context.Context) ([]models.Category, error)
	getByIDFn func(context.Context, uint) (*models.Category, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Vie Pratique"}, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	listByForumFn func(context.Context, uint, int, int, uint, string) ([]*models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error {
	return s.createFn(ctx, p)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListByForum(ctx context.Context, forumID uint, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error) {
	return s.listByForumFn(ctx, forumID, limit, offset, currentUserID, sort)
}
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error {
	return s.updateFn(ctx, p)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, ForumID: 1, AuthorID: 1, Forum: &models.Forum{ID: 1}}, nil
		},
		listByForumFn: func(_ context.Context, _ uint, _, _ int, _ uint, _ string) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error { c.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, AuthorID: 1, Post: &models.Post{ID: 1, Forum: &models.Forum{ID: 1}}}, nil
		},
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	insertFn     func(context.Context, *models.Favorite) (bool, error)
	removeFn     func(context.Context, uint, models.FavoriteType, uint) (bool, error)
	listByUserFn func(context.Context, uint, models.FavoriteType) ([]*models.Favorite, error)
}

func (s *favoriteRepoStub) Insert(ctx context.Context, f *models.Favorite) (bool, error) {
	return s.insertFn(ctx, f)
}
func (s *favoriteRepoStub) Remove(ctx context.Context, userID uint, t models.FavoriteType, itemID uint) (bool, error) {
	return s.removeFn(ctx, userID, t, itemID)
}
func (s *favoriteRepoStub) ListByUser(ctx context.Context, userID uint, t models.FavoriteType) ([]*models.Favorite, error) {
	return s.listByUserFn(ctx, userID, t)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		insertFn: func(_ context.Context, _ *models.Favorite) (bool, error) { return true, nil },
		removeFn: func(_ context.Context, _ uint, _ models.FavoriteType, _ uint) (bool, error) {
			return false, nil
		},
		listByUserFn: func(_ context.Context, _ uint, _ models.FavoriteType) ([]*models.Favorite, error) {
			return nil, nil
		},
	}
}

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	getFn        func(context.Context, uint, models.ReactionTarget, uint) (*models.Reaction, error)
	insertFn     func(context.Context, *models.Reaction) (bool, error)
	updateKindFn func(context.Context, uint, models.ReactionKind) error
	removeFn     func(context.Context, uint) error
}

func (s *reactionRepoStub) Get(ctx context.Context, userID uint, ct models.ReactionTarget, contentID uint) (*models.Reaction, error) {
	return s.getFn(ctx, userID, ct, contentID)
}
func (s *reactionRepoStub) Insert(ctx context.Context, r *models.Reaction) (bool, error) {
	return s.insertFn(ctx, r)
}
func (s *reactionRepoStub) UpdateKind(ctx context.Context, id uint, kind models.ReactionKind) error {
	return s.updateKindFn(ctx, id, kind)
}
func (s *reactionRepoStub) Remove(ctx context.Context, id uint) error {
	return s.removeFn(ctx, id)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		getFn: func(_ context.Context, _ uint, _ models.ReactionTarget, _ uint) (*models.Reaction, error) {
			return nil, nil
		},
		insertFn:     func(_ context.Context, _ *models.Reaction) (bool, error) { return true, nil },
		updateKindFn: func(_ context.Context, _ uint, _ models.ReactionKind) error { return nil },
		removeFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation), "expected VALIDATION_ERROR, got %v", err)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, models.IsCode(err, code), "expected %s, got %v", code, err)
}

type userRepoStub struct {
	getByIDFn func(ctx context.Context, id uint) (*models.User, error)
	updateFn  func(ctx context.Context, user *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}
func (s *userRepoStub) GetByUsername(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}
func (s *userRepoStub) Create(_ context.Context, _ *models.User) error { return nil }
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(_ context.Context, _ uint) error { return nil }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "membre"}, nil
		},
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
	}
}
