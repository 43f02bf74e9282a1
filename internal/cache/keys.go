package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	CategoriesKey        = "categories"
	PublicForumsKey      = "forums:public"
	CategoryForumsPrefix = "category:%d:forums"
	ForumKeyPrefix       = "forum:%d"
	PostKeyPrefix        = "post:%d"
	UserKeyPrefix        = "user:%d"
)

const (
	// Categories are a fixed taxonomy, safe to cache for a long time.
	CategoriesTTL   = time.Hour
	PublicForumsTTL = 2 * time.Minute
	ForumTTL        = 10 * time.Minute
	PostTTL         = 5 * time.Minute
	UserTTL         = 5 * time.Minute
)

func CategoryForumsKey(categoryID uint) string {
	return fmt.Sprintf(CategoryForumsPrefix, categoryID)
}

func ForumKey(forumID uint) string {
	return fmt.Sprintf(ForumKeyPrefix, forumID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateForumLists drops the list keys a new or updated forum can appear in.
func InvalidateForumLists(ctx context.Context, categoryID *uint) {
	Invalidate(ctx, PublicForumsKey)
	if categoryID != nil {
		Invalidate(ctx, CategoryForumsKey(*categoryID))
	}
}

func InvalidateForum(ctx context.Context, forumID uint) {
	Invalidate(ctx, ForumKey(forumID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
