// Package authz implements row-level authorization as a declarative rule
// table keyed by (entity, operation). Services consult it before every
// mutation; repositories additionally scope reads so that rows invisible to
// the caller are simply absent from result sets.
package authz

import (
	"context"

	"cheznous/internal/models"
)

// Entity names a protected resource kind.
type Entity string

const (
	EntityUser        Entity = "user"
	EntityForum       Entity = "forum"
	EntityPost        Entity = "post"
	EntityComment     Entity = "comment"
	EntityForumMember Entity = "forum_member"
	EntityFavorite    Entity = "favorite"
	EntityReaction    Entity = "reaction"
)

// Operation names an access kind.
type Operation string

const (
	OpRead   Operation = "read"
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Actor is the caller's identity. The zero Actor is anonymous.
type Actor struct {
	ID uint
}

// Authenticated reports whether the actor carries an identity.
func (a Actor) Authenticated() bool {
	return a.ID != 0
}

// MembershipReader reports whether a user holds a membership row for a forum.
// The forum repository implements it.
type MembershipReader interface {
	IsMember(ctx context.Context, forumID, userID uint) (bool, error)
}

// PostRow couples a post with its parent forum so post rules can evaluate
// forum privacy without a second lookup.
type PostRow struct {
	Post  *models.Post
	Forum *models.Forum
}

// CommentRow couples a comment with the forum its post belongs to; comment
// visibility is inherited from the parent forum.
type CommentRow struct {
	Comment *models.Comment
	Forum   *models.Forum
}

// Rule is a single (entity, operation) predicate. It returns whether the
// actor may perform the operation on the row.
type Rule func(ctx context.Context, actor Actor, row any) (bool, error)

// Policy evaluates the rule table. Unknown (entity, operation) pairs deny.
type Policy struct {
	members MembershipReader
	rules   map[Entity]map[Operation]Rule
}

// NewPolicy builds the full rule table over the given membership reader.
func NewPolicy(members MembershipReader) *Policy {
	p := &Policy{members: members}

	ownerOnly := func(ownerID func(row any) uint) Rule {
		return func(_ context.Context, actor Actor, row any) (bool, error) {
			return actor.Authenticated() && actor.ID == ownerID(row), nil
		}
	}

	p.rules = map[Entity]map[Operation]Rule{
		EntityUser: {
			// Profiles are world-readable, even anonymously.
			OpRead: allow,
			OpUpdate: ownerOnly(func(row any) uint {
				return row.(*models.User).ID
			}),
		},
		EntityForum: {
			OpRead: func(ctx context.Context, actor Actor, row any) (bool, error) {
				return p.forumVisible(ctx, actor, row.(*models.Forum))
			},
			OpInsert: func(_ context.Context, actor Actor, row any) (bool, error) {
				f := row.(*models.Forum)
				return actor.Authenticated() && actor.ID == f.CreatorID, nil
			},
			OpUpdate: ownerOnly(func(row any) uint {
				return row.(*models.Forum).CreatorID
			}),
		},
		EntityPost: {
			OpRead: func(ctx context.Context, actor Actor, row any) (bool, error) {
				return p.forumVisible(ctx, actor, row.(PostRow).Forum)
			},
			OpInsert: func(ctx context.Context, actor Actor, row any) (bool, error) {
				r := row.(PostRow)
				if !actor.Authenticated() || actor.ID != r.Post.AuthorID {
					return false, nil
				}
				if !r.Forum.IsPrivate {
					return true, nil
				}
				return p.members.IsMember(ctx, r.Forum.ID, actor.ID)
			},
			OpUpdate: ownerOnly(func(row any) uint {
				return row.(PostRow).Post.AuthorID
			}),
		},
		EntityComment: {
			OpRead: func(ctx context.Context, actor Actor, row any) (bool, error) {
				return p.forumVisible(ctx, actor, row.(CommentRow).Forum)
			},
			OpInsert: func(ctx context.Context, actor Actor, row any) (bool, error) {
				r := row.(CommentRow)
				if !actor.Authenticated() || actor.ID != r.Comment.AuthorID {
					return false, nil
				}
				return p.forumVisible(ctx, actor, r.Forum)
			},
			OpUpdate: ownerOnly(func(row any) uint {
				return row.(CommentRow).Comment.AuthorID
			}),
		},
		EntityForumMember: {
			// Only the acting user may enroll themself; admin enrollment of
			// the creator happens inside the forum-creation transaction and
			// is attributed to the creator.
			OpInsert: ownerOnly(func(row any) uint {
				return row.(*models.ForumMember).UserID
			}),
		},
		EntityFavorite: {
			OpInsert: ownerOnly(func(row any) uint {
				return row.(*models.Favorite).UserID
			}),
			OpDelete: ownerOnly(func(row any) uint {
				return row.(*models.Favorite).UserID
			}),
		},
		EntityReaction: {
			OpInsert: ownerOnly(func(row any) uint {
				return row.(*models.Reaction).UserID
			}),
			OpUpdate: ownerOnly(func(row any) uint {
				return row.(*models.Reaction).UserID
			}),
			OpDelete: ownerOnly(func(row any) uint {
				return row.(*models.Reaction).UserID
			}),
		},
	}

	return p
}

func allow(context.Context, Actor, any) (bool, error) {
	return true, nil
}

// forumVisible is the shared read predicate: public forums are visible to
// everyone, private forums only to members.
func (p *Policy) forumVisible(ctx context.Context, actor Actor, forum *models.Forum) (bool, error) {
	if forum == nil {
		// Orphaned rows (parent forum soft-deleted) are not visible.
		return false, nil
	}
	if !forum.IsPrivate {
		return true, nil
	}
	if !actor.Authenticated() {
		return false, nil
	}
	return p.members.IsMember(ctx, forum.ID, actor.ID)
}

// Authorize evaluates the rule for (entity, op) against actor and row.
// It returns nil when allowed, a FORBIDDEN AppError when denied, and a
// NOT_FOUND AppError for denied reads so callers never reveal that a hidden
// row exists.
func (p *Policy) Authorize(ctx context.Context, entity Entity, op Operation, actor Actor, row any) error {
	ops, ok := p.rules[entity]
	if !ok {
		return models.NewForbiddenError("operation not permitted")
	}
	rule, ok := ops[op]
	if !ok {
		return models.NewForbiddenError("operation not permitted")
	}

	allowed, err := rule(ctx, actor, row)
	if err != nil {
		return models.NewInternalError(err)
	}
	if allowed {
		return nil
	}
	if op == OpRead {
		// Denied reads must be indistinguishable from missing rows.
		return models.NewNotFoundError(string(entity), "requested")
	}
	return models.NewForbiddenError("operation not permitted")
}
