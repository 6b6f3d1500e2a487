package follower

import (
	"context"

	"yatube/internal/core/follower"
)

// FollowerRepository stores follow edges. FollowUser must rely on the unique
// (user, author) index so concurrent identical requests create one row.
type FollowerRepository interface {
	// FollowUser inserts the edge and reports whether a new row was created.
	FollowUser(ctx context.Context, follow *follower.Follow) (bool, error)
	// UnfollowUser deletes the edge and reports whether a row was removed.
	UnfollowUser(ctx context.Context, userID, authorID string) (bool, error)
	GetFollowersByUserID(ctx context.Context, authorID string) ([]*follower.Follow, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*follower.Follow, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}

type FollowerDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	AuthorID string `json:"authorId"`
	Username string `json:"username,omitempty"`
}
