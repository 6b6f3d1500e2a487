package followerapp

import (
	"context"
	"sync"
	"testing"
	"time"

	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	followerEntity "yatube/internal/core/follower"
	"yatube/internal/core/post"
	"yatube/internal/core/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type env struct {
	db    *gorm.DB
	svc   *FollowerService
	users *database.UserRepositoryDatabase
	posts *database.PostRepositoryDatabase
}

func newEnv(t *testing.T) *env {
	db := dbtest.New(t)
	posts := database.NewPostRepositoryDatabase(db)
	return &env{
		db:    db,
		svc:   NewFollowerService(database.NewFollowerRepositoryDatabase(db), posts, 10, zaptest.NewLogger(t)),
		users: database.NewUserRepositoryDatabase(db),
		posts: posts,
	}
}

func (e *env) user(t *testing.T, name string) *user.User {
	u, err := e.users.Create(context.Background(), &user.User{Username: name, Password: "x"})
	require.NoError(t, err)
	return u
}

func (e *env) edges(t *testing.T) int64 {
	var n int64
	require.NoError(t, e.db.Model(&followerEntity.Follow{}).Count(&n).Error)
	return n
}

func TestFollowUser(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.user(t, "a").ID.String()
	b := e.user(t, "b").ID.String()

	res, err := e.svc.FollowUser(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, followerEntity.ResultFollowed, res)

	t.Run("following twice keeps one edge", func(t *testing.T) {
		res, err := e.svc.FollowUser(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, followerEntity.ResultAlreadyFollowing, res)
		assert.Equal(t, int64(1), e.edges(t))
	})

	t.Run("self follow is ignored", func(t *testing.T) {
		res, err := e.svc.FollowUser(ctx, a, a)
		require.NoError(t, err)
		assert.Equal(t, followerEntity.ResultSelfIgnored, res)

		ok, err := e.svc.IsFollowing(ctx, a, a)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1), e.edges(t))
	})

	t.Run("is following is directional", func(t *testing.T) {
		ok, err := e.svc.IsFollowing(ctx, a, b)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = e.svc.IsFollowing(ctx, b, a)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = e.svc.IsFollowing(ctx, "", a)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("edge lists", func(t *testing.T) {
		followers, err := e.svc.GetFollowersByUserID(ctx, b)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "a", followers[0].Username)

		following, err := e.svc.GetFollowingByUserID(ctx, a)
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, "b", following[0].Username)

		none, err := e.svc.GetFollowingByUserID(ctx, b)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("unfollow", func(t *testing.T) {
		res, err := e.svc.UnfollowUser(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, followerEntity.ResultUnfollowed, res)
		assert.Zero(t, e.edges(t))

		res, err = e.svc.UnfollowUser(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, followerEntity.ResultNotFollowing, res)
	})
}

func TestConcurrentFollowCreatesOneEdge(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.user(t, "a").ID.String()
	b := e.user(t, "b").ID.String()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.svc.FollowUser(ctx, a, b)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), e.edges(t))
}

func TestListFollowedPosts(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.user(t, "a")
	b := e.user(t, "b")
	c := e.user(t, "c")

	_, err := e.svc.FollowUser(ctx, a.ID.String(), b.ID.String())
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older, err := e.posts.Create(ctx, &post.Post{Text: "older", AuthorID: b.ID, PubDate: base})
	require.NoError(t, err)
	newer, err := e.posts.Create(ctx, &post.Post{Text: "newer", AuthorID: b.ID, PubDate: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = e.posts.Create(ctx, &post.Post{Text: "own", AuthorID: a.ID, PubDate: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	page, err := e.svc.ListFollowedPosts(ctx, a.ID.String(), "")
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, newer.ID.String(), page.Posts[0].ID)
	assert.Equal(t, older.ID.String(), page.Posts[1].ID)

	page, err = e.svc.ListFollowedPosts(ctx, c.ID.String(), "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	_, err = e.svc.ListFollowedPosts(ctx, "", "")
	assert.Error(t, err)
}
