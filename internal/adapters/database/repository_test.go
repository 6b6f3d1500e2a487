package database_test

import (
	"context"
	"testing"
	"time"

	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/apperror"
	"yatube/internal/core/comment"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	users    *database.UserRepositoryDatabase
	groups   *database.GroupRepositoryDatabase
	posts    *database.PostRepositoryDatabase
	comments *database.CommentRepositoryDatabase
	follows  *database.FollowerRepositoryDatabase
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.New(t)
	return &fixture{
		db:       db,
		users:    database.NewUserRepositoryDatabase(db),
		groups:   database.NewGroupRepositoryDatabase(db),
		posts:    database.NewPostRepositoryDatabase(db),
		comments: database.NewCommentRepositoryDatabase(db),
		follows:  database.NewFollowerRepositoryDatabase(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *user.User {
	u, err := f.users.Create(context.Background(), &user.User{Username: username, Password: "x"})
	require.NoError(t, err)
	return u
}

func (f *fixture) post(t *testing.T, author *user.User, g *group.Group, text string, at time.Time) *post.Post {
	p := &post.Post{Text: text, AuthorID: author.ID, PubDate: at}
	if g != nil {
		p.GroupID = &g.ID
	}
	created, err := f.posts.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "leo")
	assert.NotEqual(t, uuid.Nil, u.ID)

	got, err := f.users.FindByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = f.users.FindByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "leo", got.Username)

	_, err = f.users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.users.Create(ctx, &user.User{Username: "leo", Password: "y"})
	assert.Error(t, err)
}

func TestPostRepositoryListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	g, err := f.groups.Create(ctx, &group.Group{Title: "Test", Slug: "test-slug", Description: "desc"})
	require.NoError(t, err)

	first := f.post(t, alice, g, "first", base)
	second := f.post(t, bob, nil, "second", base.Add(time.Minute))
	third := f.post(t, alice, nil, "third", base.Add(2*time.Minute))

	t.Run("all posts newest first", func(t *testing.T) {
		posts, err := f.posts.List(ctx, postPort.Filter{}, 0, 10)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, []uuid.UUID{posts[0].ID, posts[1].ID, posts[2].ID})
		assert.Equal(t, "alice", posts[0].Author.Username)
	})

	t.Run("offset and limit", func(t *testing.T) {
		posts, err := f.posts.List(ctx, postPort.Filter{}, 1, 1)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, second.ID, posts[0].ID)
	})

	t.Run("by group", func(t *testing.T) {
		filter := postPort.Filter{GroupID: &g.ID}
		count, err := f.posts.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		posts, err := f.posts.List(ctx, filter, 0, 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.NotNil(t, posts[0].Group)
		assert.Equal(t, "test-slug", posts[0].Group.Slug)
	})

	t.Run("by author", func(t *testing.T) {
		count, err := f.posts.Count(ctx, postPort.Filter{AuthorID: &alice.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("followed authors", func(t *testing.T) {
		carol := f.user(t, "carol")
		_, err := f.follows.FollowUser(ctx, &follower.Follow{UserID: carol.ID, AuthorID: bob.ID})
		require.NoError(t, err)

		posts, err := f.posts.List(ctx, postPort.Filter{FollowerID: &carol.ID}, 0, 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, second.ID, posts[0].ID)

		count, err := f.posts.Count(ctx, postPort.Filter{FollowerID: &alice.ID})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestPostRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	g, err := f.groups.Create(ctx, &group.Group{Title: "Test", Slug: "test", Description: "desc"})
	require.NoError(t, err)
	p := f.post(t, alice, g, "before", base)

	p.Text = "after"
	p.GroupID = nil
	p.Image = "posts/a.png"
	updated, err := f.posts.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Nil(t, updated.GroupID)
	assert.Nil(t, updated.Group)
	assert.Equal(t, "posts/a.png", updated.Image)
	assert.True(t, base.Equal(updated.PubDate))

	_, err = f.posts.FindByID(ctx, uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	g, err := f.groups.Create(ctx, &group.Group{Title: "Test", Slug: "test-slug", Description: "desc"})
	require.NoError(t, err)
	p := f.post(t, alice, g, "Hello", base)

	require.NoError(t, f.groups.Delete(ctx, g.ID.String()))

	got, err := f.posts.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)

	_, err = f.groups.FindBySlug(ctx, "test-slug")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, f.groups.Delete(ctx, g.ID.String()), apperror.ErrNotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	p := f.post(t, alice, nil, "Hello", base)
	_, err := f.comments.Create(ctx, &comment.Comment{PostID: p.ID, AuthorID: bob.ID, Text: "hi"})
	require.NoError(t, err)
	_, err = f.follows.FollowUser(ctx, &follower.Follow{UserID: bob.ID, AuthorID: alice.ID})
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&user.User{}, "id = ?", alice.ID).Error)

	_, err = f.posts.FindByID(ctx, p.ID.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	comments, err := f.comments.ListByPost(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Empty(t, comments)
	following, err := f.follows.GetFollowingByUserID(ctx, bob.ID.String())
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	p := f.post(t, alice, nil, "Hello", base)

	for _, text := range []string{"one", "two"} {
		c, err := f.comments.Create(ctx, &comment.Comment{PostID: p.ID, AuthorID: alice.ID, Text: text})
		require.NoError(t, err)
		assert.Equal(t, "alice", c.Author.Username)
		time.Sleep(2 * time.Millisecond)
	}

	comments, err := f.comments.ListByPost(ctx, p.ID.String())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Text)
	assert.Equal(t, "two", comments[1].Text)
}

func TestFollowerRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	created, err := f.follows.FollowUser(ctx, &follower.Follow{UserID: bob.ID, AuthorID: alice.ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.follows.FollowUser(ctx, &follower.Follow{UserID: bob.ID, AuthorID: alice.ID})
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, f.db.Model(&follower.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	ok, err := f.follows.IsFollowing(ctx, bob.ID.String(), alice.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	followers, err := f.follows.GetFollowersByUserID(ctx, alice.ID.String())
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].User.Username)

	removed, err := f.follows.UnfollowUser(ctx, bob.ID.String(), alice.ID.String())
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.follows.UnfollowUser(ctx, bob.ID.String(), alice.ID.String())
	require.NoError(t, err)
	assert.False(t, removed)
}
