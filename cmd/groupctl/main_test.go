package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/core/apperror"
	groupapp "yatube/internal/core/group/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	svc := groupapp.NewGroupService(database.NewGroupRepositoryDatabase(dbtest.New(t)), logger)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redisadapter.NewListingCacheRedis(client, logger)

	var out bytes.Buffer

	t.Run("create and list", func(t *testing.T) {
		require.NoError(t, run(ctx, &out, svc, cache, "create", []string{"-title", "Cats", "-slug", "cats", "-description", "all about cats"}))
		assert.Contains(t, out.String(), "created cats")

		out.Reset()
		require.NoError(t, run(ctx, &out, svc, cache, "list", nil))
		assert.Equal(t, "cats\tCats\n", out.String())
	})

	t.Run("create reports validation errors", func(t *testing.T) {
		err := run(ctx, &out, svc, cache, "create", []string{"-title", "Dogs", "-slug", "dogs"})
		_, ok := apperror.AsValidation(err)
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		out.Reset()
		require.NoError(t, run(ctx, &out, svc, cache, "delete", []string{"-slug", "cats"}))
		assert.Contains(t, out.String(), "deleted cats")
		assert.ErrorIs(t, run(ctx, &out, svc, cache, "delete", []string{"-slug", "cats"}), apperror.ErrNotFound)
	})

	t.Run("cache-clear drops listing entries", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "index_page:1", []byte("{}"), time.Minute))
		require.NoError(t, mr.Set("session", "keep"))

		out.Reset()
		require.NoError(t, run(ctx, &out, svc, cache, "cache-clear", nil))
		assert.Equal(t, "listing cache cleared\n", out.String())
		assert.False(t, mr.Exists("cache:index_page:1"))
		assert.True(t, mr.Exists("session"))
	})

	t.Run("unknown command", func(t *testing.T) {
		assert.Error(t, run(ctx, &out, svc, cache, "rename", nil))
	})
}
