package profile

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userreg/internal/app/user"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestRedisStore_PutGet(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutProfileAttribute(ctx, 1, "pic1"))
	require.NoError(t, store.PutProfileAttribute(ctx, 1, "pic2"))

	got, err := mr.Get("profile:1")
	require.NoError(t, err)
	assert.Equal(t, "pic2", got)

	v, found, err := store.GetProfileAttribute(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pic2", v)
}

func TestRedisStore_Absent(t *testing.T) {
	store, _ := newRedisStore(t)

	v, found, err := store.GetProfileAttribute(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestRedisStore_EmptyValueIsFound(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutProfileAttribute(ctx, 3, ""))

	_, found, err := store.GetProfileAttribute(ctx, 3)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, _, err := store.GetProfileAttribute(context.Background(), 1)
	assert.ErrorIs(t, err, user.ErrStoreUnavailable)

	err = store.PutProfileAttribute(context.Background(), 1, "pic")
	assert.ErrorIs(t, err, user.ErrStoreUnavailable)
	assert.Error(t, store.Ping(context.Background()))
}
