package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// fakeRedis минимальная реализация redisClient поверх map
type fakeRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, "selection:", 30*time.Minute)

	sess, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	key := "selection:" + sess.ID.String()
	assert.Contains(t, client.values, key)
	assert.Equal(t, 30*time.Minute, client.ttls[key])

	checkIn := types.MustParseDate("2024-06-05")
	checkOut := types.MustParseDate("2024-06-09")
	sess.Selection.CheckIn = &checkIn
	sess.Selection.CheckOut = &checkOut
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.RoomID, got.RoomID)
	require.NotNil(t, got.Selection.CheckOut)
	assert.Equal(t, checkOut, *got.Selection.CheckOut)
	assert.Equal(t, 4, got.Selection.Nights())
}

func TestRedisStore_NotFound(t *testing.T) {
	store := NewRedisStore(newFakeRedis(), "selection:", time.Minute)

	_, err := store.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, "selection:", time.Minute)

	sess, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.ID))
	assert.Empty(t, client.values)
}

func TestRedisStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	client.failErr = errors.New("connection refused")
	store := NewRedisStore(client, "selection:", time.Minute)

	_, err := store.Create(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrStorage)

	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrStorage)

	assert.ErrorIs(t, store.Delete(ctx, uuid.New()), ErrStorage)
}

func TestRedisStore_CorruptedValue(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, "selection:", time.Minute)
	id := uuid.New()
	client.values["selection:"+id.String()] = "{not json"

	_, err := store.Get(context.Background(), id)

	assert.ErrorIs(t, err, ErrDecode)
}
