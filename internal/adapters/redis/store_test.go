package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthterm/nthterm/internal/adapters/redis"
	"github.com/nthterm/nthterm/pkg/domain"
	"github.com/nthterm/nthterm/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	store := newTestStore(t)
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, redis.WithPrefix("custom:"))

	session := &domain.Session{
		ID:         "prefix-check",
		Parameters: domain.DefaultParameters(domain.KindArithmetic),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Load(ctx, "prefix-check")
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, domain.KindArithmetic, loaded.Parameters.Kind)
}
