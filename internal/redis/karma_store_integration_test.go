package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupIntegrationStore(t *testing.T) *KarmaStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := tcredis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewClient("redis://" + endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewKarmaStore(client)
}

func TestKarmaStore_Integration(t *testing.T) {
	store := setupIntegrationStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	score, err := store.IncrBy(ctx, "pizza", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), score)

	score, err = store.IncrBy(ctx, "pizza", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	require.NoError(t, store.SetAchievement(ctx, 1, "first karma"))

	msg, found, err := store.GetAchievement(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "first karma", msg)

	_, found, err = store.GetAchievement(ctx, 2)
	require.NoError(t, err)
	assert.False(t, found)
}
