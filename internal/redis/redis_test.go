package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*KarmaStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewKarmaStore(client), mr
}

func clientGeneration(c *Client) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
