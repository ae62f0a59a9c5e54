package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skinnp91/karmamari/internal/metrics"
	"github.com/skinnp91/karmamari/internal/platform/retry"
)

// achievementKeyPrefix is the reserved namespace for achievement records,
// distinct from plain karma-counter keys so the two never collide.
const achievementKeyPrefix = "KM:"

const defaultOpTimeout = 5 * time.Second

// KarmaStore provides Redis-backed karma counters and achievement records.
// Counters are keyed by the token itself; INCRBY treats a missing key as 0.
// Every call recovers from a transient connectivity failure with exactly
// one reconnect-and-retry; a second failure propagates to the caller.
type KarmaStore struct {
	client  *Client
	timeout time.Duration
}

func NewKarmaStore(client *Client) *KarmaStore {
	return &KarmaStore{client: client, timeout: defaultOpTimeout}
}

// IncrBy atomically adjusts a token's counter by delta and returns the
// post-commit score.
func (s *KarmaStore) IncrBy(ctx context.Context, token string, delta int64) (int64, error) {
	score, err := doStore(ctx, s, func(octx context.Context, rdb *goredis.Client) (int64, error) {
		return rdb.IncrBy(octx, token, delta).Result()
	})
	if err != nil {
		return 0, fmt.Errorf("incrby %q: %w", token, err)
	}
	return score, nil
}

type achievementResult struct {
	message string
	found   bool
}

// GetAchievement fetches the achievement record for a score value. A
// missing record is reported via the boolean, not as an error.
func (s *KarmaStore) GetAchievement(ctx context.Context, score int64) (string, bool, error) {
	res, err := doStore(ctx, s, func(octx context.Context, rdb *goredis.Client) (achievementResult, error) {
		msg, err := rdb.Get(octx, achievementKey(score)).Result()
		if errors.Is(err, goredis.Nil) {
			return achievementResult{}, nil
		}
		if err != nil {
			return achievementResult{}, err
		}
		return achievementResult{message: msg, found: true}, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("get achievement %d: %w", score, err)
	}
	return res.message, res.found, nil
}

// SetAchievement writes an achievement message for a score value,
// overwriting any prior record.
func (s *KarmaStore) SetAchievement(ctx context.Context, score int64, message string) error {
	_, err := doStore(ctx, s, func(octx context.Context, rdb *goredis.Client) (struct{}, error) {
		return struct{}{}, rdb.Set(octx, achievementKey(score), message, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("set achievement %d: %w", score, err)
	}
	return nil
}

// Ping verifies the store connection.
func (s *KarmaStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func achievementKey(score int64) string {
	return achievementKeyPrefix + strconv.FormatInt(score, 10)
}

// doStore runs one store round trip under the reconnect discipline:
// MaxAttempts 2 with a reconnect in between realizes "reconnect once,
// retry once, then fail". Each attempt re-reads the current handle, and
// the reconnect passes back the generation it observed so a handle
// already swapped by a concurrent handler is left alone.
func doStore[T any](ctx context.Context, s *KarmaStore, op func(ctx context.Context, rdb *goredis.Client) (T, error)) (T, error) {
	var observed uint64

	policy := retry.Policy{
		MaxAttempts:    2,
		InitialBackoff: 100 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			metrics.StoreReconnectsTotal.Inc()
			slog.WarnContext(ctx, "Counter store call failed, reconnecting", "error", err)
			if rerr := s.client.Reconnect(observed); rerr != nil {
				slog.ErrorContext(ctx, "Counter store reconnect failed", "error", rerr)
			}
		},
	}

	return retry.Do(ctx, policy, classifyStoreError, func() (T, error) {
		octx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		rdb, gen := s.client.current()
		observed = gen
		return op(octx, rdb)
	})
}

// classifyStoreError separates transient connectivity failures (worth the
// single reconnect-and-retry) from permanent ones.
func classifyStoreError(err error) retry.Action {
	if errors.Is(err, context.Canceled) {
		return retry.Stop
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return retry.Retry
	}
	if errors.Is(err, goredis.ErrClosed) || errors.Is(err, io.EOF) {
		return retry.Retry
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return retry.Retry
	}
	return retry.Stop
}
