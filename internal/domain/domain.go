package domain

import "context"

// User is one entry of the roster snapshot fetched per triggering event.
// Only the fields mention resolution needs.
type User struct {
	ID   string
	Name string
}

// KarmaStore is the persistent counter store contract.
//
// IncrBy treats a missing key as 0, so a counter springs into existence on
// its first increment. GetAchievement reports a missing record via the
// boolean, not an error. Implementations recover from transient
// connectivity failures with exactly one reconnect-and-retry per call;
// a second failure propagates to the caller.
type KarmaStore interface {
	IncrBy(ctx context.Context, token string, delta int64) (int64, error)
	GetAchievement(ctx context.Context, score int64) (string, bool, error)
	SetAchievement(ctx context.Context, score int64, message string) error
}
