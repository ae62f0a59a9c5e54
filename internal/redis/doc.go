// Package redis implements the Redis-backed counter store.
//
// Provides a reconnectable client wrapper (mutex-guarded handle swap on
// transient failure) and KarmaStore (per-token INCRBY plus namespaced
// achievement records).
package redis
