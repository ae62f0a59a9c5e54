// Package domain holds the core types and collaborator interfaces shared
// across the karma pipeline: roster users, the counter store contract, and
// sentinel errors.
package domain
