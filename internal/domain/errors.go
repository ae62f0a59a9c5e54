package domain

import "errors"

var (
	// ErrInvalidAchievementCommand marks an achievement registration whose
	// threshold could not be parsed. Nothing is written to the store.
	ErrInvalidAchievementCommand = errors.New("invalid achievement command")
)
