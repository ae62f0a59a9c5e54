package karma

import (
	"regexp"
	"strings"

	"github.com/skinnp91/karmamari/internal/domain"
)

// mentionPattern matches chat-mention tokens after lowercasing, e.g. "<@u123>".
var mentionPattern = regexp.MustCompile(`<@\w+>`)

// IsMention reports whether a parsed token is a chat mention.
func IsMention(token string) bool {
	return mentionPattern.MatchString(token)
}

// Resolver maps mention tokens to display names using a roster snapshot.
// The snapshot is fetched once per triggering event and never cached
// beyond it.
type Resolver struct {
	roster []domain.User
}

func NewResolver(roster []domain.User) *Resolver {
	return &Resolver{roster: roster}
}

// Resolve strips the mention decorations ("<", ">", "@") and any "+"/"-"
// artifacts the marker grammar may have left on the token, uppercases the
// remaining identifier, and looks it up in the roster by case-insensitive
// id match. A hit returns the display name with a leading "@" removed; a
// miss falls back to the normalized identifier. Resolution never fails.
func (r *Resolver) Resolve(token string) string {
	id := strings.ToUpper(stripDecorations(token))

	for _, u := range r.roster {
		if strings.EqualFold(u.ID, id) {
			return strings.TrimPrefix(u.Name, "@")
		}
	}
	return id
}

func stripDecorations(token string) string {
	return strings.Map(func(c rune) rune {
		switch c {
		case '<', '>', '@', '+', '-':
			return -1
		}
		return c
	}, token)
}
