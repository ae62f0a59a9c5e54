package karma

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skinnp91/karmamari/internal/domain"
)

func testRoster() []domain.User {
	return []domain.User{
		{ID: "U123", Name: "alice"},
		{ID: "U456", Name: "@bob"},
	}
}

func TestIsMention(t *testing.T) {
	assert.True(t, IsMention("<@u123>"))
	assert.False(t, IsMention("pizza"))
	assert.False(t, IsMention(":taco:"))
}

func TestResolve_KnownUser(t *testing.T) {
	r := NewResolver(testRoster())
	assert.Equal(t, "alice", r.Resolve("<@u123>"))
}

func TestResolve_CaseInsensitiveID(t *testing.T) {
	r := NewResolver(testRoster())
	assert.Equal(t, "alice", r.Resolve("<@U123>"))
}

func TestResolve_StripsLeadingAtFromName(t *testing.T) {
	r := NewResolver(testRoster())
	assert.Equal(t, "bob", r.Resolve("<@u456>"))
}

func TestResolve_UnknownUserFallsBackToID(t *testing.T) {
	r := NewResolver(testRoster())
	assert.Equal(t, "U999", r.Resolve("<@u999>"))
}

func TestResolve_StripsMarkerArtifacts(t *testing.T) {
	// tokens can carry +/- residue from the marker grammar
	r := NewResolver(testRoster())
	assert.Equal(t, "alice", r.Resolve("<@u123>+"))
	assert.Equal(t, "alice", r.Resolve("<@u123>-"))
}

func TestResolve_EmptyRoster(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, "U123", r.Resolve("<@u123>"))
}
