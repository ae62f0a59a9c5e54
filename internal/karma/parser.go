package karma

import (
	"regexp"
	"strings"
)

// Marker grammar: a token is any run of non-whitespace characters followed
// by "++" or "--", with at most one space between token and marker. The
// token capture is greedy, so "c++++" yields the token "c++".
var (
	likedPattern    = regexp.MustCompile(`(\S+) ?\+\+`)
	dislikedPattern = regexp.MustCompile(`(\S+) ?--`)
	markerPattern   = regexp.MustCompile(`(\S+) ?(\+\+|--)`)
)

// HasMarkers reports whether the utterance contains at least one
// increment or decrement marker. Used as the pipeline trigger.
func HasMarkers(text string) bool {
	return markerPattern.MatchString(text)
}

// Parse extracts the liked and disliked tokens from an utterance.
// Matching is case-insensitive: the whole utterance is lowercased before
// scanning, so "Pizza++" and "pizza++" count the same token. An utterance
// without markers yields two empty slices, which is not an error.
func Parse(text string) (liked, disliked []string) {
	lower := strings.ToLower(text)

	for _, m := range likedPattern.FindAllStringSubmatch(lower, -1) {
		liked = append(liked, m[1])
	}
	for _, m := range dislikedPattern.FindAllStringSubmatch(lower, -1) {
		disliked = append(disliked, m[1])
	}
	return liked, disliked
}
