package karma

import (
	"context"
	"fmt"
	"sort"

	"github.com/skinnp91/karmamari/internal/domain"
	"github.com/skinnp91/karmamari/internal/metrics"
)

// CrossedValues computes every integer value the counters passed through
// during one commit, merged across all tokens, deduplicated, ascending.
// For a token with final score s and delta d the range is inclusive:
// d > 0 yields s-d..s, d < 0 yields s..s-d, d == 0 yields just s. A user
// can cross several achievement thresholds in one message, which is why
// the whole range matters and not only the final value.
func CrossedValues(finals map[string]int64, deltas *DeltaMap) []int64 {
	seen := make(map[int64]struct{})
	for _, token := range deltas.Tokens() {
		score := finals[token]
		delta := deltas.Delta(token)

		lo, hi := score-delta, score
		if delta < 0 {
			lo, hi = score, score-delta
		}
		for v := lo; v <= hi; v++ {
			seen[v] = struct{}{}
		}
	}

	values := make([]int64, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

// lookupAchievements fetches the achievement record for each crossed value
// and renders the unlocked ones. Missing records are skipped silently.
// The result is sorted lexicographically and deduplicated, matching the
// rendered-string ordering of the reply.
func lookupAchievements(ctx context.Context, store domain.KarmaStore, values []int64) ([]string, error) {
	var lines []string
	for _, v := range values {
		msg, found, err := store.GetAchievement(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("achievement lookup for %d: %w", v, err)
		}
		if !found {
			metrics.AchievementLookupsTotal.WithLabelValues("miss").Inc()
			continue
		}
		metrics.AchievementLookupsTotal.WithLabelValues("hit").Inc()
		lines = append(lines, fmt.Sprintf("ACHIEVEMENT UNLOCKED: %d: %s", v, msg))
	}

	sort.Strings(lines)
	return dedupeStrings(lines), nil
}

func dedupeStrings(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
