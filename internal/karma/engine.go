package karma

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/skinnp91/karmamari/internal/domain"
	"github.com/skinnp91/karmamari/internal/metrics"
)

// achievementCommandPattern matches "<@BOTID> achievement <threshold> <message>".
var achievementCommandPattern = regexp.MustCompile(`<@\w+>\s+achievement\s+(-?\d+)\s*(.*)`)

// Engine runs the karma pipeline for one utterance at a time. It is
// stateless across invocations; the store connection is the only shared
// resource and carries its own synchronization.
type Engine struct {
	store domain.KarmaStore
	clock clockwork.Clock
}

func NewEngine(store domain.KarmaStore, clock clockwork.Clock) *Engine {
	return &Engine{store: store, clock: clock}
}

// HandleMessage processes one utterance: parse markers, resolve mentions
// against the roster snapshot, aggregate deltas, commit each token's delta,
// look up achievements for every value crossed, and render the reply.
// An utterance without markers returns ("", nil) and touches the store
// not at all. A fatal commit failure aborts the remaining tokens; deltas
// already committed stand (there is no cross-token transaction).
func (e *Engine) HandleMessage(ctx context.Context, text string, roster []domain.User) (string, error) {
	start := e.clock.Now()

	liked, disliked := Parse(text)
	if len(liked) == 0 && len(disliked) == 0 {
		metrics.MessagesProcessedTotal.WithLabelValues("no_markers").Inc()
		return "", nil
	}

	resolver := NewResolver(roster)
	deltas := Aggregate(liked, disliked, resolver)

	finals, err := e.commitScores(ctx, deltas)
	if err != nil {
		metrics.MessagesProcessedTotal.WithLabelValues("error").Inc()
		return "", err
	}

	crossed := CrossedValues(finals, deltas)
	achievements, err := lookupAchievements(ctx, e.store, crossed)
	if err != nil {
		metrics.MessagesProcessedTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.MessagesProcessedTotal.WithLabelValues("replied").Inc()
	metrics.MessageProcessingDuration.Observe(e.clock.Since(start).Seconds())

	return FormatReply(finals, deltas, achievements), nil
}

// commitScores applies each delta through the store and collects the
// post-commit scores. Tokens commit independently, in DeltaMap order.
func (e *Engine) commitScores(ctx context.Context, deltas *DeltaMap) (map[string]int64, error) {
	finals := make(map[string]int64, deltas.Len())
	for _, token := range deltas.Tokens() {
		score, err := e.store.IncrBy(ctx, token, deltas.Delta(token))
		if err != nil {
			return nil, fmt.Errorf("commit %q: %w", token, err)
		}
		finals[token] = score
	}
	return finals, nil
}

// RegisterAchievement handles the admin command "<@BOT> achievement
// <threshold> <message>". The message is written verbatim against the
// threshold, overwriting any prior record (last write wins). A threshold
// that does not parse fails fast without touching the store.
func (e *Engine) RegisterAchievement(ctx context.Context, text string) (string, error) {
	m := achievementCommandPattern.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAchievementCommand, text)
	}

	threshold, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: threshold %q", domain.ErrInvalidAchievementCommand, m[1])
	}
	message := strings.TrimSpace(m[2])

	if err := e.store.SetAchievement(ctx, threshold, message); err != nil {
		return "", fmt.Errorf("register achievement %d: %w", threshold, err)
	}

	metrics.AchievementsRegisteredTotal.Inc()
	slog.InfoContext(ctx, "Achievement registered", "threshold", threshold)

	return fmt.Sprintf("Set %d to %s", threshold, message), nil
}
