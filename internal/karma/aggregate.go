package karma

// DeltaMap is the per-utterance mapping from canonical token to net signed
// change. Iteration order is the order tokens first appeared in the
// utterance, so replies are deterministic for a given input.
type DeltaMap struct {
	order  []string
	deltas map[string]int64
}

func NewDeltaMap() *DeltaMap {
	return &DeltaMap{deltas: make(map[string]int64)}
}

func (m *DeltaMap) add(token string, delta int64) {
	if _, ok := m.deltas[token]; !ok {
		m.order = append(m.order, token)
	}
	m.deltas[token] += delta
}

// Len returns the number of distinct tokens.
func (m *DeltaMap) Len() int { return len(m.order) }

// Tokens returns the tokens in first-appearance order.
func (m *DeltaMap) Tokens() []string { return m.order }

// Delta returns the net change for a token (0 if absent).
func (m *DeltaMap) Delta(token string) int64 { return m.deltas[token] }

// Aggregate folds the parsed token sequences into a DeltaMap: +1 per liked
// occurrence, -1 per disliked occurrence. Mention tokens are resolved to
// display names before keying, so two spellings of the same user id
// collapse into one entry.
func Aggregate(liked, disliked []string, resolver *Resolver) *DeltaMap {
	m := NewDeltaMap()
	for _, token := range liked {
		m.add(canonicalize(token, resolver), +1)
	}
	for _, token := range disliked {
		m.add(canonicalize(token, resolver), -1)
	}
	return m
}

func canonicalize(token string, resolver *Resolver) string {
	if IsMention(token) {
		return resolver.Resolve(token)
	}
	return token
}
