package karma

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deltaMapOf(entries ...incrCall) *DeltaMap {
	m := NewDeltaMap()
	for _, e := range entries {
		m.add(e.Token, e.Delta)
	}
	return m
}

func TestCrossedValues_PositiveDelta(t *testing.T) {
	values := CrossedValues(map[string]int64{"pizza": 10}, deltaMapOf(incrCall{"pizza", 3}))
	assert.Equal(t, []int64{7, 8, 9, 10}, values)
}

func TestCrossedValues_NegativeDelta(t *testing.T) {
	values := CrossedValues(map[string]int64{"tacos": 5}, deltaMapOf(incrCall{"tacos", -2}))
	assert.Equal(t, []int64{5, 6, 7}, values)
}

func TestCrossedValues_ZeroDelta(t *testing.T) {
	values := CrossedValues(map[string]int64{"pizza": 4}, deltaMapOf(incrCall{"pizza", 0}))
	assert.Equal(t, []int64{4}, values)
}

func TestCrossedValues_MergedAcrossTokens(t *testing.T) {
	finals := map[string]int64{"pizza": 3, "tacos": 4}
	deltas := deltaMapOf(incrCall{"pizza", 2}, incrCall{"tacos", 2})

	// 1..3 and 2..4 overlap; the merge deduplicates
	values := CrossedValues(finals, deltas)
	assert.Equal(t, []int64{1, 2, 3, 4}, values)
}

func TestCrossedValues_CrossesZero(t *testing.T) {
	values := CrossedValues(map[string]int64{"mondays": -2}, deltaMapOf(incrCall{"mondays", -3}))
	assert.Equal(t, []int64{-2, -1, 0, 1}, values)
}

func TestLookupAchievements_MissesDroppedSilently(t *testing.T) {
	store := newMockStore()
	store.achievements[2] = "double digits soon"

	lines, err := lookupAchievements(context.Background(), store, []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"ACHIEVEMENT UNLOCKED: 2: double digits soon"}, lines)
}

func TestLookupAchievements_SortedAndDeduplicated(t *testing.T) {
	store := newMockStore()
	store.achievements[10] = "ten"
	store.achievements[2] = "two"

	lines, err := lookupAchievements(context.Background(), store, []int64{2, 10})
	require.NoError(t, err)

	// lexicographic sort on the rendered strings: "10" before "2"
	assert.Equal(t, []string{
		"ACHIEVEMENT UNLOCKED: 10: ten",
		"ACHIEVEMENT UNLOCKED: 2: two",
	}, lines)
}

func TestLookupAchievements_NoMatches(t *testing.T) {
	store := newMockStore()

	lines, err := lookupAchievements(context.Background(), store, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLookupAchievements_NoValues(t *testing.T) {
	store := newMockStore()

	lines, err := lookupAchievements(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, store.getCalls)
}
