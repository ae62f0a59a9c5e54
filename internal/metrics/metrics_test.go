package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	// Verify all metrics are registered without conflicts
	metrics := []prometheus.Collector{
		MessagesProcessedTotal,
		MessageProcessingDuration,
		StoreOpsTotal,
		StoreOpDuration,
		StoreConnectionErrors,
		StoreReconnectsTotal,
		AchievementLookupsTotal,
		AchievementsRegisteredTotal,
		BuildInfo,
	}

	for _, metric := range metrics {
		desc := make(chan *prometheus.Desc, 1)
		metric.Describe(desc)
		close(desc)

		require.NotNil(t, <-desc, "metric should have a valid descriptor")
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(StoreReconnectsTotal)
	StoreReconnectsTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(StoreReconnectsTotal))
}

func TestLabeledCounterIncrements(t *testing.T) {
	counter := MessagesProcessedTotal.WithLabelValues("replied")
	before := testutil.ToFloat64(counter)
	counter.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
