package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message Pipeline Metrics
var (
	// MessagesProcessedTotal tracks utterances handled by result
	MessagesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karma_messages_processed_total",
			Help: "Total utterances processed by result (no_markers/replied/error)",
		},
		[]string{"result"},
	)

	// MessageProcessingDuration tracks end-to-end pipeline latency
	MessageProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "karma_message_processing_duration_seconds",
			Help:    "Utterance processing duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Counter Store Metrics
var (
	// StoreOpsTotal tracks total store operations by command and status
	StoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karma_store_operations_total",
			Help: "Total counter store operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// StoreOpDuration tracks store operation latency in seconds
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "karma_store_operation_duration_seconds",
			Help:    "Counter store operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// StoreConnectionErrors tracks failed dials to the counter store
	StoreConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karma_store_connection_errors_total",
			Help: "Total counter store connection errors",
		},
	)

	// StoreReconnectsTotal tracks reconnect-and-retry recoveries
	StoreReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karma_store_reconnects_total",
			Help: "Total reconnects triggered by transient store failures",
		},
	)
)

// Achievement Metrics
var (
	// AchievementLookupsTotal tracks achievement lookups by result
	AchievementLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karma_achievement_lookups_total",
			Help: "Total achievement record lookups by result (hit/miss)",
		},
		[]string{"result"},
	)

	// AchievementsRegisteredTotal tracks admin achievement registrations
	AchievementsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "karma_achievements_registered_total",
			Help: "Total achievement records registered via the admin command",
		},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build_time, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)
