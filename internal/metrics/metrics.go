package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	CyclesAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCyclesAdvanced,
			Help: HelpTextCyclesAdvanced,
		},
	)

	QuestsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsGenerated,
			Help: HelpTextQuestsGenerated,
		},
		[]string{LabelRarity},
	)

	QuestsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsResolved,
			Help: HelpTextQuestsResolved,
		},
		[]string{LabelOutcome},
	)

	RewardsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsCollected,
			Help: HelpTextRewardsCollected,
		},
	)

	GoldCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldCollected,
			Help: HelpTextGoldCollected,
		},
	)

	RecruitsHired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecruitsHired,
			Help: HelpTextRecruitsHired,
		},
		[]string{LabelRarity},
	)

	UpgradesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesStarted,
			Help: HelpTextUpgradesStarted,
		},
		[]string{LabelBuilding},
	)

	SavesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesWritten,
			Help: HelpTextSavesWritten,
		},
	)

	SaveWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveWriteFailures,
			Help: HelpTextSaveWriteFailures,
		},
	)
)
