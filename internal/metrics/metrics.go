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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RollsPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsPerformed,
			Help: HelpTextRollsPerformed,
		},
		[]string{LabelSource},
	)

	RollsByTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsByTier,
			Help: HelpTextRollsByTier,
		},
		[]string{LabelTier},
	)

	PityAwards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePityAwards,
			Help: HelpTextPityAwards,
		},
	)

	BonusRollsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusRollsGranted,
			Help: HelpTextBonusRollsGranted,
		},
	)

	WalletsBound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWalletsBound,
			Help: HelpTextWalletsBound,
		},
	)

	KingdomsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameKingdomsStarted,
			Help: HelpTextKingdomsStarted,
		},
		[]string{LabelRace},
	)

	ExploresScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExploresScheduled,
			Help: HelpTextExploresScheduled,
		},
	)

	ExploresResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExploresResolved,
			Help: HelpTextExploresResolved,
		},
		[]string{LabelEncounter},
	)
)
