package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameRollsPerformed    = "rolls_performed_total"
	MetricNameRollsByTier       = "rolls_by_tier_total"
	MetricNamePityAwards        = "pity_awards_total"
	MetricNameBonusRollsGranted = "bonus_rolls_granted_total"
	MetricNameWalletsBound      = "wallets_bound_total"
	MetricNameKingdomsStarted   = "kingdoms_started_total"
	MetricNameExploresScheduled = "explores_scheduled_total"
	MetricNameExploresResolved  = "explores_resolved_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextRollsPerformed    = "Total number of rolls performed"
	HelpTextRollsByTier       = "Total rolls broken down by tier won"
	HelpTextPityAwards        = "Total number of pity rewards awarded"
	HelpTextBonusRollsGranted = "Total number of bonus rolls granted"
	HelpTextWalletsBound      = "Total number of wallet addresses bound"
	HelpTextKingdomsStarted   = "Total number of kingdoms founded"
	HelpTextExploresScheduled = "Total number of explorations scheduled"
	HelpTextExploresResolved  = "Total explorations resolved by encounter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSource    = "source"
	LabelTier      = "tier"
	LabelEncounter = "encounter"
	LabelRace      = "race"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
