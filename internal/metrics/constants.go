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

// Game metric names
const (
	MetricNameCyclesAdvanced    = "game_cycles_advanced_total"
	MetricNameQuestsGenerated   = "game_quests_generated_total"
	MetricNameQuestsResolved    = "game_quests_resolved_total"
	MetricNameRewardsCollected  = "game_rewards_collected_total"
	MetricNameGoldCollected     = "game_gold_collected_total"
	MetricNameRecruitsHired     = "game_recruits_hired_total"
	MetricNameUpgradesStarted   = "game_building_upgrades_started_total"
	MetricNameSavesWritten      = "game_saves_written_total"
	MetricNameSaveWriteFailures = "game_save_write_failures_total"
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

// Game metric help text
const (
	HelpTextCyclesAdvanced    = "Total number of game cycles advanced"
	HelpTextQuestsGenerated   = "Total number of quests generated, by rarity"
	HelpTextQuestsResolved    = "Total number of quests resolved, by outcome"
	HelpTextRewardsCollected  = "Total number of quest rewards collected"
	HelpTextGoldCollected     = "Total gold banked from collected rewards"
	HelpTextRecruitsHired     = "Total number of recruits hired, by rarity"
	HelpTextUpgradesStarted   = "Total number of building upgrades started, by type"
	HelpTextSavesWritten      = "Total number of saves written to storage"
	HelpTextSaveWriteFailures = "Total number of failed save writes"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelRarity   = "rarity"
	LabelOutcome  = "outcome"
	LabelBuilding = "building"
)

// Outcome label values for resolved quests
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
