package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsAdded          = "inventory_items_added_total"
	MetricNameItemsRemoved        = "inventory_items_removed_total"
	MetricNameEnchantsApplied     = "enchantments_applied_total"
	MetricNameEnchantsCleared     = "enchantments_cleared_total"
	MetricNameTxRetries           = "inventory_tx_retries_total"
	MetricNamePlayersCreated      = "players_created_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsAdded      = "Total number of item units added to inventories"
	HelpTextItemsRemoved    = "Total number of item units removed from inventories"
	HelpTextEnchantsApplied = "Total number of enchantments applied to inventory items"
	HelpTextEnchantsCleared = "Total number of enchantments cleared from inventory items"
	HelpTextTxRetries       = "Total number of inventory transactions retried after a conflict"
	HelpTextPlayersCreated  = "Total number of players created"
)

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
