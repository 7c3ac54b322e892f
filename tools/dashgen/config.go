package main

import "errors"

// KnownMetrics is the set of metric names exported by catalog-gateway
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"catalog_http_request_duration_seconds":        true,
	"catalog_http_request_duration_seconds_bucket": true,
	"catalog_http_requests_total":                  true,

	// Health metrics.
	"catalog_healthz_up": true,
	"catalog_readyz_up":  true,

	// Catalog API metrics.
	"catalog_upstream_requests_total":                  true,
	"catalog_upstream_request_duration_seconds_bucket": true,
	"catalog_token_requests_total":                     true,
	"catalog_degraded_results_total":                   true,
	"catalog_binary_downloads_total":                   true,

	// Recording rules.
	"catalog:http_requests:rate5m":     true,
	"catalog:http_errors:rate5m":       true,
	"catalog:upstream_requests:rate5m": true,
	"catalog:degraded_results:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
