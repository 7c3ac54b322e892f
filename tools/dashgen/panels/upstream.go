package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpstreamRate returns a timeseries panel showing catalog API requests by
// endpoint.
func UpstreamRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog API Requests").
		Description("Catalog API resource requests per second by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`catalog:upstream_requests:rate5m`, "{{endpoint}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpstreamLatency returns a timeseries panel showing the p95 catalog API
// latency per endpoint.
func UpstreamLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog API Latency (p95)").
		Description("95th percentile catalog API request duration by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			histogramQuantile("0.95", "catalog_upstream_request_duration_seconds_bucket", ", endpoint"),
			"{{endpoint}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(5, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenFailures returns a stat panel showing failed token grants in the
// past hour.
func TokenFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Token Failures (1h)").
		Description("Failed OAuth token requests in the last hour, both grants").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(catalog_token_requests_total{job="catalog-gateway",result="error"}[1h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// DegradedByKind returns a timeseries panel breaking degraded results down
// by operation and failure kind.
func DegradedByKind() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Degraded Results").
		Description("Queries answered with an empty result, by operation and failure kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum by (operation, kind) (rate(catalog_degraded_results_total{job="catalog-gateway"}[5m]))`,
			"{{operation}} / {{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
