package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DownloadsRate returns a timeseries panel showing binary download attempts
// by result.
func DownloadsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Binary Downloads").
		Description("Binary download attempts per second by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (result) (rate(catalog_binary_downloads_total{job="catalog-gateway"}[5m]))`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ReauthorizeFailures returns a stat panel showing failed authorization-code
// exchanges in the past 24 hours.
func ReauthorizeFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Re-authorization Failures (24h)").
		Description("Authorization-code exchanges rejected by the token endpoint in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(catalog_token_requests_total{job="catalog-gateway",grant="authorization_code",result="error"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
