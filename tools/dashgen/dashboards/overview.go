// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/catalog-gateway/tools/dashgen/panels"
)

// BuildOverview constructs the Catalog Gateway Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Catalog Gateway Overview").
		Uid("catalog-gateway-overview").
		Tags([]string{"catalog", "catalog-gateway"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.DegradedGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Catalog API").
		WithPanel(panels.UpstreamRate()).
		WithPanel(panels.UpstreamLatency()).
		WithPanel(panels.TokenFailures()).
		WithPanel(panels.DegradedByKind()))

	b.WithRow(dashboard.NewRowBuilder("Downloads").
		WithPanel(panels.DownloadsRate()).
		WithPanel(panels.ReauthorizeFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
