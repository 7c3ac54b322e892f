package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "catalog-gateway-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "catalog-gateway-recording",
					Rules: []Rule{
						{
							Record: "catalog:http_requests:rate5m",
							Expr:   `sum(rate(catalog_http_requests_total[5m]))`,
						},
						{
							Record: "catalog:http_errors:rate5m",
							Expr:   `sum(rate(catalog_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "catalog:upstream_requests:rate5m",
							Expr:   `sum by (endpoint) (rate(catalog_upstream_requests_total[5m]))`,
						},
						{
							Record: "catalog:degraded_results:rate5m",
							Expr:   `sum(rate(catalog_degraded_results_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
