package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// catalog-gateway operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "catalog-gateway-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "catalog-gateway-alerts",
					Rules: []Rule{
						{
							Alert: "CatalogGatewayDown",
							Expr:  `absent(up{job="catalog-gateway"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Catalog gateway is down",
								"description": "The catalog-gateway job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CatalogGatewayNotReady",
							Expr:  `catalog_readyz_up == 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog gateway configuration is incomplete",
								"description": "The readiness probe reports missing catalog settings; browsing or downloads will fail.",
							},
						},
						{
							Alert: "CatalogGatewayHighErrorRate",
							Expr:  `catalog:http_errors:rate5m / catalog:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the catalog gateway",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CatalogTokenFailures",
							Expr:  `sum(rate(catalog_token_requests_total{grant="client_credentials",result="error"}[5m])) > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Catalog token endpoint is rejecting the gateway",
								"description": "Client-credentials grants have been failing for 5 minutes; every catalog query is degraded.",
							},
						},
						{
							Alert: "CatalogDegradedResults",
							Expr:  `catalog:degraded_results:rate5m / catalog:http_requests:rate5m > 0.25`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog queries are frequently degraded",
								"description": "More than 25% of requests have returned empty degraded results for 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
