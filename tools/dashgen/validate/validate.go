// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse, and every metric it selects must be known.
package validate

import (
	"fmt"
	"sort"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/catalog-gateway/tools/dashgen/rules"
)

// Result collects problems found during validation. Errors fail generation;
// warnings are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and checks the metric names it selects
// against known. where prefixes every message.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	for _, name := range metricNames(node) {
		if !known[name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			res.merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				res.merge(panel(inner, known))
			}
		}
	}
	return res
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var res Result

	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}

	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return res
	}

	for _, t := range p.Targets {
		var expr string
		switch q := t.(type) {
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q: skipping non-Prometheus target %T", title, t))
			continue
		}
		res.merge(Expr(fmt.Sprintf("panel %q", title), expr, known))
	}
	return res
}

// Rules validates every rule expression in cr. Names recorded by cr count
// as known for the rest of the file.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	all := make(map[string]bool, len(known))
	for k, v := range known {
		all[k] = v
	}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record != "" {
				all[r.Record] = true
			}
		}
	}

	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %q: rule has neither record nor alert", g.Name))
				continue
			}
			res.merge(Expr(fmt.Sprintf("rule %q", name), r.Expr, all))
		}
	}
	return res
}

func metricNames(node parser.Node) []string {
	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
