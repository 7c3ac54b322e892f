package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/catalog-gateway/internal/api/client"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// printDegraded reports a degraded result and whether there was one.
func printDegraded(w io.Writer, r apiclient.Result) bool {
	if !r.Degraded {
		return false
	}
	fmt.Fprintf(w, "Catalog unavailable: %s\n", r.Message)
	return true
}

func printProductsTable(w io.Writer, products []domain.IndexEntry) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBRAND\tDESCRIPTION\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\n",
			products[i].ID,
			truncate(products[i].Name, 40),
			products[i].BrandName,
			truncate(products[i].Description, 50),
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *domain.ProductDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Brand:\t%s (%s)\n", p.BrandName, p.BrandID)
	if p.Description != "" {
		tw.writef("Description:\t%s\n", p.Description)
	}
	if p.ImageURL != "" {
		tw.writef("Image:\t%s\n", p.ImageURL)
	}

	keys := make([]string, 0, len(p.Properties))
	for k := range p.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tw.writef("%s:\t%s\n", k, p.Properties[k])
	}

	if len(p.Files) > 0 {
		tw.writef("\nFILE ID\tNAME\tTYPE\tSIZE\n")
		for i := range p.Files {
			tw.writef("%s\t%s\t%s\t%d\n",
				p.Files[i].ID,
				p.Files[i].Name,
				p.Files[i].MimeType,
				p.Files[i].Size,
			)
		}
	}
	return tw.finish()
}

func printBrandsTable(w io.Writer, brands []domain.BrandEntry) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBRAND\tLOGO\n")
	for i := range brands {
		tw.writef("%s\t%s\t%s\t%s\n",
			brands[i].ID,
			truncate(brands[i].Name, 40),
			brands[i].BrandName,
			brands[i].LogoURL,
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
