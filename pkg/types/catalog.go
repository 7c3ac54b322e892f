// Package domain defines the catalog view models shared by the gateway,
// its HTTP API, and the catalogctl client.
package domain

import (
	"net/url"
	"strings"
)

// IndexEntry is one product in the catalog-wide product list.
type IndexEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrandID     string `json:"brandId,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// BrandEntry is a row of the brand list. The brand detail endpoint returns
// the same shape with the product fields populated.
type BrandEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrandID     string `json:"brandId,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProductDetail is the full view of a single product, including the files
// that can be downloaded through the binary endpoint.
type ProductDetail struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	BrandID     string            `json:"brandId,omitempty"`
	BrandName   string            `json:"brandName,omitempty"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
	Files       []ProductFile     `json:"files,omitempty"`
}

// ProductFile describes a downloadable binary attached to a product.
type ProductFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// RedirectDescriptor holds the five URL fragments that send a user to the
// authorization server, in order: base (auth URL with client_id),
// response_type, redirect_uri, scope, state.
type RedirectDescriptor [5]string

// Join escapes the value of each fragment and concatenates them with "&".
// The first fragment carries the authorization URL, so only the part after
// its last "=" is escaped.
func (d RedirectDescriptor) Join() string {
	parts := make([]string, 0, len(d))
	for i, frag := range d {
		var key, value string
		var ok bool
		if i == 0 {
			idx := strings.LastIndex(frag, "=")
			ok = idx >= 0
			if ok {
				key, value = frag[:idx], frag[idx+1:]
			}
		} else {
			key, value, ok = strings.Cut(frag, "=")
		}
		if !ok {
			parts = append(parts, frag)
			continue
		}
		parts = append(parts, key+"="+url.QueryEscape(value))
	}
	return strings.Join(parts, "&")
}
