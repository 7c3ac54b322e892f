// Package catalog is the client for the remote product catalog API. It
// acquires OAuth2 tokens, issues bearer-authenticated requests, unwraps the
// API's {"data": ...} envelope, and builds the re-authorization redirect for
// binary downloads.
package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/donaldgifford/catalog-gateway/internal/metrics"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

// Service is the catalog surface consumed by the HTTP layer.
type Service interface {
	Products(ctx context.Context) (Result[[]domain.IndexEntry], error)
	Brands(ctx context.Context) (Result[[]domain.BrandEntry], error)
	BrandProducts(ctx context.Context, brandID string) (Result[[]domain.BrandEntry], error)
	ProductDetail(ctx context.Context, id string) (DetailResult, error)
	Redirect(productID, fileID string) (domain.RedirectDescriptor, error)
	Reauthorize(ctx context.Context, refreshToken string) ([]byte, error)
	DownloadBinary(ctx context.Context, productID, fileID, token string) (*http.Response, error)
}

// Result is the outcome of a query. When a token, HTTP, or decode failure
// occurs, Data is empty, Message describes the failure, and Failure records
// its kind.
type Result[T any] struct {
	Data    T
	Message string
	Failure Kind
}

// Degraded reports whether Data is empty because a call failed.
func (r Result[T]) Degraded() bool {
	return r.Failure != KindNone
}

// DetailResult is the outcome of ProductDetail. Token is the access token
// used for the lookup, which the caller reuses for a binary download.
type DetailResult struct {
	Detail  domain.ProductDetail
	Token   string
	Message string
	Failure Kind
}

// Degraded reports whether Detail is empty because a call failed.
func (r DetailResult) Degraded() bool {
	return r.Failure != KindNone
}

// Catalog composes the token service, resource client, and envelope decoder.
// It is safe for concurrent use.
type Catalog struct {
	cfg       Config
	tokens    *TokenService
	resources *ResourceClient
	log       *slog.Logger
}

var _ Service = (*Catalog)(nil)

type options struct {
	client  *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Catalog.
type Option func(*options)

// WithHTTPClient sets the client shared by every call.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithTimeout bounds each token and resource call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger used for degraded-result diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New creates a Catalog.
func New(cfg Config, opts ...Option) *Catalog {
	o := &options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = NewHTTPClient(o.timeout)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Catalog{
		cfg:       cfg,
		tokens:    NewTokenService(cfg, o.client, o.timeout),
		resources: NewResourceClient(cfg, o.client, o.timeout),
		log:       o.log,
	}
}

// Products returns the product index.
func (c *Catalog) Products(ctx context.Context) (Result[[]domain.IndexEntry], error) {
	return list[domain.IndexEntry](ctx, c, "products", func(ctx context.Context, token string) ([]byte, error) {
		return c.resources.FetchAllProducts(ctx, token)
	})
}

// Brands returns the brand list.
func (c *Catalog) Brands(ctx context.Context) (Result[[]domain.BrandEntry], error) {
	return list[domain.BrandEntry](ctx, c, "brands", func(ctx context.Context, token string) ([]byte, error) {
		return c.resources.FetchBrands(ctx, token)
	})
}

// BrandProducts returns all products of one brand.
func (c *Catalog) BrandProducts(ctx context.Context, brandID string) (Result[[]domain.BrandEntry], error) {
	return list[domain.BrandEntry](ctx, c, "brand_products", func(ctx context.Context, token string) ([]byte, error) {
		return c.resources.FetchBrandProducts(ctx, brandID, token)
	})
}

// ProductDetail returns one product along with the token used to fetch it.
func (c *Catalog) ProductDetail(ctx context.Context, id string) (DetailResult, error) {
	detail, token, err := query[domain.ProductDetail](ctx, c, func(ctx context.Context, token string) ([]byte, error) {
		return c.resources.FetchProduct(ctx, id, token)
	})
	if err != nil {
		kind, ferr := c.degrade("product_detail", err)
		if ferr != nil {
			return DetailResult{}, ferr
		}
		return DetailResult{Message: err.Error(), Failure: kind}, nil
	}
	return DetailResult{Detail: detail, Token: token}, nil
}

// Ready reports whether every configuration key is present.
func (c *Catalog) Ready(context.Context) error {
	return c.cfg.Validate()
}

// Redirect returns the authorization redirect fragments for a download.
func (c *Catalog) Redirect(productID, fileID string) (domain.RedirectDescriptor, error) {
	return BuildRedirect(c.cfg, productID, fileID)
}

// Reauthorize exchanges refreshToken for a new token set and returns the
// raw payload. Failures, including a payload with no access_token, are
// returned to the caller.
func (c *Catalog) Reauthorize(ctx context.Context, refreshToken string) ([]byte, error) {
	return c.tokens.Reauthorize(ctx, refreshToken)
}

// DownloadBinary streams a product file. Failures are returned to the caller.
func (c *Catalog) DownloadBinary(ctx context.Context, productID, fileID, token string) (*http.Response, error) {
	resp, err := c.resources.FetchBinary(ctx, productID, fileID, token)
	if err != nil {
		metrics.BinaryDownloadsTotal.WithLabelValues(KindOf(err).String()).Inc()
		return nil, err
	}
	metrics.BinaryDownloadsTotal.WithLabelValues("success").Inc()
	return resp, nil
}

type fetchFunc func(ctx context.Context, token string) ([]byte, error)

func query[T any](ctx context.Context, c *Catalog, fetch fetchFunc) (T, string, error) {
	var zero T

	token, err := c.tokens.RequestToken(ctx)
	if err != nil {
		return zero, "", err
	}

	raw, err := fetch(ctx, token)
	if err != nil {
		return zero, "", err
	}

	out, err := Decode[T](raw)
	if err != nil {
		return zero, "", err
	}

	return out, token, nil
}

func list[E any](ctx context.Context, c *Catalog, op string, fetch fetchFunc) (Result[[]E], error) {
	items, _, err := query[[]E](ctx, c, fetch)
	if err != nil {
		kind, ferr := c.degrade(op, err)
		if ferr != nil {
			return Result[[]E]{}, ferr
		}
		return Result[[]E]{Data: []E{}, Message: err.Error(), Failure: kind}, nil
	}
	if items == nil {
		items = []E{}
	}
	c.log.Debug("catalog query", "operation", op, "count", len(items))
	return Result[[]E]{Data: items}, nil
}

// degrade decides what happens to a failed query. Configuration errors are
// returned so the caller sees a deployment defect; everything else is
// logged, counted, and reported through the result.
func (c *Catalog) degrade(op string, err error) (Kind, error) {
	kind := KindOf(err)
	if kind == KindConfig {
		return kind, err
	}

	metrics.DegradedResultsTotal.WithLabelValues(op, kind.String()).Inc()
	c.log.Warn("catalog query degraded",
		"operation", op,
		"kind", kind.String(),
		"status", StatusCode(err),
		"error", err,
	)
	return kind, nil
}
