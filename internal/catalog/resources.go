package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/donaldgifford/catalog-gateway/internal/metrics"
)

// ResourceClient issues bearer-authenticated requests against the catalog
// resource endpoints and returns raw bodies.
type ResourceClient struct {
	cfg     Config
	client  *http.Client
	timeout time.Duration
}

// NewResourceClient creates a ResourceClient. A nil client gets a fresh
// NewHTTPClient; a non-positive timeout uses the 30s default.
func NewResourceClient(cfg Config, client *http.Client, timeout time.Duration) *ResourceClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = NewHTTPClient(timeout)
	}
	return &ResourceClient{cfg: cfg, client: client, timeout: timeout}
}

// FetchAllProducts returns the raw product index envelope.
func (c *ResourceClient) FetchAllProducts(ctx context.Context, token string) ([]byte, error) {
	return c.fetch(ctx, "fetch all products", "index", KeyIndexViewURL, "", token)
}

// FetchProduct returns the raw envelope for a single product.
func (c *ResourceClient) FetchProduct(ctx context.Context, id, token string) ([]byte, error) {
	return c.fetch(ctx, "fetch product", "detail", KeyDetailViewURL, id, token)
}

// FetchBrandProducts returns the raw envelope of all products of a brand.
func (c *ResourceClient) FetchBrandProducts(ctx context.Context, brandID, token string) ([]byte, error) {
	return c.fetch(ctx, "fetch brand products", "brand_products", KeyBrandProductsURL, brandID, token)
}

// FetchBrands returns the raw brand list envelope.
func (c *ResourceClient) FetchBrands(ctx context.Context, token string) ([]byte, error) {
	return c.fetch(ctx, "fetch brands", "brands", KeyBrandURL, "", token)
}

// FetchBinary requests a product file and returns the full response with its
// headers and an unread body. The caller must close resp.Body; the request
// span and duration cover the stream and end on Close. A non-2xx status is
// returned as a KindHTTP error with the body already closed.
func (c *ResourceClient) FetchBinary(
	ctx context.Context,
	productID, fileID, token string,
) (resp *http.Response, err error) {
	const op = "fetch binary"

	base, err := c.cfg.lookup(op, KeyBinaryURL)
	if err != nil {
		return nil, err
	}
	u := base[0] + productID + "/files/" + fileID + "/binary"

	ctx, span := tracer.Start(ctx, "catalog.binary",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("catalog.product_id", productID),
			attribute.String("catalog.file_id", fileID),
		),
	)
	start := time.Now()
	defer func() {
		if err != nil {
			c.observe("binary", start, nil, err)
			endSpan(span, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindHTTP, Op: op, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}
	// Binary requests carry only the bearer header; no Accept is sent.
	bearer(token).SetAuthHeader(req)

	resp, err = c.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindHTTP, Op: op, Err: fmt.Errorf("executing binary request: %w", err)}
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody+1)) //nolint:errcheck // diagnostics only
		return nil, &Error{Kind: KindHTTP, Op: op, StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	status := resp.StatusCode
	resp.Body = &streamBody{
		ReadCloser: resp.Body,
		finish: func(readErr error) {
			metrics.UpstreamRequestsTotal.WithLabelValues("binary", strconv.Itoa(status)).Inc()
			metrics.UpstreamRequestDuration.WithLabelValues("binary").Observe(time.Since(start).Seconds())
			endSpan(span, readErr)
		},
	}
	return resp, nil
}

// streamBody runs finish once, on the first Close, with the first read error
// other than io.EOF.
type streamBody struct {
	io.ReadCloser
	once    sync.Once
	finish  func(error)
	readErr error
}

func (b *streamBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && b.readErr == nil {
		b.readErr = err
	}
	return n, err
}

func (b *streamBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(func() { b.finish(b.readErr) })
	return err
}

func (c *ResourceClient) fetch(
	ctx context.Context,
	op, endpoint, key, suffix, token string,
) (body []byte, err error) {
	base, err := c.cfg.lookup(op, key)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "catalog."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	start := time.Now()
	var resp *http.Response
	defer func() {
		c.observe(endpoint, start, resp, err)
		endSpan(span, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base[0]+suffix, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindHTTP, Op: op, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	req.Header.Set("Accept", formContentType)
	bearer(token).SetAuthHeader(req)

	resp, err = c.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindHTTP, Op: op, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Kind:       KindHTTP,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &Error{Kind: KindHTTP, Op: op, StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}

	return body, nil
}

func (*ResourceClient) observe(endpoint string, start time.Time, resp *http.Response, err error) {
	status := "error"
	switch {
	case resp != nil:
		status = strconv.Itoa(resp.StatusCode)
	case StatusCode(err) != 0:
		status = strconv.Itoa(StatusCode(err))
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func bearer(token string) *oauth2.Token {
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
}
