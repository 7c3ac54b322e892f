package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-gateway/internal/catalog"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

const (
	indexJSON         = `{"data":[{"id":"p1","name":"Widget","brandId":"b1","brandName":"Acme"},{"id":"p2","name":"Gadget"}]}`
	brandsJSON        = `{"data":[{"id":"b1","name":"Acme","logoUrl":"https://cdn.example.com/acme.png"}]}`
	brandProductsJSON = `{"data":[{"id":"p1","name":"Widget","brandId":"b1","brandName":"Acme"}]}`
	detailJSON        = `{"data":{"id":"p1","name":"Widget","brandName":"Acme","properties":{"color":"red"},"files":[{"id":"f1","name":"manual.pdf","mimeType":"application/pdf","size":4}]}}`
)

// tokenJSON returns a token endpoint response as JSON bytes.
func tokenJSON(token string) []byte {
	return []byte(fmt.Sprintf(
		`{"access_token":%q,"token_type":"Bearer","expires_in":3600}`,
		token,
	))
}

type upstreamOpts struct {
	tokenStatus    int
	resourceStatus int
	tokenCalls     *atomic.Int32
}

// newUpstream starts a fake catalog API that issues "test-token" and serves
// canned envelopes to requests bearing it.
func newUpstream(t *testing.T, opts upstreamOpts) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /connect/token", func(w http.ResponseWriter, _ *http.Request) {
		if opts.tokenCalls != nil {
			opts.tokenCalls.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		if opts.tokenStatus != 0 {
			w.WriteHeader(opts.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"client authentication failed"}`))
			return
		}
		_, _ = w.Write(tokenJSON("test-token"))
	})

	resource := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if opts.resourceStatus != 0 {
				w.WriteHeader(opts.resourceStatus)
				_, _ = w.Write([]byte(`{"message":"upstream failure"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}
	mux.HandleFunc("GET /api/products", resource(indexJSON))
	mux.HandleFunc("GET /api/products/{id}", resource(detailJSON))
	mux.HandleFunc("GET /api/brands", resource(brandsJSON))
	mux.HandleFunc("GET /api/brands/{id}", resource(brandProductsJSON))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(base string) catalog.Config {
	return catalog.Config{
		BaseURLs: catalog.BaseURLs{
			TokenURL:         base + "/connect/token",
			IndexViewURL:     base + "/api/products",
			DetailViewURL:    base + "/api/products/",
			BrandProductsURL: base + "/api/brands/",
			BrandURL:         base + "/api/brands",
			BinaryURL:        base + "/api/binary/",
			AuthURL:          base + "/connect/authorize",
			RedirectURI:      "http://localhost:8080/oauth/callback",
		},
		Credentials: catalog.Credentials{
			ClientID:      "browse-client",
			ClientSecret:  "browse-secret",
			ClientID2:     "download-client",
			ClientSecret2: "download-secret",
		},
	}
}

// queryOutcome flattens the four query operations into one shape for
// table-driven tests.
type queryOutcome struct {
	count    int
	message  string
	failure  catalog.Kind
	degraded bool
}

type queryFunc func(ctx context.Context, c *catalog.Catalog) (queryOutcome, error)

var queries = map[string]queryFunc{
	"products": func(ctx context.Context, c *catalog.Catalog) (queryOutcome, error) {
		r, err := c.Products(ctx)
		return queryOutcome{len(r.Data), r.Message, r.Failure, r.Degraded()}, err
	},
	"brands": func(ctx context.Context, c *catalog.Catalog) (queryOutcome, error) {
		r, err := c.Brands(ctx)
		return queryOutcome{len(r.Data), r.Message, r.Failure, r.Degraded()}, err
	},
	"brand products": func(ctx context.Context, c *catalog.Catalog) (queryOutcome, error) {
		r, err := c.BrandProducts(ctx, "b1")
		return queryOutcome{len(r.Data), r.Message, r.Failure, r.Degraded()}, err
	},
	"product detail": func(ctx context.Context, c *catalog.Catalog) (queryOutcome, error) {
		r, err := c.ProductDetail(ctx, "p1")
		n := 0
		if r.Detail.ID != "" {
			n = 1
		}
		return queryOutcome{n, r.Message, r.Failure, r.Degraded()}, err
	},
}

func TestCatalog_Queries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        upstreamOpts
		wantCount   map[string]int
		wantFailure catalog.Kind
		wantMessage string
	}{
		{
			name: "well-formed envelopes",
			wantCount: map[string]int{
				"products":       2,
				"brands":         1,
				"brand products": 1,
				"product detail": 1,
			},
			wantFailure: catalog.KindNone,
		},
		{
			name:        "token endpoint returns 401",
			opts:        upstreamOpts{tokenStatus: http.StatusUnauthorized},
			wantFailure: catalog.KindAuth,
			wantMessage: "status 401",
		},
		{
			name:        "resource endpoint returns 500",
			opts:        upstreamOpts{resourceStatus: http.StatusInternalServerError},
			wantFailure: catalog.KindHTTP,
			wantMessage: "status 500",
		},
	}

	for _, tt := range tests {
		for op, run := range queries {
			t.Run(tt.name+"/"+op, func(t *testing.T) {
				t.Parallel()

				srv := newUpstream(t, tt.opts)
				c := catalog.New(testConfig(srv.URL))

				got, err := run(context.Background(), c)
				require.NoError(t, err)

				assert.Equal(t, tt.wantCount[op], got.count)
				assert.Equal(t, tt.wantFailure, got.failure)

				if tt.wantFailure == catalog.KindNone {
					assert.False(t, got.degraded)
					assert.Empty(t, got.message)
					return
				}

				assert.True(t, got.degraded)
				assert.NotEmpty(t, got.message)
				assert.Contains(t, got.message, tt.wantMessage)
			})
		}
	}
}

func TestCatalog_ProductsTyped(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{})
	c := catalog.New(testConfig(srv.URL))

	res, err := c.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.IndexEntry{
		{ID: "p1", Name: "Widget", BrandID: "b1", BrandName: "Acme"},
		{ID: "p2", Name: "Gadget"},
	}, res.Data)
}

func TestCatalog_ProductDetailReturnsToken(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{})
	c := catalog.New(testConfig(srv.URL))

	res, err := c.ProductDetail(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, "Widget", res.Detail.Name)
	assert.Equal(t, "red", res.Detail.Properties["color"])
	require.Len(t, res.Detail.Files, 1)
	assert.Equal(t, "manual.pdf", res.Detail.Files[0].Name)
}

func TestCatalog_DegradedListIsEmptyNotNil(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{tokenStatus: http.StatusUnauthorized})
	c := catalog.New(testConfig(srv.URL))

	res, err := c.Brands(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestCatalog_DecodeFailureDegrades(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /connect/token", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(tokenJSON("test-token"))
	})
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := catalog.New(testConfig(srv.URL))

	res, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.KindDecode, res.Failure)
	assert.Contains(t, res.Message, "no data field")
}

func TestCatalog_ConfigErrorPropagates(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{})

	tests := []struct {
		name   string
		mutate func(*catalog.Config)
		run    queryFunc
		key    string
	}{
		{
			name:   "missing token url",
			mutate: func(c *catalog.Config) { c.BaseURLs.TokenURL = "" },
			run:    queries["products"],
			key:    catalog.KeyTokenURL,
		},
		{
			name:   "missing client secret",
			mutate: func(c *catalog.Config) { c.Credentials.ClientSecret = "" },
			run:    queries["brands"],
			key:    catalog.KeyClientSecret,
		},
		{
			name:   "missing brand products url",
			mutate: func(c *catalog.Config) { c.BaseURLs.BrandProductsURL = "" },
			run:    queries["brand products"],
			key:    catalog.KeyBrandProductsURL,
		},
		{
			name:   "missing detail url",
			mutate: func(c *catalog.Config) { c.BaseURLs.DetailViewURL = "" },
			run:    queries["product detail"],
			key:    catalog.KeyDetailViewURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(srv.URL)
			tt.mutate(&cfg)
			c := catalog.New(cfg)

			_, err := tt.run(context.Background(), c)
			require.Error(t, err)
			assert.Equal(t, catalog.KindConfig, catalog.KindOf(err))

			var ce *catalog.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.key, ce.Key)
		})
	}
}

func TestCatalog_FreshTokenPerQuery(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newUpstream(t, upstreamOpts{tokenCalls: &calls})
	c := catalog.New(testConfig(srv.URL))

	for range 3 {
		_, err := c.Products(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestCatalog_ConcurrentQueries(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{})
	c := catalog.New(testConfig(srv.URL), catalog.WithHTTPClient(catalog.NewHTTPClient(0)))

	const goroutines = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			res, err := c.Products(context.Background())
			assert.NoError(t, err)
			assert.False(t, res.Degraded())
			assert.Len(t, res.Data, 2)
		}()
	}

	wg.Wait()
}

func TestCatalog_CanceledContextDegrades(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, upstreamOpts{})
	c := catalog.New(testConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.KindAuth, res.Failure)
	assert.Contains(t, res.Message, "executing token request")
}

func TestCatalog_Redirect(t *testing.T) {
	t.Parallel()

	c := catalog.New(testConfig("https://auth.example.com"))

	d, err := c.Redirect("P123", "F456")
	require.NoError(t, err)
	assert.Equal(t, "state=P123_F456", d[4])
}

func TestCatalog_ReauthorizeRejectsPayloadWithoutAccessToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html>login</html>`))
		}),
	)
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.BaseURLs.TokenURL = srv.URL

	raw, err := catalog.New(cfg).Reauthorize(context.Background(), "code")
	require.Error(t, err)
	assert.Nil(t, raw)
	assert.Equal(t, catalog.KindDecode, catalog.KindOf(err))
}
