package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-gateway/internal/api/handlers"
	"github.com/donaldgifford/catalog-gateway/internal/catalog"
	catalogMocks "github.com/donaldgifford/catalog-gateway/internal/catalog/mocks"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

var errConfig = &catalog.Error{Kind: catalog.KindConfig, Op: "request token", Key: catalog.KeyTokenURL}

func TestListProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*catalogMocks.MockService)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns index",
			setupMock: func(m *catalogMocks.MockService) {
				m.EXPECT().Products(mock.Anything).Return(catalog.Result[[]domain.IndexEntry]{
					Data: []domain.IndexEntry{{ID: "p1", Name: "Widget", BrandName: "Acme"}},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"id":"p1"`, `"name":"Widget"`, `"degraded":false`},
		},
		{
			name: "degraded result is 200 with empty data",
			setupMock: func(m *catalogMocks.MockService) {
				m.EXPECT().Products(mock.Anything).Return(catalog.Result[[]domain.IndexEntry]{
					Data:    []domain.IndexEntry{},
					Message: "request token: auth error (status 401)",
					Failure: catalog.KindAuth,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"data":[]`, `"degraded":true`, `status 401`},
		},
		{
			name: "config error is 500",
			setupMock: func(m *catalogMocks.MockService) {
				m.EXPECT().Products(mock.Anything).Return(catalog.Result[[]domain.IndexEntry]{}, errConfig).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"misconfigured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := catalogMocks.NewMockService(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(ms, handlers.CookieOptions{}))

			resp := api.Get("/api/v1/products")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetProduct_SetsAccessTokenCookie(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().ProductDetail(mock.Anything, "p-42").Return(catalog.DetailResult{
		Detail: domain.ProductDetail{
			ID:         "p-42",
			Name:       "Widget",
			Properties: map[string]string{"color": "red"},
			Files:      []domain.ProductFile{{ID: "f1", Name: "manual.pdf"}},
		},
		Token: "browse-token",
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(ms, handlers.CookieOptions{Secure: true}))

	resp := api.Get("/api/v1/products/p-42")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"color":"red"`)
	assert.Contains(t, resp.Body.String(), `"manual.pdf"`)
	assert.NotContains(t, resp.Body.String(), "browse-token")

	cookie := resp.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	assert.True(t, strings.HasPrefix(cookie, handlers.AccessTokenCookie+"=browse-token"))
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "Secure")
	assert.Contains(t, cookie, "Path=/api/v1/products")
}

func TestGetProduct_DegradedSetsNoCookie(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().ProductDetail(mock.Anything, "missing").Return(catalog.DetailResult{
		Message: "fetch product: http error (status 404)",
		Failure: catalog.KindHTTP,
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(ms, handlers.CookieOptions{}))

	resp := api.Get("/api/v1/products/missing")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"degraded":true`)
	assert.Contains(t, resp.Body.String(), "status 404")
	assert.Empty(t, resp.Header().Values("Set-Cookie"))
}

func TestGetProduct_ConfigError(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().ProductDetail(mock.Anything, "p1").Return(catalog.DetailResult{}, errConfig).Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(ms, handlers.CookieOptions{}))

	resp := api.Get("/api/v1/products/p1")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
