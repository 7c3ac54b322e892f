package handlers_test

import (
	"net/http"
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

func TestListBrands_Success(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().Brands(mock.Anything).Return(catalog.Result[[]domain.BrandEntry]{
		Data: []domain.BrandEntry{{ID: "b1", Name: "Acme", LogoURL: "https://cdn.example.com/acme.png"}},
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(ms))

	resp := api.Get("/api/v1/brands")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "https://cdn.example.com/acme.png")
	assert.Contains(t, resp.Body.String(), `"degraded":false`)
}

func TestListBrands_Degraded(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().Brands(mock.Anything).Return(catalog.Result[[]domain.BrandEntry]{
		Data:    []domain.BrandEntry{},
		Message: "fetch brands: http error (status 500)",
		Failure: catalog.KindHTTP,
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(ms))

	resp := api.Get("/api/v1/brands")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
	assert.Contains(t, resp.Body.String(), "status 500")
}

func TestListBrandProducts(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().BrandProducts(mock.Anything, "b-7").Return(catalog.Result[[]domain.BrandEntry]{
		Data: []domain.BrandEntry{{ID: "p1", Name: "Widget", BrandID: "b-7", BrandName: "Acme"}},
	}, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(ms))

	resp := api.Get("/api/v1/brands/b-7")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"brandName":"Acme"`)
}

func TestListBrandProducts_ConfigError(t *testing.T) {
	t.Parallel()

	ms := catalogMocks.NewMockService(t)
	ms.EXPECT().BrandProducts(mock.Anything, "b-7").
		Return(catalog.Result[[]domain.BrandEntry]{}, errConfig).Once()

	_, api := humatest.New(t)
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(ms))

	resp := api.Get("/api/v1/brands/b-7")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
