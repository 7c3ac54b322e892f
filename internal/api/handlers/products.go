package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/catalog-gateway/internal/catalog"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

// ProductsHandler handles product query endpoints.
type ProductsHandler struct {
	svc     catalog.Service
	cookies CookieOptions
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(svc catalog.Service, cookies CookieOptions) *ProductsHandler {
	return &ProductsHandler{svc: svc, cookies: cookies}
}

// --- Input/Output types ---

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Data     []domain.IndexEntry `json:"data"`
		Message  string              `json:"message,omitempty" doc:"Why the result is empty, when degraded"`
		Degraded bool                `json:"degraded"          doc:"True when an upstream call failed"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ProductID string `path:"productId" doc:"Catalog product id"`
}

// GetProductOutput is the response for getting a single product. When the
// lookup succeeds the access token it used is returned as an HttpOnly
// cookie for a follow-up binary download.
type GetProductOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Data     domain.ProductDetail `json:"data"`
		Message  string               `json:"message,omitempty" doc:"Why the result is empty, when degraded"`
		Degraded bool                 `json:"degraded"          doc:"True when an upstream call failed"`
	}
}

// --- Handlers ---

// ListProducts returns the product index.
func (h *ProductsHandler) ListProducts(ctx context.Context, _ *struct{}) (*ListProductsOutput, error) {
	res, err := h.svc.Products(ctx)
	if err != nil {
		return nil, misconfigured(err)
	}

	resp := &ListProductsOutput{}
	resp.Body.Data = res.Data
	resp.Body.Message = res.Message
	resp.Body.Degraded = res.Degraded()
	return resp, nil
}

// GetProduct returns one product with its properties and files.
func (h *ProductsHandler) GetProduct(ctx context.Context, input *GetProductInput) (*GetProductOutput, error) {
	res, err := h.svc.ProductDetail(ctx, input.ProductID)
	if err != nil {
		return nil, misconfigured(err)
	}

	resp := &GetProductOutput{}
	resp.Body.Data = res.Detail
	resp.Body.Message = res.Message
	resp.Body.Degraded = res.Degraded()
	if !res.Degraded() && res.Token != "" {
		resp.SetCookie = []http.Cookie{h.cookies.cookie(AccessTokenCookie, res.Token)}
	}
	return resp, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns the catalog product index. Upstream failures yield an empty, degraded result.",
		Tags:        []string{"products"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{productId}",
		Summary:     "Get a product by id",
		Description: "Returns one product and sets an HttpOnly access token cookie for file downloads.",
		Tags:        []string{"products"},
	}, h.GetProduct)
}
