package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/catalog-gateway/internal/catalog"
	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

// BrandsHandler handles brand query endpoints.
type BrandsHandler struct {
	svc catalog.Service
}

// NewBrandsHandler creates a new BrandsHandler.
func NewBrandsHandler(svc catalog.Service) *BrandsHandler {
	return &BrandsHandler{svc: svc}
}

// BrandsOutput is the response for both brand endpoints.
type BrandsOutput struct {
	Body struct {
		Data     []domain.BrandEntry `json:"data"`
		Message  string              `json:"message,omitempty" doc:"Why the result is empty, when degraded"`
		Degraded bool                `json:"degraded"          doc:"True when an upstream call failed"`
	}
}

// BrandProductsInput is the input for listing one brand's products.
type BrandProductsInput struct {
	BrandID string `path:"brandId" doc:"Catalog brand id"`
}

func brandsOutput(res catalog.Result[[]domain.BrandEntry]) *BrandsOutput {
	resp := &BrandsOutput{}
	resp.Body.Data = res.Data
	resp.Body.Message = res.Message
	resp.Body.Degraded = res.Degraded()
	return resp
}

// ListBrands returns every brand.
func (h *BrandsHandler) ListBrands(ctx context.Context, _ *struct{}) (*BrandsOutput, error) {
	res, err := h.svc.Brands(ctx)
	if err != nil {
		return nil, misconfigured(err)
	}
	return brandsOutput(res), nil
}

// ListBrandProducts returns the products of one brand.
func (h *BrandsHandler) ListBrandProducts(ctx context.Context, input *BrandProductsInput) (*BrandsOutput, error) {
	res, err := h.svc.BrandProducts(ctx, input.BrandID)
	if err != nil {
		return nil, misconfigured(err)
	}
	return brandsOutput(res), nil
}

// RegisterBrandRoutes registers brand endpoints with the Huma API.
func RegisterBrandRoutes(api huma.API, h *BrandsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands",
		Summary:     "List brands",
		Tags:        []string{"brands"},
	}, h.ListBrands)

	huma.Register(api, huma.Operation{
		OperationID: "list-brand-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands/{brandId}",
		Summary:     "List a brand's products",
		Tags:        []string{"brands"},
	}, h.ListBrandProducts)
}
