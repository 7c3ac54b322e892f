package client

import (
	"context"

	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

// ProductsResponse is the product index.
type ProductsResponse struct {
	Data []domain.IndexEntry `json:"data"`
	Result
}

// ProductResponse is one product's detail.
type ProductResponse struct {
	Data domain.ProductDetail `json:"data"`
	Result
}

// BrandsResponse is a brand list or one brand's products.
type BrandsResponse struct {
	Data []domain.BrandEntry `json:"data"`
	Result
}

// AuthorizeResponse is the download authorization redirect.
type AuthorizeResponse struct {
	Fragments []string `json:"fragments"`
	URL       string   `json:"url"`
}

// ListProducts returns the product index.
func (c *Client) ListProducts(ctx context.Context) (*ProductsResponse, error) {
	var resp ProductsResponse
	if err := c.get(ctx, "/api/v1/products", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	var resp ProductResponse
	if err := c.get(ctx, "/api/v1/products/"+segment(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListBrands returns every brand.
func (c *Client) ListBrands(ctx context.Context) (*BrandsResponse, error) {
	var resp BrandsResponse
	if err := c.get(ctx, "/api/v1/brands", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListBrandProducts returns one brand's products.
func (c *Client) ListBrandProducts(ctx context.Context, brandID string) (*BrandsResponse, error) {
	var resp BrandsResponse
	if err := c.get(ctx, "/api/v1/brands/"+segment(brandID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthorizeDownload returns the redirect a user follows to download a file.
func (c *Client) AuthorizeDownload(ctx context.Context, productID, fileID string) (*AuthorizeResponse, error) {
	var resp AuthorizeResponse
	path := "/api/v1/products/" + segment(productID) + "/files/" + segment(fileID) + "/authorize"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
