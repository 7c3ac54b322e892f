package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/catalog-gateway/internal/catalog"
)

// Router is the subset of echo.Echo and echo.Group used to mount raw routes.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// forwardedHeaders are copied from the upstream binary response.
var forwardedHeaders = []string{
	echo.HeaderContentType,
	echo.HeaderContentLength,
	echo.HeaderContentDisposition,
}

// DownloadHandler drives the binary download flow: build the authorization
// redirect, accept the OAuth callback, and stream the file.
type DownloadHandler struct {
	svc     catalog.Service
	cookies CookieOptions
	log     *slog.Logger
}

// NewDownloadHandler creates a new DownloadHandler.
func NewDownloadHandler(svc catalog.Service, cookies CookieOptions, log *slog.Logger) *DownloadHandler {
	return &DownloadHandler{svc: svc, cookies: cookies, log: log}
}

// AuthorizeInput identifies the file to authorize.
type AuthorizeInput struct {
	ProductID string `path:"productId" doc:"Catalog product id"`
	FileID    string `path:"fileId"    doc:"Catalog file id"`
}

// AuthorizeOutput is the authorization redirect for a download.
type AuthorizeOutput struct {
	Body struct {
		Fragments []string `json:"fragments" doc:"The five unencoded redirect fragments"`
		URL       string   `json:"url"       doc:"Fragments joined into a browser-ready URL"`
	}
}

// Authorize returns the redirect a user follows to grant download access.
func (h *DownloadHandler) Authorize(_ context.Context, input *AuthorizeInput) (*AuthorizeOutput, error) {
	if err := catalog.CheckStateProductID(input.ProductID); err != nil {
		return nil, huma.Error400BadRequest("product id cannot be authorized for download", err)
	}

	rd, err := h.svc.Redirect(input.ProductID, input.FileID)
	if err != nil {
		return nil, misconfigured(err)
	}

	resp := &AuthorizeOutput{}
	resp.Body.Fragments = rd[:]
	resp.Body.URL = rd.Join()
	return resp, nil
}

// Callback completes the authorization-code flow. It exchanges the code for
// a token payload, stores the payload in the grant cookie, and redirects to
// the binary route named by state.
func (h *DownloadHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing code")
	}

	productID, fileID, ok := catalog.ParseState(c.QueryParam("state"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid state")
	}

	ctx := c.Request().Context()

	payload, err := h.svc.Reauthorize(ctx, code)
	if err != nil {
		h.log.WarnContext(ctx, "re-authorization failed", "product_id", productID, "file_id", fileID, "error", err)
		return upstreamError(err)
	}

	if _, err := catalog.ParseTokenPayload(payload); err != nil {
		h.log.WarnContext(ctx, "re-authorization returned an unusable payload", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "authorization server returned no access token")
	}

	grant := h.cookies.cookie(GrantCookie, base64.RawURLEncoding.EncodeToString(payload))
	c.SetCookie(&grant)

	return c.Redirect(http.StatusFound, binaryPath(productID, fileID))
}

// Binary streams a product file. Without a usable token, or when the
// catalog rejects it, the client is redirected to authorize.
func (h *DownloadHandler) Binary(c echo.Context) error {
	productID, fileID := c.Param("productId"), c.Param("fileId")
	ctx := c.Request().Context()

	token := h.token(c)
	if token == "" {
		return h.redirectToAuthorize(c, productID, fileID)
	}

	resp, err := h.svc.DownloadBinary(ctx, productID, fileID, token)
	if err != nil {
		switch catalog.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			expired := h.cookies.expired(GrantCookie)
			c.SetCookie(&expired)
			return h.redirectToAuthorize(c, productID, fileID)
		}
		h.log.WarnContext(ctx, "binary download failed", "product_id", productID, "file_id", fileID, "error", err)
		return upstreamError(err)
	}
	defer resp.Body.Close()

	header := c.Response().Header()
	for _, name := range forwardedHeaders {
		if v := resp.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}

	// The server's WriteTimeout covers the whole response; a file stream
	// runs until the upstream body ends.
	rc := http.NewResponseController(c.Response())
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.WarnContext(ctx, "clearing write deadline failed", "error", err)
	}

	c.Response().WriteHeader(resp.StatusCode)
	if _, err := io.Copy(c.Response(), resp.Body); err != nil {
		// The status line is already sent; all that is left is to log.
		h.log.WarnContext(ctx, "binary stream interrupted", "product_id", productID, "file_id", fileID, "error", err)
	}
	return nil
}

// token prefers the re-authorized grant over the browsing token.
func (h *DownloadHandler) token(c echo.Context) string {
	if ck, err := c.Cookie(GrantCookie); err == nil && ck.Value != "" {
		raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
		if err == nil {
			if tok, err := catalog.ParseTokenPayload(raw); err == nil {
				return tok.AccessToken
			}
		}
		h.log.DebugContext(c.Request().Context(), "ignoring malformed grant cookie")
	}
	if ck, err := c.Cookie(AccessTokenCookie); err == nil {
		return ck.Value
	}
	return ""
}

func (h *DownloadHandler) redirectToAuthorize(c echo.Context, productID, fileID string) error {
	if err := catalog.CheckStateProductID(productID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product id cannot be authorized for download").SetInternal(err)
	}

	rd, err := h.svc.Redirect(productID, fileID)
	if err != nil {
		return upstreamError(err)
	}
	return c.Redirect(http.StatusFound, rd.Join())
}

// upstreamError maps a catalog failure on the raw routes: configuration
// problems are the gateway's fault, everything else is the upstream's.
func upstreamError(err error) error {
	var ce *catalog.Error
	if errors.As(err, &ce) && ce.Kind == catalog.KindConfig {
		return echo.NewHTTPError(http.StatusInternalServerError, "catalog gateway is misconfigured").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadGateway, "catalog request failed").SetInternal(err)
}

func binaryPath(productID, fileID string) string {
	return "/api/v1/products/" + url.PathEscape(productID) + "/files/" + url.PathEscape(fileID) + "/binary"
}

// RegisterDownloadRoutes registers the authorize operation with the Huma API
// and mounts the callback and binary routes, which redirect and stream, on r.
func RegisterDownloadRoutes(api huma.API, r Router, h *DownloadHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "authorize-download",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{productId}/files/{fileId}/authorize",
		Summary:     "Build a download authorization redirect",
		Description: "Returns the authorization redirect fragments and the joined URL for downloading a file.",
		Tags:        []string{"downloads"},
	}, h.Authorize)

	r.GET("/oauth/callback", h.Callback)
	r.GET("/api/v1/products/:productId/files/:fileId/binary", h.Binary)
}
