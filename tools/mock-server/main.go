// Package main implements a mock catalog API server for local development.
// It serves canned envelopes from a JSON fixture and simulates the OAuth
// token and authorize endpoints, so the gateway can run end to end without
// real catalog credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

const (
	browseTokenPrefix   = "mock-browse-"
	downloadTokenPrefix = "mock-download-"
	mockAuthCode        = "mock-code"
)

type fixture struct {
	Products      []domain.IndexEntry             `json:"products"`
	Brands        []domain.BrandEntry             `json:"brands"`
	BrandProducts map[string][]domain.BrandEntry  `json:"brandProducts"`
	Details       map[string]domain.ProductDetail `json:"details"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fx.Products), "brands", len(fx.Brands))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /connect/token", tokenHandler(logger))
	mux.HandleFunc("GET /connect/authorize", authorizeHandler(logger))
	mux.HandleFunc("GET /api/products", bearer(envelopeHandler(func(*http.Request) (any, bool) {
		return fx.Products, true
	})))
	mux.HandleFunc("GET /api/products/{id}", bearer(envelopeHandler(func(r *http.Request) (any, bool) {
		d, ok := fx.Details[r.PathValue("id")]
		return d, ok
	})))
	mux.HandleFunc("GET /api/brands", bearer(envelopeHandler(func(*http.Request) (any, bool) {
		return fx.Brands, true
	})))
	mux.HandleFunc("GET /api/brands/{id}", bearer(envelopeHandler(func(r *http.Request) (any, bool) {
		p, ok := fx.BrandProducts[r.PathValue("id")]
		return p, ok
	})))
	mux.HandleFunc("GET /api/binary/{productId}/files/{fileId}/binary", bearer(binaryHandler(logger, fx)))
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func oauthError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": description,
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}

		// Credentials travel in the form body; any non-empty pair is accepted.
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing client credentials")
			oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}

		suffix := strconv.FormatInt(int64(os.Getpid()), 16)

		switch r.PostForm.Get("grant_type") {
		case "client_credentials":
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": browseTokenPrefix + suffix,
				"expires_in":   3600,
				"token_type":   "Bearer",
			})
			logger.Info("issued browse token", "scope", r.PostForm.Get("scope"))
		case "authorization_code":
			if r.PostForm.Get("refresh_token") != mockAuthCode {
				oauthError(w, http.StatusBadRequest, "invalid_grant", "unknown authorization code")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":  downloadTokenPrefix + suffix,
				"expires_in":    3600,
				"token_type":    "Bearer",
				"refresh_token": "mock-refresh-" + suffix,
			})
			logger.Info("issued download token")
		default:
			oauthError(w, http.StatusBadRequest, "unsupported_grant_type", r.PostForm.Get("grant_type"))
		}
	}
}

// authorizeHandler approves every request immediately and sends the user
// agent back to redirect_uri with a fixed code.
func authorizeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		redirect, err := url.Parse(q.Get("redirect_uri"))
		if err != nil || redirect.Scheme == "" || q.Get("client_id") == "" {
			oauthError(w, http.StatusBadRequest, "invalid_request", "client_id and absolute redirect_uri are required")
			return
		}

		back := redirect.Query()
		back.Set("code", mockAuthCode)
		back.Set("state", q.Get("state"))
		redirect.RawQuery = back.Encode()

		logger.Info("authorized download", "state", q.Get("state"), "scope", q.Get("scope"))
		http.Redirect(w, r, redirect.String(), http.StatusFound)
	}
}

func bearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func envelopeHandler(lookup func(*http.Request) (any, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := lookup(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": data})
	}
}

func binaryHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "+downloadTokenPrefix) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		productID, fileID := r.PathValue("productId"), r.PathValue("fileId")

		detail, ok := fx.Details[productID]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		for _, f := range detail.Files {
			if f.ID != fileID {
				continue
			}
			body := fmt.Appendf(nil, "mock contents of %s (%s/%s)\n", f.Name, productID, fileID)
			w.Header().Set("Content-Type", f.MimeType)
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
			_, _ = w.Write(body) //nolint:errcheck // best-effort write in mock server
			logger.Info("served binary", "product_id", productID, "file_id", fileID)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
