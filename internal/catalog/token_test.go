package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-gateway/internal/catalog"
)

func TestTokenService_RequestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantKind   catalog.Kind
		wantToken  string
		errContain string
	}{
		{
			name: "successful token fetch",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tokenJSON("test-token-123"))
			},
			wantToken: "test-token-123",
		},
		{
			name: "server returns 401",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write(
					[]byte(
						`{"error":"invalid_client","error_description":"client authentication failed"}`,
					),
				)
			},
			wantErr:    true,
			wantKind:   catalog.KindAuth,
			errContain: "status 401",
		},
		{
			name: "server returns 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			wantKind:   catalog.KindAuth,
			errContain: "status 500",
		},
		{
			name: "server returns invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("not json"))
			},
			wantErr:    true,
			wantKind:   catalog.KindDecode,
			errContain: "access_token",
		},
		{
			name: "access_token is not a string",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"access_token":42}`))
			},
			wantErr:    true,
			wantKind:   catalog.KindDecode,
			errContain: "access_token",
		},
		{
			name: "payload is an array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"access_token":"x"}]`))
			},
			wantErr:  true,
			wantKind: catalog.KindDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			cfg := testConfig(srv.URL)
			cfg.BaseURLs.TokenURL = srv.URL

			svc := catalog.NewTokenService(cfg, nil, 0)

			token, err := svc.RequestToken(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, catalog.KindOf(err))
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestTokenService_RequestFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(
				t,
				"application/x-www-form-urlencoded",
				r.Header.Get("Content-Type"),
			)
			assert.Equal(
				t,
				"application/x-www-form-urlencoded",
				r.Header.Get("Accept"),
			)

			// Credentials travel in the form body, not Basic auth.
			_, _, basic := r.BasicAuth()
			assert.False(t, basic)

			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
			assert.Equal(t, "search_api search_api_downloadbinary", r.FormValue("scope"))
			assert.Equal(t, "browse-client", r.FormValue("client_id"))
			assert.Equal(t, "browse-secret", r.FormValue("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(tokenJSON("format-test-token"))
		}),
	)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.BaseURLs.TokenURL = srv.URL

	token, err := catalog.NewTokenService(cfg, nil, 0).RequestToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "format-test-token", token)
}

func TestTokenService_RequestTokenTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			_, _ = w.Write(tokenJSON("late"))
		}),
	)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.BaseURLs.TokenURL = srv.URL

	_, err := catalog.NewTokenService(cfg, nil, 50*time.Millisecond).
		RequestToken(context.Background())
	require.Error(t, err)
	assert.Equal(t, catalog.KindAuth, catalog.KindOf(err))
}

func TestTokenService_Reauthorize(t *testing.T) {
	t.Parallel()

	// Whitespace and field order must survive untouched.
	raw := "{ \"access_token\": \"user-token\",\n  \"token_type\": \"Bearer\", \"expires_in\": 3600, \"refresh_token\": \"r-2\" }"

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
			assert.Equal(t, "download-client", r.FormValue("client_id"))
			assert.Equal(t, "download-secret", r.FormValue("client_secret"))
			assert.Equal(t, "r-1", r.FormValue("refresh_token"))
			assert.Empty(t, r.FormValue("scope"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(raw))
		}),
	)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.BaseURLs.TokenURL = srv.URL

	body, err := catalog.NewTokenService(cfg, nil, 0).Reauthorize(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
}

func TestTokenService_ReauthorizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantKind     catalog.Kind
		wantStatus   int
		wantContains string
	}{
		{
			name:         "rejected code",
			status:       http.StatusBadRequest,
			body:         `{"error":"invalid_grant","error_description":"code expired"}`,
			wantKind:     catalog.KindAuth,
			wantStatus:   http.StatusBadRequest,
			wantContains: "invalid_grant - code expired",
		},
		{
			name:         "html login page",
			status:       http.StatusOK,
			body:         `<html>login</html>`,
			wantKind:     catalog.KindDecode,
			wantContains: "<html>login</html>",
		},
		{
			name:     "object without access token",
			status:   http.StatusOK,
			body:     `{"token_type":"Bearer"}`,
			wantKind: catalog.KindDecode,
		},
		{
			name:     "numeric access token",
			status:   http.StatusOK,
			body:     `{"access_token":42}`,
			wantKind: catalog.KindDecode,
		},
		{
			name:     "json array",
			status:   http.StatusOK,
			body:     `[{"access_token":"a"}]`,
			wantKind: catalog.KindDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				}),
			)
			defer srv.Close()

			cfg := testConfig(srv.URL)
			cfg.BaseURLs.TokenURL = srv.URL

			body, err := catalog.NewTokenService(cfg, nil, 0).Reauthorize(context.Background(), "stale")
			require.Error(t, err)
			assert.Nil(t, body)
			assert.Equal(t, tt.wantKind, catalog.KindOf(err))
			assert.Equal(t, tt.wantStatus, catalog.StatusCode(err))
			if tt.wantContains != "" {
				assert.Contains(t, err.Error(), tt.wantContains)
			}
		})
	}
}

func TestTokenService_ReauthorizeMissingConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:0")
	cfg.Credentials.ClientSecret2 = ""

	_, err := catalog.NewTokenService(cfg, nil, 0).Reauthorize(context.Background(), "stale")
	require.Error(t, err)
	assert.Equal(t, catalog.KindConfig, catalog.KindOf(err))
	assert.Contains(t, err.Error(), catalog.KeyClientSecret2)
}

func TestParseTokenPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantAccess  string
		wantRefresh string
		wantExpiry  bool
	}{
		{
			name:        "full payload",
			raw:         `{"access_token":"a","token_type":"Bearer","expires_in":3600,"refresh_token":"r"}`,
			wantAccess:  "a",
			wantRefresh: "r",
			wantExpiry:  true,
		},
		{
			name:       "no expiry",
			raw:        `{"access_token":"a"}`,
			wantAccess: "a",
		},
		{
			name:    "missing access token",
			raw:     `{"refresh_token":"r"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `access_token=a`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok, err := catalog.ParseTokenPayload([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, catalog.KindDecode, catalog.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, tok.AccessToken)
			assert.Equal(t, tt.wantRefresh, tok.RefreshToken)
			assert.Equal(t, tt.wantExpiry, !tok.Expiry.IsZero())
			assert.True(t, tok.Valid())
		})
	}
}
