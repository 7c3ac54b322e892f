package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/donaldgifford/catalog-gateway/internal/metrics"
)

const (
	clientCredentialsScope = "search_api search_api_downloadbinary"

	grantClientCredentials = "client_credentials"
	grantAuthorizationCode = "authorization_code"
)

var errNoAccessToken = errors.New("response has no string access_token")

// TokenResponse is the token endpoint payload. RequestToken only reads
// AccessToken; Reauthorize hands the raw payload to the caller untouched.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenService talks to the OAuth token endpoint. It holds no token state:
// every call performs a fresh grant.
type TokenService struct {
	cfg     Config
	client  *http.Client
	timeout time.Duration
}

// NewTokenService creates a TokenService. A nil client gets a fresh
// NewHTTPClient; a non-positive timeout uses the 30s default.
func NewTokenService(cfg Config, client *http.Client, timeout time.Duration) *TokenService {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = NewHTTPClient(timeout)
	}
	return &TokenService{cfg: cfg, client: client, timeout: timeout}
}

// RequestToken performs a client-credentials grant with the first
// credential pair and returns the access token.
func (s *TokenService) RequestToken(ctx context.Context) (string, error) {
	const op = "request token"

	vals, err := s.cfg.lookup(op, KeyTokenURL, KeyClientID, KeyClientSecret)
	if err != nil {
		return "", err
	}
	tokenURL, clientID, clientSecret := vals[0], vals[1], vals[2]

	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"scope":         {clientCredentialsScope},
		"grant_type":    {grantClientCredentials},
	}

	body, err := s.exchange(ctx, op, grantClientCredentials, tokenURL, form)
	if err != nil {
		return "", err
	}

	return accessToken(op, body)
}

// Reauthorize exchanges refreshToken for a new token set using the second
// credential pair. The response body is returned exactly as received so the
// caller can store it verbatim. A 2xx body that is not a JSON object with a
// string access_token is a KindDecode error.
func (s *TokenService) Reauthorize(ctx context.Context, refreshToken string) ([]byte, error) {
	const op = "reauthorize"

	vals, err := s.cfg.lookup(op, KeyTokenURL, KeyClientID2, KeyClientSecret2)
	if err != nil {
		return nil, err
	}
	tokenURL, clientID, clientSecret := vals[0], vals[1], vals[2]

	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {grantAuthorizationCode},
		"refresh_token": {refreshToken},
	}

	body, err := s.exchange(ctx, op, grantAuthorizationCode, tokenURL, form)
	if err != nil {
		return nil, err
	}
	if _, err := accessToken(op, body); err != nil {
		return nil, err
	}
	return body, nil
}

// accessToken extracts the string access_token member of a token endpoint
// body.
func accessToken(op string, body []byte) (string, error) {
	root := gjson.ParseBytes(body)
	token := root.Get("access_token")
	if !gjson.ValidBytes(body) || !root.IsObject() || token.Type != gjson.String {
		return "", &Error{Kind: KindDecode, Op: op, Body: truncateBody(body), Err: errNoAccessToken}
	}
	return token.Str, nil
}

func (s *TokenService) exchange(
	ctx context.Context,
	op, grant, tokenURL string,
	form url.Values,
) (body []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "catalog.token",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("oauth.grant_type", grant)),
	)
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.TokenRequestsTotal.WithLabelValues(grant, result).Inc()
		endSpan(span, err)
	}()

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, &Error{Kind: KindAuth, Op: op, Err: fmt.Errorf("creating token request: %w", err)}
	}

	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Accept", formContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindAuth, Op: op, Err: fmt.Errorf("executing token request: %w", err)}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Kind:       KindAuth,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading token response: %w", err),
		}
	}

	if !isSuccess(resp.StatusCode) {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		detail := truncateBody(body)
		if errResp.Error != "" {
			detail = errResp.Error + " - " + errResp.ErrorDescription
		}
		return nil, &Error{Kind: KindAuth, Op: op, StatusCode: resp.StatusCode, Body: detail}
	}

	return body, nil
}

// ParseTokenPayload reads a raw token endpoint payload, as returned by
// Reauthorize, into an oauth2.Token.
func ParseTokenPayload(raw []byte) (*oauth2.Token, error) {
	const op = "parse token payload"

	var tr TokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: err}
	}
	if tr.AccessToken == "" {
		return nil, &Error{Kind: KindDecode, Op: op, Body: truncateBody(raw), Err: errNoAccessToken}
	}

	tok := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
		ExpiresIn:    tr.ExpiresIn,
	}
	if tr.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok, nil
}
