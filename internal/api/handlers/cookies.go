package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Cookie names set by the gateway. Both are scoped to the product routes.
const (
	AccessTokenCookie = "catalog_access_token"
	GrantCookie       = "catalog_grant"

	cookiePath   = "/api/v1/products"
	cookieMaxAge = time.Hour
)

// CookieOptions controls the attributes of issued cookies.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) cookie(name, value string) http.Cookie {
	return http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o CookieOptions) expired(name string) http.Cookie {
	return http.Cookie{
		Name:     name,
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// misconfigured is the response for a catalog ConfigError. Every other
// failure is reported in the degraded result body instead.
func misconfigured(err error) error {
	return huma.Error500InternalServerError("catalog gateway is misconfigured", err)
}
