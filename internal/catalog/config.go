package catalog

import (
	"errors"
	"fmt"
	"log/slog"
)

// Configuration keys, named the way the catalog deployment settings name them.
const (
	KeyTokenURL         = "baseUrls:tokenUrl"
	KeyIndexViewURL     = "baseUrls:indexViewUrl"
	KeyDetailViewURL    = "baseUrls:detailViewUrl"
	KeyBrandProductsURL = "baseUrls:brandProductsUrl"
	KeyBrandURL         = "baseUrls:brandUrl"
	KeyBinaryURL        = "baseUrls:binaryUrl"
	KeyAuthURL          = "baseUrls:authUrl"
	KeyRedirectURI      = "baseUrls:redirectUri"
	KeyClientID         = "clientInfo:clientId"
	KeyClientSecret     = "clientInfo:clientSecret"
	KeyClientID2        = "clientInfo:clientId2"
	KeyClientSecret2    = "clientInfo:clientSecret2"
)

var (
	errMissingKey = errors.New("missing configuration key")
	errUnknownKey = errors.New("unknown configuration key")
)

// BaseURLs holds the catalog API endpoints. Resource URLs that take an id
// are used as prefixes and concatenated with it verbatim.
type BaseURLs struct {
	TokenURL         string
	IndexViewURL     string
	DetailViewURL    string
	BrandProductsURL string
	BrandURL         string
	BinaryURL        string
	AuthURL          string
	RedirectURI      string
}

// Credentials holds the two OAuth client registrations. ClientID/ClientSecret
// drive the client-credentials grant used for browsing; ClientID2/ClientSecret2
// belong to the authorization-code application used for binary downloads.
type Credentials struct {
	ClientID      string
	ClientSecret  string
	ClientID2     string
	ClientSecret2 string
}

// String masks the secrets so Credentials can be printed safely.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{ClientID:%s ClientID2:%s}", c.ClientID, c.ClientID2)
}

// LogValue implements slog.LogValuer and omits the secrets.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", c.ClientID),
		slog.String("client_id2", c.ClientID2),
	)
}

// Config is the read-only settings the catalog client is constructed with.
type Config struct {
	BaseURLs    BaseURLs
	Credentials Credentials
}

// Lookup returns the value stored under key. An empty value is reported as
// a KindConfig error naming the key.
func (c Config) Lookup(key string) (string, error) {
	var v string
	switch key {
	case KeyTokenURL:
		v = c.BaseURLs.TokenURL
	case KeyIndexViewURL:
		v = c.BaseURLs.IndexViewURL
	case KeyDetailViewURL:
		v = c.BaseURLs.DetailViewURL
	case KeyBrandProductsURL:
		v = c.BaseURLs.BrandProductsURL
	case KeyBrandURL:
		v = c.BaseURLs.BrandURL
	case KeyBinaryURL:
		v = c.BaseURLs.BinaryURL
	case KeyAuthURL:
		v = c.BaseURLs.AuthURL
	case KeyRedirectURI:
		v = c.BaseURLs.RedirectURI
	case KeyClientID:
		v = c.Credentials.ClientID
	case KeyClientSecret:
		v = c.Credentials.ClientSecret
	case KeyClientID2:
		v = c.Credentials.ClientID2
	case KeyClientSecret2:
		v = c.Credentials.ClientSecret2
	default:
		return "", &Error{Kind: KindConfig, Op: "config lookup", Key: key, Err: errUnknownKey}
	}
	if v == "" {
		return "", &Error{Kind: KindConfig, Op: "config lookup", Key: key, Err: errMissingKey}
	}
	return v, nil
}

// lookup resolves keys in order and tags the first failure with op.
func (c Config) lookup(op string, keys ...string) ([]string, error) {
	vals := make([]string, len(keys))
	for i, k := range keys {
		v, err := c.Lookup(k)
		if err != nil {
			var ce *Error
			if errors.As(err, &ce) {
				ce.Op = op
			}
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

var allKeys = []string{
	KeyTokenURL,
	KeyIndexViewURL,
	KeyDetailViewURL,
	KeyBrandProductsURL,
	KeyBrandURL,
	KeyBinaryURL,
	KeyAuthURL,
	KeyRedirectURI,
	KeyClientID,
	KeyClientSecret,
	KeyClientID2,
	KeyClientSecret2,
}

// Validate reports every missing key at once. Operations only need their own
// keys, so a partial Config is usable; Validate is for readiness checks.
func (c Config) Validate() error {
	var errs []error
	for _, k := range allKeys {
		if _, err := c.Lookup(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
