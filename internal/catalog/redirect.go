package catalog

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/catalog-gateway/pkg/types"
)

const (
	downloadScope  = "search_api search_api_downloadbinary offline_access"
	stateSeparator = "_"
)

// ErrProductIDSeparator reports a product id that ParseState could not
// recover from the state BuildRedirect produces for it.
var ErrProductIDSeparator = errors.New(`product id must not contain "_"`)

// BuildRedirect returns the fragments that send a user to the authorization
// server to approve a download of fileID from productID. The fragments are
// neither escaped nor joined; that is left to the caller.
func BuildRedirect(cfg Config, productID, fileID string) (domain.RedirectDescriptor, error) {
	vals, err := cfg.lookup("build redirect", KeyAuthURL, KeyClientID2, KeyRedirectURI)
	if err != nil {
		return domain.RedirectDescriptor{}, err
	}
	authURL, clientID2, redirectURI := vals[0], vals[1], vals[2]

	return domain.RedirectDescriptor{
		authURL + "?client_id=" + clientID2,
		"response_type=code",
		"redirect_uri=" + redirectURI,
		"scope=" + downloadScope,
		"state=" + productID + stateSeparator + fileID,
	}, nil
}

// ParseState splits the state value produced by BuildRedirect back into its
// product and file ids. The file id keeps any later separators.
func ParseState(state string) (productID, fileID string, ok bool) {
	productID, fileID, ok = strings.Cut(state, stateSeparator)
	if !ok || productID == "" || fileID == "" {
		return "", "", false
	}
	return productID, fileID, true
}

// CheckStateProductID returns ErrProductIDSeparator when productID contains
// the state separator. Callers that round-trip state through ParseState must
// check before building the redirect.
func CheckStateProductID(productID string) error {
	if strings.Contains(productID, stateSeparator) {
		return fmt.Errorf("product id %q: %w", productID, ErrProductIDSeparator)
	}
	return nil
}
