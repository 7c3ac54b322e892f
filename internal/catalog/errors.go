package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a catalog failure. The facade branches on it to decide
// whether a failure degrades to an empty result or propagates.
type Kind int

// Failure kinds.
const (
	KindNone Kind = iota
	KindConfig
	KindAuth
	KindHTTP
	KindDecode
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// maxErrorBody bounds how much of an upstream body is kept on an Error.
const maxErrorBody = 256

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "request token".
	Op string
	// Key is the configuration key for KindConfig failures.
	Key string
	// StatusCode is the upstream HTTP status, zero when no response arrived.
	StatusCode int
	// Body is the upstream response body, truncated for diagnostics.
	Body string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	b.WriteString(" error")
	if e.Key != "" {
		fmt.Fprintf(&b, " (key %s)", e.Key)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		b.WriteString(": ")
		b.WriteString(e.Body)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err. It returns KindNone for a nil error and
// KindUnknown for errors that did not originate in this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// StatusCode returns the upstream HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}

func truncateBody(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	return string(body[:maxErrorBody]) + "..."
}
