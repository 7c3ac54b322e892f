package catalog

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 30 * time.Second

	formContentType = "application/x-www-form-urlencoded"
)

var tracer = otel.Tracer("github.com/donaldgifford/catalog-gateway/internal/catalog")

// NewHTTPClient returns a client suitable for sharing across all catalog
// calls. It is safe for concurrent use. The timeout bounds how long the
// transport waits for response headers; body reads are bounded per call by
// the caller's context so binary streams are not cut short.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	t := base.Clone()
	t.ResponseHeaderTimeout = timeout
	return &http.Client{Transport: otelhttp.NewTransport(t)}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
