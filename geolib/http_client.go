package geolib

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if h.client.Timeout > 0 {
		ctx, _ := context.WithTimeout(req.Context(), h.client.Timeout) // nolint: govet
		req = req.WithContext(ctx)
	}

	req.Header.Set("User-Agent", h.userAgent)

	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, NewTransportError(err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			io.Copy(io.Discard, resp.Body) // nolint: errcheck
			resp.Body.Close()
		}

		return nil, NewTransportError(err)
	}

	return resp, nil
}

// NewHTTPClient prepares a new HTTP client, wraps it with rate
// limiter, sets a user agent etc. A response with any status code is
// passed through as is, status classification belongs to providers.
// Transport failures never leak raw: each one is wrapped into
// TransportError with a timeout flag already resolved.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a meaning
// of rate limiter parameters.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst),
	}
}
