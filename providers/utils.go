package providers

import (
	"errors"
	"io"
	"net/url"
)

const defaultFailureReason = "query failed"

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func failureReason(message string) string {
	if message == "" {
		return defaultFailureReason
	}

	return message
}

// sanitizeURLError strips a query string from an error produced by an
// HTTP client. A credential travels in a query string, error texts
// must not carry it.
func sanitizeURLError(err error) error {
	var urlErr *url.Error

	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil && u.RawQuery != "" {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}

	return err
}
