package geolib

import "errors"

// Failure marks. These exact texts are a part of the output contract,
// downstream tooling matches on them.
const (
	markHTTPFailed       = "[HTTP query failed]"
	markExceptionTimeout = "[query exception-timeout]"
	markException        = "[query exception]"
)

// RewriteName builds a new display name out of an old one and a lookup
// outcome. A successful lookup produces
//
//	Real:DE***-Nominal:old-name
//
// and every failure produces a bracketed mark in front of an old name:
//
//	[private range]-old-name
//	[HTTP query failed]-old-name
//	[query exception-timeout]-old-name
//	[query exception]-old-name
//
// RewriteName knows nothing about previous rewrites. Fed with an
// already annotated name it stacks one more layer on top.
func RewriteName(name, location string, err error) string {
	if err == nil {
		return "Real:" + location + "***-Nominal:" + name
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "[" + apiErr.Reason + "]-" + name
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return markHTTPFailed + "-" + name
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.TimedOut {
		return markExceptionTimeout + "-" + name
	}

	return markException + "-" + name
}
