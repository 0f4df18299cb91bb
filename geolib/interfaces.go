package geolib

import (
	"context"
	"net/http"
	"time"
)

type Provider interface {
	Name() string
	Lookup(ctx context.Context, address string) (string, error)
}

type Logger interface {
	RunStarted(summary RunSummary)
	NodeProcessing(position, total int, address string)
	LookupFailed(address string, err error)
}

type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) error
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
