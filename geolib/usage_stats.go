package geolib

import (
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// UsageStats tracks per-provider counters of lookup outcomes. All
// methods are safe for concurrent use: a serve mode runs many
// enrichments against a single provider instance.
type UsageStats struct {
	Name string

	mutex          sync.Mutex
	lastUsed       time.Time
	successCount   uint64
	apiErrorCount  uint64
	httpErrorCount uint64
	transportCount uint64
}

func (u *UsageStats) Used(err error) {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now

	var apiErr *APIError

	var statusErr *StatusError

	switch {
	case err == nil:
		u.successCount += 1
	case errors.As(err, &apiErr):
		u.apiErrorCount += 1
	case errors.As(err, &statusErr):
		u.httpErrorCount += 1
	default:
		u.transportCount += 1
	}
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	u.mutex.Lock()

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	rawStruct := struct {
		Name           string `json:"name"`
		LastUsed       int64  `json:"last_used"`
		SuccessCount   uint64 `json:"success_count"`
		APIErrorCount  uint64 `json:"api_error_count"`
		HTTPErrorCount uint64 `json:"http_error_count"`
		TransportCount uint64 `json:"transport_error_count"`
	}{
		Name:           u.Name,
		LastUsed:       lastUsedTime,
		SuccessCount:   u.successCount,
		APIErrorCount:  u.apiErrorCount,
		HTTPErrorCount: u.httpErrorCount,
		TransportCount: u.transportCount,
	}

	u.mutex.Unlock()

	return json.Marshal(&rawStruct)
}
