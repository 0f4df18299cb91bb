package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

const ipInfoEndpoint = "https://ipinfo.io/"

type ipInfoResponse struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

type ipInfoProvider struct {
	authToken string
	client    geolib.HTTPClient
}

func (i ipInfoProvider) Name() string {
	return NameIPInfo
}

func (i ipInfoProvider) Lookup(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", ErrNoAddress
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		ipInfoEndpoint+url.PathEscape(address)+"/json",
		nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if i.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+i.authToken)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot send a request: %w", sanitizeURLError(err))
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode/100 != 2 {
		return "", &geolib.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	jsonResponse := ipInfoResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return "", fmt.Errorf("cannot parse a response: %w", err)
	}

	// There is no status field in this API. A missing country means a
	// failed lookup: a bogon address or an exhausted quota.
	if jsonResponse.Country == "" {
		return "", &geolib.APIError{Reason: defaultFailureReason}
	}

	parts := make([]string, 0, 3)

	for _, v := range []string{jsonResponse.Country, jsonResponse.Region, jsonResponse.City} {
		if v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " "), nil
}

// NewIPInfo builds a provider around ipinfo.io. A token is optional, a
// small amount of lookups per day is allowed without one. A token
// travels in a header, not in a url.
func NewIPInfo(client geolib.HTTPClient, parameters map[string]string) geolib.Provider {
	return ipInfoProvider{
		authToken: parameters["auth_token"],
		client:    client,
	}
}
