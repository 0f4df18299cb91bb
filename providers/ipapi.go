package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

const (
	ipAPIEndpoint    = "http://ip-api.com/json/"
	ipAPIProEndpoint = "https://pro.ip-api.com/json/"

	ipAPIFields = "status,message,country,countryCode"
)

type ipAPIResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

type ipAPIProvider struct {
	authToken string
	client    geolib.HTTPClient
}

func (i ipAPIProvider) Name() string {
	return NameIPAPI
}

func (i ipAPIProvider) Lookup(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", ErrNoAddress
	}

	requestURL := ipAPIEndpoint + url.PathEscape(address) + "?fields=" + ipAPIFields

	if i.authToken != "" {
		requestURL = ipAPIProEndpoint + url.PathEscape(address) +
			"?fields=" + ipAPIFields +
			"&key=" + url.QueryEscape(i.authToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

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

	jsonResponse := ipAPIResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return "", fmt.Errorf("cannot parse a response: %w", err)
	}

	if jsonResponse.Status != "success" {
		return "", &geolib.APIError{Reason: failureReason(jsonResponse.Message)}
	}

	switch {
	case jsonResponse.CountryCode != "":
		return jsonResponse.CountryCode, nil
	case jsonResponse.Country != "":
		return geolib.NormalizeCountry(jsonResponse.Country), nil
	}

	return "", &geolib.APIError{Reason: defaultFailureReason}
}

// NewIPAPI builds a provider around ip-api.com JSON API. Free tier
// works without a token over plain http. When an auth token is given,
// a paid endpoint is used instead.
func NewIPAPI(client geolib.HTTPClient, parameters map[string]string) geolib.Provider {
	return ipAPIProvider{
		authToken: parameters["auth_token"],
		client:    client,
	}
}
