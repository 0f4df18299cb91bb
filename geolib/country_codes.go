package geolib

import (
	"strings"

	"github.com/pariz/gountries"
)

var countryQuery = gountries.New()

// NormalizeCountry converts a country name into its ISO3166 alpha-2
// code. Lookup services sometimes omit a short code and send a full
// name only while display marks should stay short. An unknown name is
// returned as is.
func NormalizeCountry(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if len(name) == 2 {
		if country, err := countryQuery.FindCountryByAlpha(name); err == nil {
			return country.Alpha2
		}
	}

	if country, err := countryQuery.FindCountryByName(name); err == nil {
		return country.Alpha2
	}

	return name
}
