package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"geodir/config"

	"github.com/go-resty/resty/v2"
)

// GeocodeResult holds the coordinates resolved for an address.
type GeocodeResult struct {
	Lat float64
	Lng float64
}

// GeocodeAddress resolves an address through the configured geocoding
// endpoint (Nominatim-compatible: ?q=...&format=json). Returns an error
// when no endpoint is configured, the lookup fails or nothing matches.
func GeocodeAddress(address string) (*GeocodeResult, error) {
	if config.AppConfig.GeocoderURL == "" {
		return nil, fmt.Errorf("geocoder is not configured")
	}
	if address == "" {
		return nil, fmt.Errorf("address is empty")
	}

	client := resty.New()
	resp, err := client.R().
		SetQueryParam("q", address).
		SetQueryParam("format", "json").
		SetQueryParam("limit", "1").
		Get(config.AppConfig.GeocoderURL)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode())
	}

	var matches []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(resp.Body(), &matches); err != nil {
		return nil, fmt.Errorf("invalid geocoder response: %v", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no match for address")
	}

	lat, err := strconv.ParseFloat(matches[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder response: %v", err)
	}
	lng, err := strconv.ParseFloat(matches[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder response: %v", err)
	}

	return &GeocodeResult{Lat: lat, Lng: lng}, nil
}
