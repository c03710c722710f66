package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls such as geocoding.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetContext(ctx).
//	    SetQueryParams(map[string]string{"address": address, "key": apiKey}).
//	    SetResult(&geocodeResponse{}).
//	    Get(geocoderURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own resty configuration and
// connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
