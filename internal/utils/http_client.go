package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client preconfigured
// for the notes API: base URL, JSON accept header and an optional bearer
// session token.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080").WithSessionToken(token)
//	resp, err := client.R().SetResult(&detail).Get("/api/notes/" + noteID)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &HTTPClient{Client: c}
}

// WithSessionToken sends token as "Authorization: Bearer <token>" on every
// request.
func (c *HTTPClient) WithSessionToken(token string) *HTTPClient {
	c.SetAuthToken(token)
	return c
}
