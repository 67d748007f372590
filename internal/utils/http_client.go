package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client with the defaults the console adapter uses:
// a base URL, a request timeout and JSON content negotiation.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient builds a client for baseURL. A bare host:port gets an
// http:// scheme. A non-positive timeout leaves resty's default in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 15*time.Second)
//	resp, err := client.R().SetBody(req).Post("/api/auth/login")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// IsSuccess reports whether resp carries a 2xx status.
func IsSuccess(resp *resty.Response) bool {
	return resp != nil && resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}
