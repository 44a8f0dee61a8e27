package client

import (
	"net/http"
	"time"
)

// DefaultEndpoint is where the analysis service listens in local development
const DefaultEndpoint = "http://localhost:8000/analyze"

// AnalysisClient is a thin HTTP client for the analysis service
type AnalysisClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewAnalysisClient creates a new analysis service client.
// A zero timeout waits for the service indefinitely.
func NewAnalysisClient(endpoint string, timeout time.Duration) *AnalysisClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &AnalysisClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL requests are posted to
func (c *AnalysisClient) Endpoint() string {
	return c.endpoint
}
