package client

import (
	"bytes"
	"context"
	"credcheck/analysis"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// doJSONRequest posts payload as JSON and decodes a success body into result.
// Non-2xx answers become *ServiceError, transport failures *TransportError and
// undecodable success bodies *analysis.MalformedResponseError.
func (c *AnalysisClient) doJSONRequest(ctx context.Context, requestID string, payload, result interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ [%s] request failed: %v", requestID, err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ [%s] service returned %d: %s", requestID, resp.StatusCode, string(bodyBytes))
		return &ServiceError{StatusCode: resp.StatusCode, Detail: parseDetail(bodyBytes)}
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return &analysis.MalformedResponseError{Reason: "failed to decode response", Err: err}
	}

	return nil
}

// parseDetail pulls a string "detail" out of an error body. Anything else,
// including FastAPI-style validation lists, yields "".
func parseDetail(body []byte) string {
	var errBody struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}

	var detail string
	if err := json.Unmarshal(errBody.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
