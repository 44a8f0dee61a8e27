package client

import (
	"context"
	"credcheck/types"
	"log"
)

// Analyze submits a request to the analysis service and returns the raw response
func (c *AnalysisClient) Analyze(ctx context.Context, requestID string, req types.AnalysisRequest) (*types.AnalysisResponse, error) {
	log.Printf("📤 [%s] submitting %s request to %s", requestID, req.Kind, c.endpoint)

	var result types.AnalysisResponse
	if err := c.doJSONRequest(ctx, requestID, req, &result); err != nil {
		return nil, err
	}

	log.Printf("📥 [%s] received verdict %q", requestID, result.Verdict)
	return &result, nil
}
