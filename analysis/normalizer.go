package analysis

import (
	"bytes"
	"credcheck/types"
	"encoding/json"
	"math"
	"strings"
)

// Normalize converts a raw service response into a DisplayResult.
// Sources keep the order the service returned them in.
func Normalize(resp *types.AnalysisResponse) (*types.DisplayResult, error) {
	if resp == nil {
		return nil, &MalformedResponseError{Reason: "empty response"}
	}

	entries, err := decodeSources(resp.Sources)
	if err != nil {
		return nil, err
	}

	sources := make([]types.NormalizedSource, 0, len(entries))
	for _, entry := range entries {
		sources = append(sources, NormalizeSource(entry))
	}

	return &types.DisplayResult{
		VerdictLabel:      resp.Verdict,
		VerdictCategory:   CategorizeVerdict(resp.Verdict),
		ConfidencePercent: ConfidencePercent(resp.ConfidenceScore),
		Explanation:       resp.Explanation,
		Sources:           sources,
	}, nil
}

// CategorizeVerdict maps a verdict label onto a category by case-sensitive
// containment: "Real" wins over "Fake", anything else is unverified
func CategorizeVerdict(verdict string) types.VerdictCategory {
	switch {
	case strings.Contains(verdict, "Real"):
		return types.VerdictReal
	case strings.Contains(verdict, "Fake"):
		return types.VerdictFake
	default:
		return types.VerdictUnverified
	}
}

// ConfidencePercent scales a [0,1] score to a whole percentage, rounding
// halves up. Out-of-range scores are not clamped.
func ConfidencePercent(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}

// NormalizeSource resolves each display field from the first present alternative
func NormalizeSource(entry types.SourceEntry) types.NormalizedSource {
	src := types.NormalizedSource{
		Link:        firstPresent(entry.URL, entry.Link),
		Label:       firstPresent(entry.Claim, entry.Title),
		Attribution: entry.Source.String(),
		Claimant:    entry.Claimant.String(),
	}

	switch {
	case entry.Snippet.Present():
		src.Summary = entry.Snippet.String()
	case entry.Rating.Present():
		src.Summary = "Rating: " + entry.Rating.String()
	}

	return src
}

func firstPresent(values ...types.OptionalString) string {
	for _, v := range values {
		if v.Present() {
			return v.String()
		}
	}
	return ""
}

// decodeSources requires the sources field to be a JSON array
func decodeSources(raw json.RawMessage) ([]types.SourceEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &MalformedResponseError{Reason: "sources missing"}
	}
	if trimmed[0] != '[' {
		return nil, &MalformedResponseError{Reason: "sources is not a list"}
	}

	var entries []types.SourceEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &MalformedResponseError{Reason: "failed to decode sources", Err: err}
	}
	return entries, nil
}
