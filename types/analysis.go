package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RequestKind tags which variant of an AnalysisRequest is populated
type RequestKind string

const (
	KindURL  RequestKind = "url"
	KindText RequestKind = "text"
)

// AnalysisRequest is the payload sent to the analysis service.
// Exactly one of URL or Text is meaningful, selected by Kind.
type AnalysisRequest struct {
	Kind RequestKind
	URL  string
	Text string
}

// NewURLRequest builds a url-kind request
func NewURLRequest(url string) AnalysisRequest {
	return AnalysisRequest{Kind: KindURL, URL: url}
}

// NewTextRequest builds a text-kind request
func NewTextRequest(text string) AnalysisRequest {
	return AnalysisRequest{Kind: KindText, Text: text}
}

// MarshalJSON emits only the active variant: {"url": ...} or {"text": ...}
func (r AnalysisRequest) MarshalJSON() ([]byte, error) {
	if r.Kind == KindURL {
		return json.Marshal(map[string]string{"url": r.URL})
	}
	return json.Marshal(map[string]string{"text": r.Text})
}

// AnalysisResponse is the success body returned by the analysis service.
// Sources stays raw until normalization so a missing or non-array value can be told apart.
type AnalysisResponse struct {
	Verdict         string          `json:"verdict"`
	ConfidenceScore float64         `json:"confidence_score"`
	Explanation     string          `json:"explanation"`
	Sources         json.RawMessage `json:"sources"`
}

// SourceEntry is one citation as returned by the service. Fact-check entries
// use url/claim/rating while search entries use link/title/snippet.
type SourceEntry struct {
	URL      OptionalString `json:"url"`
	Link     OptionalString `json:"link"`
	Claim    OptionalString `json:"claim"`
	Title    OptionalString `json:"title"`
	Snippet  OptionalString `json:"snippet"`
	Rating   OptionalString `json:"rating"`
	Source   OptionalString `json:"source"`
	Claimant OptionalString `json:"claimant"`
}

// OptionalString decodes null, strings and scalar JSON values.
// The empty value means the field was absent; null, false and zero count as absent.
type OptionalString string

// UnmarshalJSON implements json.Unmarshaler
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = OptionalString(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		*s = ""
	case bytes.Equal(data, []byte("false")):
		*s = ""
	default:
		if n, err := strconv.ParseFloat(string(data), 64); err == nil && n == 0 {
			*s = ""
			return nil
		}
		*s = OptionalString(data)
	}
	return nil
}

// String returns the underlying value
func (s OptionalString) String() string {
	return string(s)
}

// Present reports whether the field carried a non-empty value
func (s OptionalString) Present() bool {
	return s != ""
}

// VerdictCategory groups verdict labels for display
type VerdictCategory string

const (
	VerdictReal       VerdictCategory = "real"
	VerdictFake       VerdictCategory = "fake"
	VerdictUnverified VerdictCategory = "unverified"
)

// DisplayResult is the normalized, render-ready analysis outcome
type DisplayResult struct {
	VerdictLabel      string             `json:"verdict_label"`
	VerdictCategory   VerdictCategory    `json:"verdict_category"`
	ConfidencePercent int                `json:"confidence_percent"`
	Explanation       string             `json:"explanation"`
	Sources           []NormalizedSource `json:"sources"`
}

// NormalizedSource is a source entry resolved to a single shape.
// Claimant is only set for fact-check entries that name who made the claim.
type NormalizedSource struct {
	Link        string `json:"link"`
	Label       string `json:"label"`
	Summary     string `json:"summary"`
	Attribution string `json:"attribution"`
	Claimant    string `json:"claimant,omitempty"`
}
