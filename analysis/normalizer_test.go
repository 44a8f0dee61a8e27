package analysis

import (
	"credcheck/types"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestCategorizeVerdict(t *testing.T) {
	cases := map[string]types.VerdictCategory{
		"Real":              types.VerdictReal,
		"Likely Real":       types.VerdictReal,
		"Likely Fake claim": types.VerdictFake,
		"Likely Fake":       types.VerdictFake,
		"Partially True":    types.VerdictUnverified,
		"Unverified":        types.VerdictUnverified,
		"likely real":       types.VerdictUnverified,
		"":                  types.VerdictUnverified,
		"Real or Fake":      types.VerdictReal,
	}

	for verdict, want := range cases {
		if got := CategorizeVerdict(verdict); got != want {
			t.Fatalf("CategorizeVerdict(%q) = %q; want %q", verdict, got, want)
		}
	}
}

func TestConfidencePercent(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{1, 100},
		{0.873, 87},
		{0.875, 88},
		{0.92, 92},
		{0.005, 1},
		{0.5, 50},
		{1.2, 120},
	}

	for _, c := range cases {
		if got := ConfidencePercent(c.score); got != c.want {
			t.Fatalf("ConfidencePercent(%v) = %d; want %d", c.score, got, c.want)
		}
	}
}

func TestNormalizeSourcePrecedence(t *testing.T) {
	cases := []struct {
		name  string
		entry string
		want  types.NormalizedSource
	}{
		{
			name:  "search style fallbacks",
			entry: `{"title":"T","link":"L","rating":"3/5"}`,
			want:  types.NormalizedSource{Link: "L", Label: "T", Summary: "Rating: 3/5"},
		},
		{
			name:  "fact check style",
			entry: `{"claim":"C","claimant":"X","rating":"False","url":"https://f.example","source":"Google Fact Check API"}`,
			want:  types.NormalizedSource{Link: "https://f.example", Label: "C", Summary: "Rating: False", Attribution: "Google Fact Check API", Claimant: "X"},
		},
		{
			name:  "primary fields win",
			entry: `{"url":"U","link":"L","claim":"C","title":"T","snippet":"S","rating":"R","source":"P"}`,
			want:  types.NormalizedSource{Link: "U", Label: "C", Summary: "S", Attribution: "P"},
		},
		{
			name:  "empty and null fall through",
			entry: `{"url":"","link":"L","claim":null,"title":"T","snippet":"","rating":4}`,
			want:  types.NormalizedSource{Link: "L", Label: "T", Summary: "Rating: 4"},
		},
		{
			name:  "falsy snippet falls back to rating",
			entry: `{"snippet":0,"rating":"R"}`,
			want:  types.NormalizedSource{Summary: "Rating: R"},
		},
		{
			name:  "nothing present",
			entry: `{}`,
			want:  types.NormalizedSource{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var entry types.SourceEntry
			if err := json.Unmarshal([]byte(c.entry), &entry); err != nil {
				t.Fatalf("unmarshal entry: %v", err)
			}
			if got := NormalizeSource(entry); got != c.want {
				t.Fatalf("NormalizeSource(%s) = %+v; want %+v", c.entry, got, c.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	body := `{
		"verdict": "Likely Fake",
		"confidence_score": 0.92,
		"explanation": "Contradicted by trusted sources.",
		"sources": [
			{"title": "NASA", "link": "https://nasa.gov", "snippet": "Sky is blue"},
			{"claim": "Sky is green", "url": "https://check.example/1", "rating": "False", "source": "Google Fact Check API"}
		]
	}`

	var resp types.AnalysisResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	result, err := Normalize(&resp)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	want := &types.DisplayResult{
		VerdictLabel:      "Likely Fake",
		VerdictCategory:   types.VerdictFake,
		ConfidencePercent: 92,
		Explanation:       "Contradicted by trusted sources.",
		Sources: []types.NormalizedSource{
			{Link: "https://nasa.gov", Label: "NASA", Summary: "Sky is blue"},
			{Link: "https://check.example/1", Label: "Sky is green", Summary: "Rating: False", Attribution: "Google Fact Check API"},
		},
	}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("Normalize = %+v; want %+v", result, want)
	}
}

func TestNormalizeEmptySources(t *testing.T) {
	resp := &types.AnalysisResponse{Verdict: "Unverified", Sources: json.RawMessage(`[]`)}

	result, err := Normalize(resp)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if result.Sources == nil || len(result.Sources) != 0 {
		t.Fatalf("Sources = %#v; want empty non-nil slice", result.Sources)
	}
}

func TestNormalizeMalformedSources(t *testing.T) {
	cases := []struct {
		name    string
		sources json.RawMessage
	}{
		{"missing", nil},
		{"null", json.RawMessage(`null`)},
		{"string", json.RawMessage(`"none"`)},
		{"object", json.RawMessage(`{"title":"T"}`)},
		{"array of strings", json.RawMessage(`["a","b"]`)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Normalize(&types.AnalysisResponse{Verdict: "Real", Sources: c.sources})
			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("Normalize error = %v; want *MalformedResponseError", err)
			}
		})
	}

	if _, err := Normalize(nil); err == nil {
		t.Fatalf("Normalize(nil) returned no error")
	}
}

func TestDisplayResultPreservesSourceOrder(t *testing.T) {
	raw := `{"verdict":"Likely Real","confidence_score":0.7,"explanation":"e","sources":[
		{"title":"c"},{"title":"a"},{"title":"b"}
	]}`

	var resp types.AnalysisResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	result, err := Normalize(&resp)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	var decoded types.DisplayResult
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}

	labels := make([]string, 0, len(decoded.Sources))
	for _, s := range decoded.Sources {
		labels = append(labels, s.Label)
	}
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(labels, want) {
		t.Fatalf("source labels = %v; want %v", labels, want)
	}
}
