package analysis

import (
	"credcheck/types"
	"strings"
)

// Classify turns raw user input into an analysis request.
// Input beginning with http:// or https:// is sent as a URL, everything else
// (including the empty string) as text. The input is never trimmed or validated.
func Classify(input string) types.AnalysisRequest {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return types.NewURLRequest(input)
	}
	return types.NewTextRequest(input)
}
