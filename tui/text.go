package tui

// UI Text Constants
const (
	TextTitle       = "🔎 Fake News Detector"
	TextSubtitle    = "Enter a news claim or article URL to analyze its credibility."
	TextPlaceholder = "Paste your text or URL here..."

	// Submit control
	TextSubmitIdle    = "Analyze"
	TextSubmitLoading = "Analyzing..."

	// Result block
	TextResultHeading      = "Analysis Result"
	TextExplanationHeading = "Explanation"
	TextSourcesHeading     = "Supporting Sources"
	TextNoSources          = "No supporting sources returned."

	// Footer
	TextFooterIdle    = "Press Enter to analyze | Alt+Enter for a new line | Esc or Ctrl+C to quit"
	TextFooterLoading = "Waiting for the analysis service... | Esc or Ctrl+C to quit"
)
