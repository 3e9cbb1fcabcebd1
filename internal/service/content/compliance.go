package content

import "strings"

// Keyword sets for the lexical compliance scan. Matching is a
// case-insensitive substring check; a flag is set when at least one keyword
// from its set appears in the flattened document text.
var (
	absoluteClaimWords = []string{
		"guaranteed", "100%", "best in", "the best", "always works",
		"never fails", "perfect results", "completely eliminate",
		"permanent solution", "#1",
	}
	safetyWords = []string{
		"safety", "precaution", "protective", "licensed", "insured",
		"certified", "professional equipment", "caution",
	}
	resultsDisclaimerPhrases = []string{
		"results may vary", "results can vary", "every home is different",
		"depending on the condition", "individual results",
	}
	credibilityWords = []string{
		"years of experience", "trained", "certified", "licensed",
		"insured", "trusted", "locally owned", "family owned",
	}
)

// ScanCompliance computes the four compliance flags for a document.
// HasAbsoluteClaims set means forbidden superlative language is present;
// the remaining flags are positive signals. Recompute whenever content
// changes; the scan is pure and never fails.
func ScanCompliance(sections []ContentSection) ComplianceFlags {
	text := strings.ToLower(FlattenSections(sections))

	return ComplianceFlags{
		HasAbsoluteClaims:     containsAny(text, absoluteClaimWords),
		HasSafetyDisclaimer:   containsAny(text, safetyWords),
		HasResultsDisclaimer:  containsAny(text, resultsDisclaimerPhrases),
		HasCredibilityContent: containsAny(text, credibilityWords),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
