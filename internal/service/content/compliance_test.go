package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func textSection(body string) ContentSection {
	return ContentSection{Type: SectionText, Content: map[string]any{"body": body}}
}

func TestScanCompliance_CleanDocument(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("Regular washing keeps your siding looking fresh through the rainy season."),
	})

	assert.False(t, flags.HasAbsoluteClaims)
	assert.False(t, flags.HasSafetyDisclaimer)
	assert.False(t, flags.HasResultsDisclaimer)
	assert.False(t, flags.HasCredibilityContent)
}

func TestScanCompliance_DetectsAbsoluteClaims(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("Our treatment is guaranteed to remove every stain."),
	})
	assert.True(t, flags.HasAbsoluteClaims)
}

func TestScanCompliance_CaseInsensitive(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("GUARANTEED results for every customer."),
	})
	assert.True(t, flags.HasAbsoluteClaims)
}

func TestScanCompliance_DetectsSafetyLanguage(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("We take every precaution when working around delicate landscaping."),
	})
	assert.True(t, flags.HasSafetyDisclaimer)
}

func TestScanCompliance_DetectsResultsDisclaimer(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("Results may vary depending on the age of your surfaces."),
	})
	assert.True(t, flags.HasResultsDisclaimer)
}

func TestScanCompliance_DetectsCredibilitySignals(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		textSection("Our locally owned crew brings years of experience to every job."),
	})
	assert.True(t, flags.HasCredibilityContent)
}

func TestScanCompliance_ScansNestedPayloads(t *testing.T) {
	flags := ScanCompliance([]ContentSection{
		{Type: SectionFAQ, Content: map[string]any{"questions": []any{
			map[string]any{
				"question": "Are you insured?",
				"answer":   "Yes, we are fully licensed and insured.",
			},
		}}},
	})
	assert.True(t, flags.HasCredibilityContent)
}

func TestScanCompliance_EmptyDocument(t *testing.T) {
	flags := ScanCompliance(nil)
	assert.Equal(t, ComplianceFlags{}, flags)
}
