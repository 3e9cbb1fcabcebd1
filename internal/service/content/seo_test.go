package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullScoringInput() *GenerationInput {
	return &GenerationInput{
		Archetype:   ArchetypeExpertOpinion,
		ServiceName: "Pressure Washing",
		City:        "Austin",
		Goal:        GoalSEORanking,
	}
}

func fullScoringOutput() *GenerationOutput {
	body := strings.TrimSpace(strings.Repeat("professional pressure washing keeps exterior surfaces clean ", 40))
	return &GenerationOutput{
		Title:           "Pressure Washing in Austin: A Homeowner's Guide",
		MetaTitle:       "Pressure Washing in Austin TX | Expert Driveway Care Tips",
		MetaDescription: "Discover how professional pressure washing restores driveways, patios and siding across Austin. Learn what affects pricing and when to schedule service.",
		Excerpt:         "A practical guide to pressure washing for Austin homeowners.",
		Slug:            "pressure-washing-austin-guide",
		Content: []ContentSection{
			{ID: "section-1", Type: SectionHero, Content: map[string]any{"headline": "Pressure Washing in Austin"}},
			{ID: "section-2", Type: SectionText, Content: map[string]any{"heading": "Why it matters", "body": body}},
			{ID: "section-3", Type: SectionFAQ, Content: map[string]any{"questions": []any{
				map[string]any{"question": "How often should I wash my driveway?", "answer": "Once a year is typical."},
			}}},
			{ID: "section-4", Type: SectionCTA, Content: map[string]any{"heading": "Get a quote", "body": "Call us today.", "buttonText": "Contact", "buttonUrl": "/contact"}},
		},
	}
}

func TestCalculateSEOScore_AllCriteriaPass(t *testing.T) {
	score, checklist := CalculateSEOScore(fullScoringOutput(), fullScoringInput())

	require.Len(t, checklist, 10)
	for _, item := range checklist {
		assert.True(t, item.Passed, "criterion %q should pass", item.Name)
	}
	assert.Equal(t, 100, score)
}

func TestCalculateSEOScore_WeightsSumToHundred(t *testing.T) {
	_, checklist := CalculateSEOScore(&GenerationOutput{}, &GenerationInput{})

	total := 0
	for _, item := range checklist {
		total += item.Weight
	}
	assert.Equal(t, 100, total)
}

func TestCalculateSEOScore_HeroOnlyDocument(t *testing.T) {
	out := fullScoringOutput()
	out.Content = out.Content[:1]

	score, checklist := CalculateSEOScore(out, fullScoringInput())

	failed := map[string]bool{}
	for _, item := range checklist {
		if !item.Passed {
			failed[item.Name] = true
		}
	}
	assert.True(t, failed[CriterionFAQPresent])
	assert.True(t, failed[CriterionCTAPresent])
	assert.True(t, failed[CriterionContentLength])
	assert.True(t, failed[CriterionMultipleSections])
	assert.Equal(t, 55, score)
}

func TestCalculateSEOScore_MetaTitleLengthBoundaries(t *testing.T) {
	tests := []struct {
		length int
		passed bool
	}{
		{49, false},
		{50, true},
		{60, true},
		{61, false},
	}
	for _, tt := range tests {
		out := fullScoringOutput()
		out.MetaTitle = strings.Repeat("a", tt.length)
		_, checklist := CalculateSEOScore(out, fullScoringInput())

		for _, item := range checklist {
			if item.Name == CriterionMetaTitleLength {
				assert.Equal(t, tt.passed, item.Passed, "meta title of %d chars", tt.length)
			}
		}
	}
}

func TestCalculateSEOScore_MetaDescriptionLengthBoundaries(t *testing.T) {
	tests := []struct {
		length int
		passed bool
	}{
		{149, false},
		{150, true},
		{160, true},
		{161, false},
	}
	for _, tt := range tests {
		out := fullScoringOutput()
		out.MetaDescription = strings.Repeat("a", tt.length)
		_, checklist := CalculateSEOScore(out, fullScoringInput())

		for _, item := range checklist {
			if item.Name == CriterionMetaDescLength {
				assert.Equal(t, tt.passed, item.Passed, "meta description of %d chars", tt.length)
			}
		}
	}
}

func TestCalculateSEOScore_KeywordMatchIsCaseInsensitive(t *testing.T) {
	out := fullScoringOutput()
	out.Title = "PRESSURE WASHING IN AUSTIN"

	_, checklist := CalculateSEOScore(out, fullScoringInput())

	for _, item := range checklist {
		if item.Name == CriterionKeywordInTitle || item.Name == CriterionLocationInTitle {
			assert.True(t, item.Passed, item.Name)
		}
	}
}

func TestCalculateSEOScore_EmptyServiceNameNeverPasses(t *testing.T) {
	in := fullScoringInput()
	in.ServiceName = ""

	_, checklist := CalculateSEOScore(fullScoringOutput(), in)

	for _, item := range checklist {
		if item.Name == CriterionKeywordInTitle {
			assert.False(t, item.Passed)
		}
	}
}

func TestCalculateSEOScore_Deterministic(t *testing.T) {
	out := fullScoringOutput()
	in := fullScoringInput()

	firstScore, firstChecklist := CalculateSEOScore(out, in)
	secondScore, secondChecklist := CalculateSEOScore(out, in)

	assert.Equal(t, firstScore, secondScore)
	assert.Equal(t, firstChecklist, secondChecklist)
}

func TestSlugify_LowercasesAndHyphenates(t *testing.T) {
	assert.Equal(t, "pressure-washing-in-austin", Slugify("Pressure Washing in Austin"))
}

func TestSlugify_CollapsesPunctuationRuns(t *testing.T) {
	assert.Equal(t, "deck-care-101-what-works", Slugify("Deck Care 101: What Works?!"))
}

func TestSlugify_TrimsLeadingAndTrailingHyphens(t *testing.T) {
	assert.Equal(t, "spring-cleanup", Slugify("  Spring Cleanup!  "))
}

func TestSlugify_CapsAtSixtyCharacters(t *testing.T) {
	slug := Slugify(strings.Repeat("word ", 30))
	assert.LessOrEqual(t, len(slug), 60)
	assert.True(t, IsValidSlug(slug))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("pressure-washing-austin"))
	assert.False(t, IsValidSlug("Pressure-Washing"))
	assert.False(t, IsValidSlug("has space"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug(strings.Repeat("a", 61)))
}

func TestFlattenSections_WalksNestedPayloads(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionFAQ, Content: map[string]any{"questions": []any{
			map[string]any{"question": "alpha", "answer": "bravo"},
		}}},
		{Type: "mystery", Content: "charlie"},
	}

	flat := FlattenSections(sections)
	assert.Contains(t, flat, "alpha")
	assert.Contains(t, flat, "bravo")
	assert.Contains(t, flat, "charlie")
}

func TestFlattenSections_IgnoresNonStringLeaves(t *testing.T) {
	sections := []ContentSection{
		{Type: "mystery", Content: map[string]any{"count": float64(42), "flag": true}},
	}
	assert.Equal(t, "", FlattenSections(sections))
}
