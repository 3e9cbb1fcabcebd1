package prompts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/servicepost/content-engine/internal/service/content"
)

func promptInput() *content.GenerationInput {
	return &content.GenerationInput{
		Archetype:   content.ArchetypeJobShowcase,
		ServiceName: "Gutter Cleaning",
		City:        "Portland",
		Goal:        content.GoalSEORanking,
	}
}

func TestBlogPrompt_IncludesServiceAndLocation(t *testing.T) {
	prompt := NewBuilder().BlogPrompt(promptInput())

	assert.Contains(t, prompt, "Gutter Cleaning")
	assert.Contains(t, prompt, "Portland")
}

func TestBlogPrompt_NeighborhoodPrecedesCity(t *testing.T) {
	in := promptInput()
	in.Neighborhood = "Sellwood"

	prompt := NewBuilder().BlogPrompt(in)

	assert.Contains(t, prompt, "Sellwood, Portland")
}

func TestBlogPrompt_NumbersTalkingPoints(t *testing.T) {
	in := promptInput()
	in.TalkingPoints = []string{"We use ladders safely", "Fall booking discount"}

	prompt := NewBuilder().BlogPrompt(in)

	assert.Contains(t, prompt, "1. We use ladders safely")
	assert.Contains(t, prompt, "2. Fall booking discount")
}

func TestBlogPrompt_MarksRequiredLayoutSections(t *testing.T) {
	in := promptInput()
	in.Layout = []content.LayoutSection{
		{Type: content.SectionHero, Label: "Opening", Required: true},
		{Type: content.SectionText, Label: "Details"},
	}

	prompt := NewBuilder().BlogPrompt(in)

	assert.Contains(t, prompt, "- Opening (hero) [REQUIRED]")
	assert.Contains(t, prompt, "- Details (text)\n")
	assert.NotContains(t, prompt, "- Details (text) [REQUIRED]")
}

func TestBlogPrompt_IncludesJobDetails(t *testing.T) {
	in := promptInput()
	in.Job = &content.JobRecord{
		Title:       "Two-story gutter clearing",
		Address:     "123 Oak St",
		CompletedAt: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Notes:       "Heavy moss buildup",
	}

	prompt := NewBuilder().BlogPrompt(in)

	assert.Contains(t, prompt, "Two-story gutter clearing")
	assert.Contains(t, prompt, "March 14, 2026")
	assert.Contains(t, prompt, "Heavy moss buildup")
}

func TestBlogPrompt_EmbedsResponseContract(t *testing.T) {
	prompt := NewBuilder().BlogPrompt(promptInput())

	assert.Contains(t, prompt, `"metaTitle": string`)
	assert.Contains(t, prompt, "metaTitle must be 50-60 characters")
	assert.Contains(t, prompt, "metaDescription must be 150-160 characters")
	assert.Contains(t, prompt, `hero: {"headline": string, "subheadline": string, "imageUrl": string}`)
	assert.Contains(t, prompt, `faq: {"questions": [{"question": string, "answer": string}]}`)
}

func TestBlogPrompt_Deterministic(t *testing.T) {
	b := NewBuilder()
	in := promptInput()
	assert.Equal(t, b.BlogPrompt(in), b.BlogPrompt(in))
}

func TestSectionPrompt_TargetsRequestedType(t *testing.T) {
	existing := []content.ContentSection{
		{ID: "s1", Type: content.SectionHero},
		{ID: "s2", Type: content.SectionText},
	}

	prompt := NewBuilder().SectionPrompt(promptInput(), content.SectionFAQ, existing)

	assert.Contains(t, prompt, `Regenerate one "faq" section`)
	assert.Contains(t, prompt, `"type": "faq"`)
	assert.Contains(t, prompt, "- s1 (hero)")
	assert.Contains(t, prompt, "- s2 (text)")
}

func TestSectionPrompt_DoesNotEmbedExistingContent(t *testing.T) {
	existing := []content.ContentSection{
		{ID: "s1", Type: content.SectionText, Content: map[string]any{"body": "SECRET-BODY"}},
	}

	prompt := NewBuilder().SectionPrompt(promptInput(), content.SectionText, existing)

	assert.NotContains(t, prompt, "SECRET-BODY")
}

func TestImagePrompt_AsksForCaption(t *testing.T) {
	prompt := NewBuilder().ImagePrompt()
	assert.Contains(t, prompt, "caption")
}
