package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
	"title": "Gutter Cleaning in Portland",
	"metaTitle": "Gutter Cleaning Portland | Fall Maintenance",
	"metaDescription": "Keep your gutters flowing.",
	"excerpt": "Why fall gutter cleaning matters.",
	"slug": "gutter-cleaning-portland",
	"content": [
		{"id": "hero-1", "type": "hero", "content": {"headline": "Gutter Cleaning"}, "isLocked": true},
		{"content": {"heading": "Overview", "body": "Leaves clog gutters."}}
	]
}`

func TestParseDocument_ValidResponse(t *testing.T) {
	out, err := ParseDocument(validDocument)
	require.NoError(t, err)

	assert.Equal(t, "Gutter Cleaning in Portland", out.Title)
	assert.Equal(t, "gutter-cleaning-portland", out.Slug)
	require.Len(t, out.Content, 2)
	assert.Equal(t, "hero-1", out.Content[0].ID)
	assert.True(t, out.Content[0].IsLocked)
	assert.Zero(t, out.SEOScore)
	assert.Empty(t, out.SEOChecklist)
}

func TestParseDocument_DefaultsOmittedSectionFields(t *testing.T) {
	out, err := ParseDocument(validDocument)
	require.NoError(t, err)

	second := out.Content[1]
	assert.Equal(t, "section-2", second.ID)
	assert.Equal(t, SectionText, second.Type)
	assert.False(t, second.IsLocked)
}

func TestParseDocument_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validDocument + "\n```"
	out, err := ParseDocument(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Gutter Cleaning in Portland", out.Title)
}

func TestParseDocument_StripsFenceWithoutLanguageTag(t *testing.T) {
	fenced := "```\n" + validDocument + "\n```"
	out, err := ParseDocument(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Gutter Cleaning in Portland", out.Title)
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument("Sure! Here is your blog post about gutters.")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseDocument_MissingTitle(t *testing.T) {
	_, err := ParseDocument(`{"content": [{"type": "text", "content": {"body": "hi"}}]}`)
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestParseDocument_EmptyContent(t *testing.T) {
	_, err := ParseDocument(`{"title": "Something", "content": []}`)
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestParseDocument_MissingSlugDerivedFromTitle(t *testing.T) {
	out, err := ParseDocument(`{"title": "Why Moss Removal Matters!", "content": [{"type": "text", "content": {"body": "moss"}}]}`)
	require.NoError(t, err)
	assert.Equal(t, "why-moss-removal-matters", out.Slug)
}

func TestParseSection_ValidObject(t *testing.T) {
	section, err := ParseSection(`{"type": "cta", "content": {"heading": "Book now", "body": "We are ready.", "buttonText": "Call", "buttonUrl": "/contact"}}`)
	require.NoError(t, err)

	assert.Equal(t, SectionCTA, section.Type)
	assert.Equal(t, "section-1", section.ID)
}

func TestParseSection_RejectsMissingContent(t *testing.T) {
	_, err := ParseSection(`{"type": "cta"}`)
	assert.ErrorIs(t, err, ErrMissingSection)
}

func TestParseSection_RejectsNonJSON(t *testing.T) {
	_, err := ParseSection("not json at all")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestStripCodeFence_PassthroughWithoutFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence(`  {"a":1}  `))
}

func TestStripCodeFence_FenceOnSameLineAsBody(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```{\"a\":1}```"))
}
