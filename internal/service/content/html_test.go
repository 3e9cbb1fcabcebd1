package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_AllSpecialCharacters(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#39;", EscapeHTML(`&<>"'`))
}

func TestBlogContentToHTML_EscapesScriptInjection(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionText, Content: map[string]any{
			"heading": "Safety",
			"body":    `<script>alert(1)</script>`,
		}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<script>")
}

func TestBlogContentToHTML_HeroSection(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionHero, Content: map[string]any{
			"headline":    "Roof Cleaning Done Right",
			"subheadline": "Moss-free by Monday",
			"imageUrl":    "https://example.com/roof.jpg",
		}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, `<header class="blog-hero">`)
	assert.Contains(t, html, "<h1>Roof Cleaning Done Right</h1>")
	assert.Contains(t, html, "<p>Moss-free by Monday</p>")
	assert.Contains(t, html, `src="https://example.com/roof.jpg"`)
}

func TestBlogContentToHTML_HeroOmitsEmptyOptionalFields(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionHero, Content: map[string]any{"headline": "Just a headline"}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, "<h1>Just a headline</h1>")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "<p>")
}

func TestBlogContentToHTML_FAQSection(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionFAQ, Content: map[string]any{"questions": []any{
			map[string]any{"question": "How long does it take?", "answer": "About two hours."},
			map[string]any{"question": "Is it safe for pets?", "answer": "Yes."},
		}}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, `<section class="blog-faq">`)
	assert.Contains(t, html, "<h2>Frequently Asked Questions</h2>")
	assert.Contains(t, html, "<h3>How long does it take?</h3>")
	assert.Contains(t, html, "<p>Yes.</p>")
}

func TestBlogContentToHTML_CTASection(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionCTA, Content: map[string]any{
			"heading":    "Ready for a cleaner home?",
			"body":       "Get your free estimate today.",
			"buttonText": "Request Quote",
			"buttonUrl":  "/quote",
		}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, `<section class="blog-cta">`)
	assert.Contains(t, html, `<a class="cta-button" href="/quote">Request Quote</a>`)
}

func TestBlogContentToHTML_ProcessTimelineOrderedList(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionProcessTimeline, Content: map[string]any{"steps": []any{
			map[string]any{"title": "Inspect", "description": "Walk the property.", "duration": "15 min"},
			map[string]any{"title": "Wash", "description": "Soft wash all surfaces."},
		}}},
	}

	html := BlogContentToHTML(sections)

	assert.Contains(t, html, "<ol>")
	assert.Contains(t, html, "<h3>Inspect</h3>")
	assert.Contains(t, html, `<span class="duration">15 min</span>`)
	assert.Equal(t, 1, strings.Count(html, "duration"))
}

func TestBlogContentToHTML_UnknownTypeStringFallback(t *testing.T) {
	sections := []ContentSection{
		{Type: "pull_quote", Content: "Cleanliness is next to godliness."},
	}

	html := BlogContentToHTML(sections)

	assert.Equal(t, "<p>Cleanliness is next to godliness.</p>\n", html)
}

func TestBlogContentToHTML_UnknownTypeNonStringContributesNothing(t *testing.T) {
	sections := []ContentSection{
		{Type: "widget", Content: map[string]any{"config": "opaque"}},
	}

	assert.Equal(t, "", BlogContentToHTML(sections))
}

func TestBlogContentToHTML_EmptyInput(t *testing.T) {
	assert.Equal(t, "", BlogContentToHTML(nil))
}

func TestBlogContentToHTML_SectionsRenderInOrder(t *testing.T) {
	sections := []ContentSection{
		{Type: SectionHero, Content: map[string]any{"headline": "First"}},
		{Type: SectionCTA, Content: map[string]any{"heading": "Last", "body": "b", "buttonText": "t", "buttonUrl": "/u"}},
	}

	html := BlogContentToHTML(sections)

	assert.Less(t, strings.Index(html, "First"), strings.Index(html, "Last"))
}
