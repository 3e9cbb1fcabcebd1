// Package prompts renders the natural-language prompts sent to the
// generation providers.
package prompts

import (
	"fmt"
	"strings"

	"github.com/servicepost/content-engine/internal/service/content"
)

// Builder creates prompts for blog generation
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// sectionShapes spells out the exact content payload expected per section
// type. The editor and the HTML renderer both depend on these field names,
// so the contract is embedded verbatim in every generation prompt.
var sectionShapes = []struct {
	sectionType string
	shape       string
}{
	{content.SectionHero, `{"headline": string, "subheadline": string, "imageUrl": string}`},
	{content.SectionText, `{"heading": string, "body": string}`},
	{content.SectionJobSummary, `{"projectType": string, "location": string, "duration": string, "highlights": [string]}`},
	{content.SectionBeforeAfter, `{"beforeDescription": string, "afterDescription": string, "improvements": [string]}`},
	{content.SectionProcessTimeline, `{"steps": [{"title": string, "description": string, "duration": string}]}`},
	{content.SectionPricingFactors, `{"intro": string, "factors": [{"name": string, "description": string, "impact": "low"|"medium"|"high"}]}`},
	{content.SectionFAQ, `{"questions": [{"question": string, "answer": string}]}`},
	{content.SectionCTA, `{"heading": string, "body": string, "buttonText": string, "buttonUrl": string}`},
}

// BlogPrompt renders the full-document generation prompt for one input
func (b *Builder) BlogPrompt(in *content.GenerationInput) string {
	var sb strings.Builder

	sb.WriteString("You are an expert content writer for local service businesses.\n\n")
	sb.WriteString(fmt.Sprintf("Write a blog post: %s.\n", content.ArchetypeDescription(in.Archetype)))
	sb.WriteString(fmt.Sprintf("The business offers %s", in.ServiceName))
	if in.ServiceDescription != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", in.ServiceDescription))
	}
	sb.WriteString(fmt.Sprintf(" in %s", b.locationPhrase(in)))
	sb.WriteString(".\n")
	sb.WriteString(fmt.Sprintf("The goal of the post is %s.\n", content.GoalDescription(in.Goal)))
	if in.Tone != "" {
		sb.WriteString(fmt.Sprintf("Write in a %s tone.\n", in.Tone))
	}
	sb.WriteString("\n")

	if in.Job != nil {
		sb.WriteString("The post references this completed job:\n")
		sb.WriteString(fmt.Sprintf("- Project: %s\n", in.Job.Title))
		if in.Job.Address != "" {
			sb.WriteString(fmt.Sprintf("- Address: %s\n", in.Job.Address))
		}
		if !in.Job.CompletedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("- Completed: %s\n", in.Job.CompletedAt.Format("January 2, 2006")))
		}
		if in.Job.Notes != "" {
			sb.WriteString(fmt.Sprintf("- Notes: %s\n", in.Job.Notes))
		}
		sb.WriteString("\n")
	}

	if len(in.TalkingPoints) > 0 {
		sb.WriteString("Work these talking points into the post:\n")
		for i, point := range in.TalkingPoints {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, point))
		}
		sb.WriteString("\n")
	}

	if len(in.Layout) > 0 {
		sb.WriteString("Produce these sections, in this order:\n")
		for _, section := range in.Layout {
			if section.Required {
				sb.WriteString(fmt.Sprintf("- %s (%s) [REQUIRED]\n", section.Label, section.Type))
			} else {
				sb.WriteString(fmt.Sprintf("- %s (%s)\n", section.Label, section.Type))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("SEO requirements:\n")
	sb.WriteString(fmt.Sprintf("- Mention %s 2-4 times across the post\n", b.locationPhrase(in)))
	sb.WriteString(fmt.Sprintf("- Include \"%s\" in the title and in the opening section\n", in.ServiceName))
	sb.WriteString("- metaTitle must be 50-60 characters\n")
	sb.WriteString("- metaDescription must be 150-160 characters\n")
	sb.WriteString("- Total length between 800 and 1500 words\n\n")

	sb.WriteString("Compliance requirements:\n")
	sb.WriteString("- Avoid absolute or superlative claims (no \"guaranteed\", \"best in\", \"100%\")\n")
	sb.WriteString("- Include a disclaimer that results may vary\n")
	sb.WriteString("- Include safety notes where the work involves hazards\n\n")

	sb.WriteString("Respond with a single JSON object, no explanations:\n")
	sb.WriteString(`{"title": string, "metaTitle": string, "metaDescription": string, "excerpt": string, "slug": string, "content": [{"id": string, "type": string, "content": object}]}`)
	sb.WriteString("\n\nEach content element's \"content\" payload must match its type exactly:\n")
	b.writeShapes(&sb)

	return sb.String()
}

// SectionPrompt renders the narrower prompt used to regenerate one section.
// It references only the target type plus a skeleton of the existing
// sections for context.
func (b *Builder) SectionPrompt(in *content.GenerationInput, sectionType string, existing []content.ContentSection) string {
	var sb strings.Builder

	sb.WriteString("You are an expert content writer for local service businesses.\n\n")
	sb.WriteString(fmt.Sprintf("Regenerate one \"%s\" section of a blog post about %s in %s.\n",
		sectionType, in.ServiceName, b.locationPhrase(in)))
	if in.Tone != "" {
		sb.WriteString(fmt.Sprintf("Write in a %s tone.\n", in.Tone))
	}
	sb.WriteString("\n")

	if len(existing) > 0 {
		sb.WriteString("The post currently has these sections:\n")
		for _, section := range existing {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", section.ID, section.Type))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with a single JSON object, no explanations:\n")
	sb.WriteString(fmt.Sprintf(`{"id": string, "type": "%s", "content": object}`, sectionType))
	sb.WriteString("\n\nThe \"content\" payload must match the section type exactly:\n")
	b.writeShapes(&sb)

	return sb.String()
}

// ImagePrompt renders the prompt sent alongside a job photo
func (b *Builder) ImagePrompt() string {
	return "Describe this photo of a completed service job in one or two sentences " +
		"suitable for a blog post image caption. Mention the visible work, not the camera or framing."
}

func (b *Builder) locationPhrase(in *content.GenerationInput) string {
	if in.Neighborhood != "" {
		return fmt.Sprintf("%s, %s", in.Neighborhood, in.City)
	}
	return in.City
}

func (b *Builder) writeShapes(sb *strings.Builder) {
	for _, s := range sectionShapes {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", s.sectionType, s.shape))
	}
}
