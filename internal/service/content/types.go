// Package content defines the generated blog document model and the
// provider-independent post-processing over it: parsing, SEO scoring,
// compliance scanning and HTML rendering.
package content

import "time"

// BlogArchetype selects the content template a post is generated from
type BlogArchetype string

const (
	ArchetypeJobShowcase   BlogArchetype = "job_showcase"
	ArchetypeExpertOpinion BlogArchetype = "expert_opinion"
	ArchetypeSeasonalTip   BlogArchetype = "seasonal_tip"
	ArchetypeFAQ           BlogArchetype = "faq_educational"
)

// ContentGoal describes what the post is optimized for
type ContentGoal string

const (
	GoalSEORanking ContentGoal = "seo_ranking"
	GoalEducation  ContentGoal = "education"
	GoalConversion ContentGoal = "conversion"
)

// Known section type discriminants. Anything else renders through the
// unknown-type fallback.
const (
	SectionHero            = "hero"
	SectionText            = "text"
	SectionJobSummary      = "job_summary"
	SectionBeforeAfter     = "before_after"
	SectionProcessTimeline = "process_timeline"
	SectionPricingFactors  = "pricing_factors"
	SectionFAQ             = "faq"
	SectionCTA             = "cta"
)

// JobRecord carries details of a completed job referenced by the post
type JobRecord struct {
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       string    `json:"notes"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
}

// LayoutSection is one entry of the caller-supplied layout template
type LayoutSection struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// GenerationInput holds all caller-supplied parameters for one generation
// call. It is not mutated by the pipeline.
type GenerationInput struct {
	Archetype          BlogArchetype   `json:"archetype"`
	ServiceName        string          `json:"service_name"`
	ServiceDescription string          `json:"service_description"`
	City               string          `json:"city"`
	Neighborhood       string          `json:"neighborhood,omitempty"`
	Goal               ContentGoal     `json:"goal"`
	Tone               string          `json:"tone,omitempty"`
	Job                *JobRecord      `json:"job,omitempty"`
	TalkingPoints      []string        `json:"talking_points,omitempty"`
	Layout             []LayoutSection `json:"layout,omitempty"`
}

// ContentSection is one block of a generated document. Content carries the
// per-type payload: a JSON object for the known types (field names per type
// are part of the wire contract with the editor and the HTML renderer), or
// any other JSON value for unrecognized types. IsLocked marks sections an
// editor has frozen against regeneration.
type ContentSection struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Content  any    `json:"content"`
	IsLocked bool   `json:"isLocked"`
}

// ChecklistItem is one named, weighted SEO criterion
type ChecklistItem struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Passed bool   `json:"passed"`
}

// GenerationOutput is the document produced by one generation call.
// Immutable once returned; section regeneration produces a replacement
// ContentSection, not a new document.
type GenerationOutput struct {
	Title           string           `json:"title"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	Excerpt         string           `json:"excerpt"`
	Content         []ContentSection `json:"content"`
	Slug            string           `json:"slug"`
	SEOScore        int              `json:"seoScore"`
	SEOChecklist    []ChecklistItem  `json:"seoChecklist"`
}

// ComplianceFlags are the four lexical signals scanned from the flattened
// document text. HasAbsoluteClaims is the one negative signal (forbidden
// language present); the other three are positive.
type ComplianceFlags struct {
	HasAbsoluteClaims     bool `json:"has_absolute_claims"`
	HasSafetyDisclaimer   bool `json:"has_safety_disclaimer"`
	HasResultsDisclaimer  bool `json:"has_results_disclaimer"`
	HasCredibilityContent bool `json:"has_credibility_content"`
}

// ArchetypeDescription returns the human phrasing used in prompts
func ArchetypeDescription(a BlogArchetype) string {
	switch a {
	case ArchetypeJobShowcase:
		return "a showcase of a recently completed job, walking readers through the project from start to finish"
	case ArchetypeExpertOpinion:
		return "an expert opinion piece sharing professional insight on the service"
	case ArchetypeSeasonalTip:
		return "a seasonal tips article helping homeowners prepare for the time of year"
	case ArchetypeFAQ:
		return "an educational FAQ article answering the questions customers ask most"
	default:
		return "an informative article about the service"
	}
}

// GoalDescription returns the human phrasing used in prompts
func GoalDescription(g ContentGoal) string {
	switch g {
	case GoalSEORanking:
		return "ranking in local search results for the service and location"
	case GoalEducation:
		return "educating homeowners so they can make informed decisions"
	case GoalConversion:
		return "converting readers into quote requests"
	default:
		return "informing potential customers"
	}
}
