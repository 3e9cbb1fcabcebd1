package content

import (
	"math"
	"regexp"
	"strings"
)

// Checklist criterion names. These are stable identifiers the editor keys
// its checklist UI on.
const (
	CriterionKeywordInTitle   = "keyword in title"
	CriterionLocationInTitle  = "location in title"
	CriterionMetaTitleLength  = "meta-title length"
	CriterionMetaDescLength   = "meta-description length"
	CriterionFAQPresent       = "FAQ section present"
	CriterionCTAPresent       = "CTA section present"
	CriterionContentLength    = "sufficient content length"
	CriterionExcerptPresent   = "excerpt present"
	CriterionSlugFriendly     = "URL-friendly slug"
	CriterionMultipleSections = "multiple sections"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CalculateSEOScore evaluates the fixed weighted checklist against a
// generated document and returns the rounded 0-100 score plus the per-item
// results. It is pure: same document and input always produce the same
// score, and it never calls a provider.
func CalculateSEOScore(out *GenerationOutput, in *GenerationInput) (int, []ChecklistItem) {
	titleLower := strings.ToLower(out.Title)

	checklist := []ChecklistItem{
		{
			Name:   CriterionKeywordInTitle,
			Weight: 15,
			Passed: in.ServiceName != "" && strings.Contains(titleLower, strings.ToLower(in.ServiceName)),
		},
		{
			Name:   CriterionLocationInTitle,
			Weight: 10,
			Passed: in.City != "" && strings.Contains(titleLower, strings.ToLower(in.City)),
		},
		{
			Name:   CriterionMetaTitleLength,
			Weight: 10,
			Passed: len(out.MetaTitle) >= 50 && len(out.MetaTitle) <= 60,
		},
		{
			Name:   CriterionMetaDescLength,
			Weight: 10,
			Passed: len(out.MetaDescription) >= 150 && len(out.MetaDescription) <= 160,
		},
		{
			Name:   CriterionFAQPresent,
			Weight: 10,
			Passed: hasSectionType(out.Content, SectionFAQ),
		},
		{
			Name:   CriterionCTAPresent,
			Weight: 10,
			Passed: hasSectionType(out.Content, SectionCTA),
		},
		{
			Name:   CriterionContentLength,
			Weight: 15,
			Passed: countWords(FlattenSections(out.Content)) >= 300,
		},
		{
			Name:   CriterionExcerptPresent,
			Weight: 5,
			Passed: len(out.Excerpt) >= 50,
		},
		{
			Name:   CriterionSlugFriendly,
			Weight: 5,
			Passed: IsValidSlug(out.Slug),
		},
		{
			Name:   CriterionMultipleSections,
			Weight: 10,
			Passed: len(out.Content) >= 3,
		},
	}

	earned, total := 0, 0
	for _, item := range checklist {
		total += item.Weight
		if item.Passed {
			earned += item.Weight
		}
	}

	score := int(math.Round(100 * float64(earned) / float64(total)))
	return score, checklist
}

// IsValidSlug reports whether a slug is lowercase alphanumeric-with-hyphens
// and at most 60 characters
func IsValidSlug(slug string) bool {
	return len(slug) > 0 && len(slug) <= 60 && slugPattern.MatchString(slug)
}

// Slugify converts a title into a URL-safe slug within the slug length
// limit. Runs of non-alphanumeric characters collapse into single hyphens.
func Slugify(title string) string {
	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	return slug
}

func hasSectionType(sections []ContentSection, sectionType string) bool {
	for _, s := range sections {
		if s.Type == sectionType {
			return true
		}
	}
	return false
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// FlattenSections collects every string value in the section payloads into
// one space-joined text, in document order. Word counting and the
// compliance scan both work over this flattened form.
func FlattenSections(sections []ContentSection) string {
	var parts []string
	for _, s := range sections {
		collectStrings(s.Content, &parts)
	}
	return strings.Join(parts, " ")
}

func collectStrings(value any, parts *[]string) {
	switch v := value.(type) {
	case string:
		if v != "" {
			*parts = append(*parts, v)
		}
	case map[string]any:
		// Deterministic order is not needed for counting or substring
		// scans, so plain map iteration is fine here.
		for _, nested := range v {
			collectStrings(nested, parts)
		}
	case []any:
		for _, nested := range v {
			collectStrings(nested, parts)
		}
	}
}
