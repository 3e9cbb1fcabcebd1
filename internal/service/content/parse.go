package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Parse errors returned to the orchestrator, which treats them as failed
// provider attempts for fallback purposes.
var (
	ErrInvalidJSON    = errors.New("response is not valid JSON")
	ErrMissingTitle   = errors.New("response is missing a title")
	ErrMissingContent = errors.New("response has no content sections")
	ErrMissingSection = errors.New("response is not a content section object")
)

// rawSection mirrors what providers actually send back: every field beyond
// content is optional and defaulted during normalization.
type rawSection struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Content  any    `json:"content"`
	IsLocked *bool  `json:"isLocked"`
}

type rawDocument struct {
	Title           string       `json:"title"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	Excerpt         string       `json:"excerpt"`
	Slug            string       `json:"slug"`
	Content         []rawSection `json:"content"`
}

// ParseDocument decodes a raw model response into a GenerationOutput.
// Providers routinely wrap JSON in a markdown code fence even when told not
// to, so an optional surrounding fence is stripped first. The score and
// checklist are left zero; the orchestrator fills them in.
func ParseDocument(raw string) (*GenerationOutput, error) {
	cleaned := StripCodeFence(raw)

	var doc rawDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if doc.Title == "" {
		return nil, ErrMissingTitle
	}
	if len(doc.Content) == 0 {
		return nil, ErrMissingContent
	}

	sections := make([]ContentSection, 0, len(doc.Content))
	for i, rs := range doc.Content {
		sections = append(sections, normalizeSection(rs, i))
	}

	slug := doc.Slug
	if slug == "" {
		slug = Slugify(doc.Title)
	}

	return &GenerationOutput{
		Title:           doc.Title,
		MetaTitle:       doc.MetaTitle,
		MetaDescription: doc.MetaDescription,
		Excerpt:         doc.Excerpt,
		Content:         sections,
		Slug:            slug,
	}, nil
}

// ParseSection decodes a single-section response used by section
// regeneration. The response must be one JSON object, not an array.
func ParseSection(raw string) (*ContentSection, error) {
	cleaned := StripCodeFence(raw)

	var rs rawSection
	if err := json.Unmarshal([]byte(cleaned), &rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if rs.Content == nil {
		return nil, ErrMissingSection
	}

	section := normalizeSection(rs, 0)
	return &section, nil
}

// normalizeSection fills the defaults the wire contract allows providers to
// omit: a positional id, the text type, and an unlocked flag.
func normalizeSection(rs rawSection, position int) ContentSection {
	section := ContentSection{
		ID:      rs.ID,
		Type:    rs.Type,
		Content: rs.Content,
	}
	if section.ID == "" {
		section.ID = fmt.Sprintf("section-%d", position+1)
	}
	if section.Type == "" {
		section.Type = SectionText
	}
	if rs.IsLocked != nil {
		section.IsLocked = *rs.IsLocked
	}
	return section
}

// StripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, and trims whitespace. Text without a fence passes through
// untouched.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language identifier on the opening fence line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
