package content

import (
	"fmt"
	"strings"
)

// htmlReplacer escapes the characters that matter when inserting untrusted
// model output into markup
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes ampersands, angle brackets and quotes. Everything
// interpolated into rendered markup goes through this; generated text is
// untrusted.
func EscapeHTML(text string) string {
	return htmlReplacer.Replace(text)
}

// BlogContentToHTML renders a section sequence into an HTML fragment for an
// external page builder. The transform is pure: no I/O, no mutation of the
// input. Unknown section types degrade to a plain paragraph when their
// content happens to be a string and contribute nothing otherwise.
func BlogContentToHTML(sections []ContentSection) string {
	var sb strings.Builder

	for _, section := range sections {
		c := asMap(section.Content)
		switch section.Type {
		case SectionHero:
			sb.WriteString("<header class=\"blog-hero\">\n")
			sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", EscapeHTML(str(c, "headline"))))
			if sub := str(c, "subheadline"); sub != "" {
				sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(sub)))
			}
			if img := str(c, "imageUrl"); img != "" {
				sb.WriteString(fmt.Sprintf("<img src=\"%s\" alt=\"%s\">\n",
					EscapeHTML(img), EscapeHTML(str(c, "headline"))))
			}
			sb.WriteString("</header>\n")

		case SectionText:
			sb.WriteString("<section class=\"blog-text\">\n")
			if heading := str(c, "heading"); heading != "" {
				sb.WriteString(fmt.Sprintf("<h2>%s</h2>\n", EscapeHTML(heading)))
			}
			sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(str(c, "body"))))
			sb.WriteString("</section>\n")

		case SectionJobSummary:
			sb.WriteString("<section class=\"blog-job-summary\">\n<h2>Project Summary</h2>\n<ul>\n")
			if pt := str(c, "projectType"); pt != "" {
				sb.WriteString(fmt.Sprintf("<li><strong>Project:</strong> %s</li>\n", EscapeHTML(pt)))
			}
			if loc := str(c, "location"); loc != "" {
				sb.WriteString(fmt.Sprintf("<li><strong>Location:</strong> %s</li>\n", EscapeHTML(loc)))
			}
			if dur := str(c, "duration"); dur != "" {
				sb.WriteString(fmt.Sprintf("<li><strong>Duration:</strong> %s</li>\n", EscapeHTML(dur)))
			}
			sb.WriteString("</ul>\n")
			if highlights := strList(c, "highlights"); len(highlights) > 0 {
				sb.WriteString("<ul class=\"highlights\">\n")
				for _, h := range highlights {
					sb.WriteString(fmt.Sprintf("<li>%s</li>\n", EscapeHTML(h)))
				}
				sb.WriteString("</ul>\n")
			}
			sb.WriteString("</section>\n")

		case SectionBeforeAfter:
			sb.WriteString("<section class=\"blog-before-after\">\n")
			sb.WriteString(fmt.Sprintf("<h3>Before</h3>\n<p>%s</p>\n", EscapeHTML(str(c, "beforeDescription"))))
			sb.WriteString(fmt.Sprintf("<h3>After</h3>\n<p>%s</p>\n", EscapeHTML(str(c, "afterDescription"))))
			if improvements := strList(c, "improvements"); len(improvements) > 0 {
				sb.WriteString("<ul>\n")
				for _, imp := range improvements {
					sb.WriteString(fmt.Sprintf("<li>%s</li>\n", EscapeHTML(imp)))
				}
				sb.WriteString("</ul>\n")
			}
			sb.WriteString("</section>\n")

		case SectionProcessTimeline:
			sb.WriteString("<section class=\"blog-process\">\n<h2>Our Process</h2>\n<ol>\n")
			for _, step := range objList(c, "steps") {
				sb.WriteString("<li>\n")
				sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", EscapeHTML(str(step, "title"))))
				sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(str(step, "description"))))
				if dur := str(step, "duration"); dur != "" {
					sb.WriteString(fmt.Sprintf("<span class=\"duration\">%s</span>\n", EscapeHTML(dur)))
				}
				sb.WriteString("</li>\n")
			}
			sb.WriteString("</ol>\n</section>\n")

		case SectionPricingFactors:
			sb.WriteString("<section class=\"blog-pricing\">\n<h2>What Affects the Price</h2>\n")
			if intro := str(c, "intro"); intro != "" {
				sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(intro)))
			}
			sb.WriteString("<ul>\n")
			for _, factor := range objList(c, "factors") {
				sb.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s impact): %s</li>\n",
					EscapeHTML(str(factor, "name")),
					EscapeHTML(str(factor, "impact")),
					EscapeHTML(str(factor, "description"))))
			}
			sb.WriteString("</ul>\n</section>\n")

		case SectionFAQ:
			sb.WriteString("<section class=\"blog-faq\">\n<h2>Frequently Asked Questions</h2>\n")
			for _, qa := range objList(c, "questions") {
				sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", EscapeHTML(str(qa, "question"))))
				sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(str(qa, "answer"))))
			}
			sb.WriteString("</section>\n")

		case SectionCTA:
			sb.WriteString("<section class=\"blog-cta\">\n")
			sb.WriteString(fmt.Sprintf("<h2>%s</h2>\n", EscapeHTML(str(c, "heading"))))
			sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(str(c, "body"))))
			sb.WriteString(fmt.Sprintf("<a class=\"cta-button\" href=\"%s\">%s</a>\n",
				EscapeHTML(str(c, "buttonUrl")), EscapeHTML(str(c, "buttonText"))))
			sb.WriteString("</section>\n")

		default:
			if text, ok := section.Content.(string); ok && text != "" {
				sb.WriteString(fmt.Sprintf("<p>%s</p>\n", EscapeHTML(text)))
			}
		}
	}

	return sb.String()
}

func asMap(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func strList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objList(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
