package templates

import (
	"html"
	"regexp"
	"strings"
)

var (
	// blocks whose text content must not leak into the plain text part
	hiddenBlockRegex = regexp.MustCompile(`(?is)<(head|style|script)\b.*?</(head|style|script)>`)
	previewRegex     = regexp.MustCompile(`(?is)<div[^>]*data-preview[^>]*>.*?</div>`)
	anchorRegex      = regexp.MustCompile(`(?is)<a\b[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	breakRegex       = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockEndRegex    = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|table|section)>`)
	listItemRegex    = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	tagRegex         = regexp.MustCompile(`<[^>]*>`)
)

// PlainText derives a plain text alternative from rendered HTML. Links keep
// their target in parentheses, list items become bullets and blank lines are
// dropped.
func PlainText(s string) string {
	text := hiddenBlockRegex.ReplaceAllString(s, "")
	text = previewRegex.ReplaceAllString(text, "")
	text = anchorRegex.ReplaceAllStringFunc(text, func(a string) string {
		m := anchorRegex.FindStringSubmatch(a)
		href, label := m[1], strings.TrimSpace(tagRegex.ReplaceAllString(m[2], ""))
		switch {
		case href == "" || href == "#" || strings.HasPrefix(href, "#"):
			return label
		case label == "" || label == href:
			return href
		default:
			return label + " (" + href + ")"
		}
	})
	text = breakRegex.ReplaceAllString(text, "\n")
	text = listItemRegex.ReplaceAllString(text, "\n• ")
	text = blockEndRegex.ReplaceAllString(text, "\n")
	text = tagRegex.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" && line != "•" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
