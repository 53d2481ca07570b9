package treatment

import (
	"regexp"
	"strings"
)

// Highlight wraps case-insensitive keyword matches in <mark> tags. Keywords
// are applied in order and each pass runs over the previous pass's output,
// so a keyword matching inside an earlier highlight nests its markers; the
// dashboards rely on that exact output shape.
func Highlight(text string, keywords []string) string {
	marked := text
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
		marked = re.ReplaceAllString(marked, "<mark>$0</mark>")
	}
	return marked
}
