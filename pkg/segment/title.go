package segment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/battex/pkg/profile"
)

var numericLinePattern = regexp.MustCompile(`^\d+\.?\s*$`)

// titleLineMin is the minimum length for a line to be considered as a
// title source.
const titleLineMin = 20

// deriveTitle extracts a short display title from a normalized entry text:
// the first of the opening lines that is long enough and not purely
// numeric, with the leading anchor boilerplate stripped and the result
// truncated to the display maximum. Falls back to the profile placeholder.
func deriveTitle(text string, entryNumber int, p *profile.Profile) string {
	kw := regexp.QuoteMeta(p.EntryKeyword)
	leadIn := regexp.MustCompile(`(?i)^\d+\.\s*` + kw + `\s*(?:is\s+to\s*)?:?\s*`)
	numbered := regexp.MustCompile(`(?i)^` + kw + `\s+` + strconv.Itoa(entryNumber) + `\s*:?\.?\s*`)

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= titleLineMin || numericLinePattern.MatchString(line) {
			continue
		}
		title := leadIn.ReplaceAllString(line, "")
		title = numbered.ReplaceAllString(title, "")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		if len(title) > profile.DefaultTitleMaxLength {
			title = title[:profile.DefaultTitleMaxLength]
		}
		return title
	}

	return p.TitleFallback
}
