package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coolbeans/battex/pkg/profile"
)

// continuationPattern matches lettered sub-items like "c)" or "(b)" that
// legitimately open with a lowercase letter.
var continuationPattern = regexp.MustCompile(`^\(?[a-z]\)`)

// substantiveLineMin is the length below which a line is ignored when
// looking for the first real line of an entry.
const substantiveLineMin = 10

// validEntry reports whether a normalized span looks like a genuine entry
// for the given number. Fragments are rejected on two grounds: the text is
// shorter than the profile minimum, or the first substantive line starts
// mid-sentence (lowercase without a continuation marker), which means a
// boundary pattern matched inside body text rather than at a real entry
// start. Acceptance requires the keyword and number in the opening lines or
// a configured domain-signal phrase anywhere in the body.
func validEntry(text string, entryNumber int, p *profile.Profile) bool {
	if len(text) < p.MinEntryLength {
		return false
	}

	lines := strings.Split(text, "\n")

	var firstReal string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > substantiveLineMin {
			firstReal = line
			break
		}
	}
	if firstReal != "" {
		r, _ := utf8.DecodeRuneInString(firstReal)
		if unicode.IsLower(r) && !continuationPattern.MatchString(firstReal) {
			return false
		}
	}

	opening := lines
	if len(opening) > 3 {
		opening = opening[:3]
	}
	head := strings.Join(opening, "\n")
	if strings.Contains(head, fmt.Sprintf("%s %d", p.EntryKeyword, entryNumber)) ||
		strings.Contains(head, fmt.Sprintf("%s%d", p.EntryKeyword, entryNumber)) ||
		strings.HasPrefix(strings.TrimSpace(head), fmt.Sprintf("%d.", entryNumber)) {
		return true
	}

	lower := strings.ToLower(text)
	for _, phrase := range p.DomainSignalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
