package segment

import (
	"regexp"
	"sort"
	"strings"
)

// sectionRefPatterns match cross-references to other parts of the source
// document that an entry's text may rely on (techniques described in a
// section, emission levels in a table, and so on).
var sectionRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsection\s+(\d+(?:\.\d+){0,2})`),
	regexp.MustCompile(`(?i)\bchapter\s+(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bannex\s+([A-Z]+)`),
	regexp.MustCompile(`(?i)\btable\s+(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bfigure\s+(\d+(?:\.\d+)?)`),
}

// sectionReferences returns the distinct document cross-references found
// in an entry's text, as "kind number" strings sorted alphabetically.
func sectionReferences(text string) []string {
	seen := make(map[string]bool)
	for _, re := range sectionRefPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			kind := strings.ToLower(strings.Fields(m[0])[0])
			seen[kind+" "+m[1]] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// tableIndicators are terms whose repeated presence suggests the entry
// carries tabular content (emission limits, monitoring parameters).
var tableIndicators = []string{
	"table", "emission limit", "parameter", "value", "unit",
	"monitoring", "measurement", "limit value", "technique",
}

// detectTables reports whether the entry likely contains tables, plus the
// literal occurrence count of the word "table".
func detectTables(text string) (bool, int) {
	lower := strings.ToLower(text)

	hits := 0
	for _, ind := range tableIndicators {
		hits += strings.Count(lower, ind)
	}
	return hits >= 3, strings.Count(lower, "table")
}
