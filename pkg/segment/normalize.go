package segment

import (
	"regexp"
	"strings"
)

var (
	// markerPattern matches the page-boundary tokens inserted by Assemble.
	markerPattern = regexp.MustCompile(`\[PAGE_\d+\]`)

	// blankRunPattern matches three or more consecutive newlines, possibly
	// separated by horizontal whitespace.
	blankRunPattern = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

	// spaceRunPattern matches runs of spaces and tabs.
	spaceRunPattern = regexp.MustCompile(`[ \t]+`)

	// numberLinePattern matches lines consisting solely of a number,
	// the usual footer artifact of PDF text extraction. The trailing
	// newline is consumed so dropping the line does not widen blank runs.
	numberLinePattern = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$\n?`)
)

// Normalize cleans one extracted span: page markers are removed, isolated
// page-number lines are dropped, blank-line runs collapse to one blank
// line, and space runs collapse to one space. Normalizing already
// normalized text is a no-op.
func Normalize(text string) string {
	text = markerPattern.ReplaceAllString(text, "")
	text = numberLinePattern.ReplaceAllString(text, "")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
