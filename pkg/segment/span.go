package segment

import "github.com/coolbeans/battex/pkg/profile"

// Span is a half-open character range in the logical buffer holding one
// entry's raw text.
type Span struct {
	Start       int
	End         int
	EntryNumber int
	PatternID   string
}

// extractSpans converts the resolved anchor list into spans. Each span runs
// from its anchor to the next anchor; the final span runs to the first
// section-terminator match within the lookahead window, or is cut at the
// profile's span ceiling. The returned flag reports whether the ceiling was
// applied.
func extractSpans(anchors []Candidate, buf string, p *profile.Profile) ([]Span, bool) {
	spans := make([]Span, 0, len(anchors))
	truncated := false

	for i, a := range anchors {
		end := 0
		if i+1 < len(anchors) {
			end = anchors[i+1].Position
		} else {
			var cut bool
			end, cut = logicalEnd(buf, a.Position, p)
			truncated = truncated || cut
		}
		spans = append(spans, Span{
			Start:       a.Position,
			End:         end,
			EntryNumber: a.EntryNumber,
			PatternID:   a.PatternID,
		})
	}

	return spans, truncated
}

// logicalEnd scans forward from start for a section terminator within the
// profile's lookahead window. Without a terminator the span is cut at
// start+MaxSpanLength; the second return value reports that cut. Reaching
// the end of the buffer is not a cut.
func logicalEnd(buf string, start int, p *profile.Profile) (int, bool) {
	windowEnd := start + p.TerminatorLookahead
	if windowEnd > len(buf) {
		windowEnd = len(buf)
	}
	window := buf[start:windowEnd]

	earliest := -1
	for _, re := range p.Terminators() {
		if loc := re.FindStringIndex(window); loc != nil {
			if earliest < 0 || loc[0] < earliest {
				earliest = loc[0]
			}
		}
	}
	if earliest > 0 {
		return start + earliest, false
	}

	if start+p.MaxSpanLength < len(buf) {
		return start + p.MaxSpanLength, true
	}
	return len(buf), false
}
