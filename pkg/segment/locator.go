package segment

import (
	"strconv"

	"github.com/coolbeans/battex/pkg/profile"
)

// Candidate is a potential entry boundary found by one boundary pattern.
// Candidates are transient; the resolver reduces them to one anchor per
// entry number.
type Candidate struct {
	Position    int
	EntryNumber int
	PatternID   string
	Priority    int
	Matched     string
}

// locate runs the profile's boundary patterns over the buffer in priority
// order. The highest-priority pattern always runs fully; lower-priority
// patterns run only while the distinct entry-number count is below the
// profile's expected minimum, unless marked AlwaysRun. Candidates found by
// earlier patterns are never removed.
func locate(buf string, p *profile.Profile) []Candidate {
	var candidates []Candidate
	seen := make(map[int]bool)

	for i := range p.BoundaryPatterns {
		bp := &p.BoundaryPatterns[i]
		if i > 0 && !bp.AlwaysRun && len(seen) >= p.ExpectedMinimumEntries {
			continue
		}

		for _, m := range bp.Pattern().FindAllStringSubmatchIndex(buf, -1) {
			// Group 1 carries the entry number.
			if m[2] < 0 || m[3] < 0 {
				continue
			}
			num, err := strconv.Atoi(buf[m[2]:m[3]])
			if err != nil || num < 1 {
				continue
			}
			candidates = append(candidates, Candidate{
				Position:    m[0],
				EntryNumber: num,
				PatternID:   bp.ID,
				Priority:    bp.Priority,
				Matched:     buf[m[0]:m[1]],
			})
			seen[num] = true
		}
	}

	return candidates
}
