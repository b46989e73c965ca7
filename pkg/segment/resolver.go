package segment

import "sort"

// resolve merges candidates from all patterns into one ordered anchor list,
// unique by entry number. When several candidates share an entry number the
// highest-priority pattern's candidate wins; on a priority tie the earliest
// position wins. Candidates sharing a position but not an entry number all
// survive, since spans are computed per anchor.
func resolve(candidates []Candidate) []Candidate {
	best := make(map[int]Candidate, len(candidates))

	for _, c := range candidates {
		cur, ok := best[c.EntryNumber]
		if !ok {
			best[c.EntryNumber] = c
			continue
		}
		if c.Priority < cur.Priority ||
			(c.Priority == cur.Priority && c.Position < cur.Position) {
			best[c.EntryNumber] = c
		}
	}

	anchors := make([]Candidate, 0, len(best))
	for _, c := range best {
		anchors = append(anchors, c)
	}
	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Position != anchors[j].Position {
			return anchors[i].Position < anchors[j].Position
		}
		return anchors[i].EntryNumber < anchors[j].EntryNumber
	})

	return anchors
}
