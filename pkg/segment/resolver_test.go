package segment

import "testing"

func TestResolvePriorityWinsForSameEntry(t *testing.T) {
	// Scenario: two patterns both claim entry 3 at different positions.
	cands := []Candidate{
		{Position: 900, EntryNumber: 3, PatternID: "loose", Priority: 2, Matched: "3. BAT"},
		{Position: 400, EntryNumber: 3, PatternID: "standard", Priority: 1, Matched: "3. BAT is to"},
	}

	anchors := resolve(cands)
	if len(anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(anchors))
	}
	if anchors[0].PatternID != "standard" || anchors[0].Position != 400 {
		t.Errorf("higher-priority candidate should win, got %+v", anchors[0])
	}
}

func TestResolveEarliestPositionBreaksPriorityTie(t *testing.T) {
	cands := []Candidate{
		{Position: 500, EntryNumber: 2, PatternID: "loose", Priority: 2},
		{Position: 120, EntryNumber: 2, PatternID: "loose", Priority: 2},
	}

	anchors := resolve(cands)
	if len(anchors) != 1 || anchors[0].Position != 120 {
		t.Fatalf("earliest position should win a priority tie, got %+v", anchors)
	}
}

func TestResolveSortsByPosition(t *testing.T) {
	cands := []Candidate{
		{Position: 300, EntryNumber: 3, Priority: 1},
		{Position: 100, EntryNumber: 1, Priority: 1},
		{Position: 200, EntryNumber: 2, Priority: 1},
	}

	anchors := resolve(cands)
	for i := 1; i < len(anchors); i++ {
		if anchors[i].Position < anchors[i-1].Position {
			t.Fatalf("anchors not sorted by position: %+v", anchors)
		}
	}
}

func TestResolveKeepsSamePositionDifferentEntries(t *testing.T) {
	// Overlapping pattern matches at one position for two entry numbers
	// both survive; spans are computed per anchor.
	cands := []Candidate{
		{Position: 50, EntryNumber: 5, Priority: 1},
		{Position: 50, EntryNumber: 6, Priority: 2},
	}

	anchors := resolve(cands)
	if len(anchors) != 2 {
		t.Fatalf("expected both anchors kept, got %+v", anchors)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	if anchors := resolve(nil); len(anchors) != 0 {
		t.Fatalf("expected empty result, got %+v", anchors)
	}
}

func TestResolveUniqueEntryNumbers(t *testing.T) {
	cands := []Candidate{
		{Position: 10, EntryNumber: 1, Priority: 1},
		{Position: 90, EntryNumber: 1, Priority: 2},
		{Position: 40, EntryNumber: 2, Priority: 1},
		{Position: 70, EntryNumber: 2, Priority: 1},
	}

	anchors := resolve(cands)
	seen := make(map[int]bool)
	for _, a := range anchors {
		if seen[a.EntryNumber] {
			t.Fatalf("duplicate entry number %d in resolved anchors", a.EntryNumber)
		}
		seen[a.EntryNumber] = true
	}
	if len(anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(anchors))
	}
}
