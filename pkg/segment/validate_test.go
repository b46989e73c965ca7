package segment

import (
	"strings"
	"testing"

	"github.com/coolbeans/battex/pkg/profile"
)

func validateProfile(t *testing.T) *profile.Profile {
	t.Helper()
	return compileProfile(t, &profile.Profile{
		Name:         "validate-test",
		EntryKeyword: "BBT",
		BoundaryPatterns: []profile.BoundaryPattern{
			{ID: "standard", Priority: 1, Regex: `(?m)^BBT\s+(\d+)`},
		},
		MinEntryLength:      50,
		DomainSignalPhrases: []string{"de bbt is", "ter vermindering", "het toepassen"},
	})
}

func TestValidEntry(t *testing.T) {
	p := validateProfile(t)

	tests := []struct {
		name   string
		text   string
		number int
		want   bool
	}{
		{
			name:   "genuine entry with keyword and number",
			text:   "BBT 4. De BBT is het toepassen van een monitoringprogramma voor emissies naar water.",
			number: 4,
			want:   true,
		},
		{
			name:   "fragment too short",
			text:   "BBT 4. Te kort.",
			number: 4,
			want:   false,
		},
		{
			name:   "lowercase start means mid-sentence fragment",
			text:   "continuing from above without a number, this text was matched inside body prose somewhere.",
			number: 2,
			want:   false,
		},
		{
			name:   "lettered continuation marker is legitimate",
			text:   "c) het toepassen van gesloten systemen voor de opslag van afvalwater en reststoffen.",
			number: 3,
			want:   true,
		},
		{
			name:   "signal phrase accepted without keyword in head",
			text:   "Maatregelen ter vermindering van emissies naar lucht worden hier nader beschreven en toegelicht.",
			number: 9,
			want:   true,
		},
		{
			name:   "no keyword and no signal phrase",
			text:   "Dit is een willekeurige alinea over iets anders, zonder herkenbare kenmerken van een techniek.",
			number: 9,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validEntry(tt.text, tt.number, p); got != tt.want {
				t.Errorf("validEntry(%q, %d) = %v, want %v", tt.text, tt.number, got, tt.want)
			}
		})
	}
}

func TestValidEntryNumberPrefixAccepted(t *testing.T) {
	p := compileProfile(t, &profile.Profile{
		Name:         "prefix",
		EntryKeyword: "BAT",
		BoundaryPatterns: []profile.BoundaryPattern{
			{ID: "standard", Priority: 1, Regex: `(?m)^(\d+)\.\s*BAT\s+`},
		},
		MinEntryLength: 40,
	})

	text := "12. BAT is to apply one or a combination of the techniques given below."
	if !validEntry(text, 12, p) {
		t.Fatal("entry opening with its own number must be accepted")
	}
	if validEntry(text, 13, p) {
		t.Fatal("entry number mismatch without signal phrases must be rejected")
	}
}

func TestValidEntryLongFragmentStillRejected(t *testing.T) {
	p := validateProfile(t)

	// Length alone cannot rescue a span that starts mid-sentence.
	text := "waarbij de installatie " + strings.Repeat("verder wordt beschreven ", 10)
	if validEntry(text, 1, p) {
		t.Fatal("mid-sentence fragment must be rejected regardless of length")
	}
}
