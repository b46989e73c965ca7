package segment

import (
	"strings"
	"testing"

	"github.com/coolbeans/battex/pkg/profile"
)

func titleProfile(t *testing.T) *profile.Profile {
	t.Helper()
	return compileProfile(t, &profile.Profile{
		Name:         "title-test",
		EntryKeyword: "BAT",
		BoundaryPatterns: []profile.BoundaryPattern{
			{ID: "standard", Priority: 1, Regex: `(?m)^(\d+)\.\s*BAT\s+`},
		},
		TitleFallback: "BAT conclusion",
	})
}

func TestDeriveTitle(t *testing.T) {
	p := titleProfile(t)

	tests := []struct {
		name   string
		text   string
		number int
		want   string
	}{
		{
			name:   "strips numbered lead-in",
			text:   "3. BAT is to reduce channelled dust emissions by applying bag filters.",
			number: 3,
			want:   "reduce channelled dust emissions by applying bag filters.",
		},
		{
			name:   "strips keyword-number prefix",
			text:   "BAT 17: Use low-NOx burners in all combustion units.",
			number: 17,
			want:   "Use low-NOx burners in all combustion units.",
		},
		{
			name:   "skips short and numeric lines",
			text:   "7.\nshort\nMonitor emissions to air at least once per year using EN standards.",
			number: 7,
			want:   "Monitor emissions to air at least once per year using EN standards.",
		},
		{
			name:   "fallback when nothing suitable",
			text:   "42.\nn/a",
			number: 42,
			want:   "BAT conclusion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveTitle(tt.text, tt.number, p); got != tt.want {
				t.Errorf("deriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveTitleTruncates(t *testing.T) {
	p := titleProfile(t)

	text := "5. BAT is to " + strings.Repeat("apply techniques ", 30)
	title := deriveTitle(text, 5, p)
	if len(title) > profile.DefaultTitleMaxLength {
		t.Fatalf("title length %d exceeds display maximum %d", len(title), profile.DefaultTitleMaxLength)
	}
}
