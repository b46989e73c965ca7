// Package profile provides declarative segmentation profiles for regulatory
// document types. A profile describes how numbered requirement entries are
// detected in one family of documents: the ordered boundary patterns, the
// phrases that terminate the enumerable section, and the thresholds used to
// validate extracted entries. Profiles are data, not code, so a new document
// family can be supported by a YAML file instead of a new parser.
package profile

import (
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/text/language"
)

// Defaults applied by Compile when the corresponding field is zero.
const (
	DefaultMaxSpanLength       = 20000
	DefaultMinEntryLength      = 100
	DefaultTerminatorLookahead = 50000
	DefaultExpectedMinimum     = 25
	DefaultTitleMaxLength      = 200
)

// BoundaryPattern is one entry-boundary detection rule. Patterns are applied
// in ascending Priority order (1 is the most specific). Capture group 1 must
// extract the entry number.
type BoundaryPattern struct {
	// ID identifies the pattern in provenance metadata on output records.
	ID string `yaml:"id" json:"id"`

	// Priority ranks the pattern; lower values run first and win ties.
	Priority int `yaml:"priority" json:"priority"`

	// Regex is the boundary rule. It should anchor to line starts with (?m)
	// and capture the entry number in group 1.
	Regex string `yaml:"regex" json:"regex"`

	// AlwaysRun forces the pattern to run even after higher-priority
	// patterns have already found the expected number of entries. Used for
	// entries phrased differently from the rest of the document.
	AlwaysRun bool `yaml:"always_run" json:"always_run"`

	compiled *regexp.Regexp
}

// Pattern returns the compiled regex. It is nil until the owning profile
// has been compiled.
func (b *BoundaryPattern) Pattern() *regexp.Regexp {
	return b.compiled
}

// Profile configures the segmentation engine for one document type.
type Profile struct {
	// Name identifies the profile (e.g. "bref-en").
	Name string `yaml:"name" json:"name"`

	// Language is a BCP-47 tag stored on output records ("en", "nl").
	Language string `yaml:"language" json:"language"`

	// EntryKeyword is the display prefix for entry identifiers
	// (e.g. "BAT" yields "BAT 12").
	EntryKeyword string `yaml:"entry_keyword" json:"entry_keyword"`

	// BoundaryPatterns is the ordered rule list for anchor detection.
	BoundaryPatterns []BoundaryPattern `yaml:"boundary_patterns" json:"boundary_patterns"`

	// ExpectedMinimumEntries governs when lower-priority patterns activate:
	// they run only while fewer distinct entry numbers have been found.
	ExpectedMinimumEntries int `yaml:"expected_minimum_entries" json:"expected_minimum_entries"`

	// SectionTerminators are regex fragments that, matched at a line start,
	// signal the end of the enumerable section (e.g. an annex heading).
	SectionTerminators []string `yaml:"section_terminators" json:"section_terminators"`

	// TerminatorLookahead bounds the forward scan for a section terminator
	// after the final anchor, in characters.
	TerminatorLookahead int `yaml:"terminator_lookahead" json:"terminator_lookahead"`

	// MaxSpanLength is the character ceiling for the final entry's span.
	MaxSpanLength int `yaml:"max_span_length" json:"max_span_length"`

	// MinEntryLength rejects normalized entries shorter than this.
	MinEntryLength int `yaml:"min_entry_length" json:"min_entry_length"`

	// DomainSignalPhrases confirm authentic entry language during
	// validation (lower-cased substring match).
	DomainSignalPhrases []string `yaml:"domain_signal_phrases" json:"domain_signal_phrases"`

	// FallbackKeywords drive the separate low-confidence keyword mode.
	FallbackKeywords []string `yaml:"fallback_keywords" json:"fallback_keywords"`

	// TitleFallback is used when no suitable title line is found.
	TitleFallback string `yaml:"title_fallback" json:"title_fallback"`

	tag                 language.Tag
	terminatorsCompiled []*regexp.Regexp
	compiled            bool
}

// Validate checks that the profile has all required fields. It does not
// compile patterns; call Compile for that.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.EntryKeyword == "" {
		return fmt.Errorf("profile %q: entry_keyword is required", p.Name)
	}
	if len(p.BoundaryPatterns) == 0 {
		return fmt.Errorf("profile %q: at least one boundary pattern is required", p.Name)
	}
	seen := make(map[string]bool, len(p.BoundaryPatterns))
	for i, bp := range p.BoundaryPatterns {
		if bp.ID == "" {
			return fmt.Errorf("profile %q: boundary pattern %d has no id", p.Name, i)
		}
		if seen[bp.ID] {
			return fmt.Errorf("profile %q: duplicate boundary pattern id %q", p.Name, bp.ID)
		}
		seen[bp.ID] = true
		if bp.Regex == "" {
			return fmt.Errorf("profile %q: boundary pattern %q has no regex", p.Name, bp.ID)
		}
	}
	return nil
}

// Compile validates the profile, compiles every regex, applies defaults,
// parses the language tag, and sorts boundary patterns by priority.
// A profile must be compiled before it is handed to the engine.
func (p *Profile) Compile() error {
	if err := p.Validate(); err != nil {
		return err
	}

	for i := range p.BoundaryPatterns {
		bp := &p.BoundaryPatterns[i]
		re, err := regexp.Compile(bp.Regex)
		if err != nil {
			return fmt.Errorf("profile %q: compiling boundary pattern %q: %w", p.Name, bp.ID, err)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("profile %q: boundary pattern %q has no capture group for the entry number", p.Name, bp.ID)
		}
		bp.compiled = re
	}
	sort.SliceStable(p.BoundaryPatterns, func(i, j int) bool {
		return p.BoundaryPatterns[i].Priority < p.BoundaryPatterns[j].Priority
	})

	p.terminatorsCompiled = p.terminatorsCompiled[:0]
	for _, t := range p.SectionTerminators {
		re, err := regexp.Compile(`(?mi)^\s*(?:` + t + `)`)
		if err != nil {
			return fmt.Errorf("profile %q: compiling section terminator %q: %w", p.Name, t, err)
		}
		p.terminatorsCompiled = append(p.terminatorsCompiled, re)
	}

	if p.MaxSpanLength <= 0 {
		p.MaxSpanLength = DefaultMaxSpanLength
	}
	if p.MinEntryLength <= 0 {
		p.MinEntryLength = DefaultMinEntryLength
	}
	if p.TerminatorLookahead <= 0 {
		p.TerminatorLookahead = DefaultTerminatorLookahead
	}
	if p.ExpectedMinimumEntries <= 0 {
		p.ExpectedMinimumEntries = DefaultExpectedMinimum
	}
	if p.TitleFallback == "" {
		p.TitleFallback = p.EntryKeyword + " entry"
	}

	tag, err := language.Parse(p.Language)
	if err != nil {
		tag = language.Und
	}
	p.tag = tag

	p.compiled = true
	return nil
}

// IsCompiled reports whether Compile has run successfully.
func (p *Profile) IsCompiled() bool {
	return p.compiled
}

// Tag returns the parsed language tag, language.Und if the profile's
// language string was empty or unparseable.
func (p *Profile) Tag() language.Tag {
	return p.tag
}

// Terminators returns the compiled section-terminator patterns.
func (p *Profile) Terminators() []*regexp.Regexp {
	return p.terminatorsCompiled
}
