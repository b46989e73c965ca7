package segment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coolbeans/battex/pkg/profile"
)

// Record is one extracted requirement entry, immutable after creation.
type Record struct {
	EntryNumber       int      `json:"entry_number"`
	EntryID           string   `json:"entry_id"`
	Title             string   `json:"title"`
	FullText          string   `json:"full_text"`
	TextLength        int      `json:"text_length"`
	SourcePage        int      `json:"page"`
	ExtractionMethod  string   `json:"extraction_method"`
	StartOffset       int      `json:"start_offset"`
	EndOffset         int      `json:"end_offset"`
	Language          string   `json:"language"`
	HasTables         bool     `json:"has_tables"`
	TableCount        int      `json:"table_count"`
	SectionReferences []string `json:"section_references,omitempty"`
}

// Summary describes one document run for logging and caller-side review.
// Callers compare Records against the profile's expected minimum to decide
// whether reconfiguration or manual review is warranted.
type Summary struct {
	Profile         string `json:"profile"`
	Records         int    `json:"records"`
	TotalCharacters int    `json:"total_characters"`
	MinPage         int    `json:"min_page"`
	MaxPage         int    `json:"max_page"`
	Rejected        int    `json:"rejected"`
	Truncated       bool   `json:"truncated"`
	FallbackUsed    bool   `json:"fallback_used"`
}

// Result is the engine's sole output for one document.
type Result struct {
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`
}

// Engine runs the segmentation pipeline for one document type. It holds no
// per-document state: each Run owns its own buffer and marker table, so one
// engine may serve concurrent runs over different documents.
type Engine struct {
	prof *profile.Profile
}

// New creates an engine for the given profile, compiling it if needed.
// An unusable profile is a ConfigError.
func New(p *profile.Profile) (*Engine, error) {
	if p == nil {
		return nil, &ConfigError{Reason: "profile is nil"}
	}
	if !p.IsCompiled() {
		if err := p.Compile(); err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("profile %q", p.Name), Err: err}
		}
	}
	return &Engine{prof: p}, nil
}

// Profile returns the engine's profile.
func (e *Engine) Profile() *profile.Profile {
	return e.prof
}

// Run segments one document. The pages must be an ordered, gap-free,
// 1-based sequence for the caller-chosen page range; an empty or blank
// sequence is an InputError. Zero located anchors is not an error: the
// result carries no records and the summary explains the zero counts.
func (e *Engine) Run(pages []Page) (*Result, error) {
	if len(pages) == 0 {
		return nil, &InputError{Reason: "no pages supplied"}
	}
	blank := true
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, &InputError{Reason: "all pages are empty"}
	}

	buf, table := Assemble(pages)
	anchors := resolve(locate(buf, e.prof))
	spans, truncated := extractSpans(anchors, buf, e.prof)

	result := &Result{
		Records: make([]Record, 0, len(spans)),
		Summary: Summary{Profile: e.prof.Name, Truncated: truncated},
	}

	seen := make(map[int]bool, len(spans))
	for _, s := range spans {
		if seen[s.EntryNumber] {
			continue
		}

		text := Normalize(buf[s.Start:s.End])
		if len(text) > e.prof.MaxSpanLength {
			text = text[:e.prof.MaxSpanLength]
			result.Summary.Truncated = true
		}
		if !validEntry(text, s.EntryNumber, e.prof) {
			result.Summary.Rejected++
			continue
		}

		hasTables, tableCount := detectTables(text)
		result.Records = append(result.Records, Record{
			EntryNumber:       s.EntryNumber,
			EntryID:           fmt.Sprintf("%s %d", e.prof.EntryKeyword, s.EntryNumber),
			Title:             deriveTitle(text, s.EntryNumber, e.prof),
			FullText:          text,
			TextLength:        len(text),
			SourcePage:        table.PageFor(s.Start),
			ExtractionMethod:  s.PatternID,
			StartOffset:       s.Start,
			EndOffset:         s.End,
			Language:          e.prof.Tag().String(),
			HasTables:         hasTables,
			TableCount:        tableCount,
			SectionReferences: sectionReferences(text),
		})
		seen[s.EntryNumber] = true
	}

	sort.Slice(result.Records, func(i, j int) bool {
		return result.Records[i].EntryNumber < result.Records[j].EntryNumber
	})
	e.summarize(result)

	return result, nil
}

func (e *Engine) summarize(result *Result) {
	s := &result.Summary
	s.Records = len(result.Records)
	for i, r := range result.Records {
		s.TotalCharacters += r.TextLength
		if i == 0 || r.SourcePage < s.MinPage {
			s.MinPage = r.SourcePage
		}
		if r.SourcePage > s.MaxPage {
			s.MaxPage = r.SourcePage
		}
	}
}
