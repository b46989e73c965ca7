package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProfileYAML = `name: lap-bref-en
language: en
entry_keyword: BAT
boundary_patterns:
  - id: standard
    priority: 1
    regex: '(?mi)^\s*(\d+)\.\s*BAT\s+is\s+to\s+'
  - id: alternative
    priority: 2
    regex: '(?mi)^\s*(\d+)\.\s*BAT\s+'
expected_minimum_entries: 10
section_terminators:
  - 'Annex\s+[A-Z]'
max_span_length: 15000
min_entry_length: 80
domain_signal_phrases:
  - bat is to
title_fallback: BAT conclusion
`

func writeProfileFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestNewRegistryHasBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"bref-en", "batc-nl"} {
		p, ok := r.Get(name)
		if !ok {
			t.Fatalf("builtin profile %q not registered", name)
		}
		if !p.IsCompiled() {
			t.Errorf("builtin profile %q not compiled", name)
		}
	}
	if r.Count() != len(Builtins()) {
		t.Errorf("Count() = %d, want %d", r.Count(), len(Builtins()))
	}
}

func TestRegistryLoadFile(t *testing.T) {
	r := NewRegistry()
	path := writeProfileFile(t, t.TempDir(), "lap-bref-en.yaml", sampleProfileYAML)

	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	p, ok := r.Get("lap-bref-en")
	if !ok {
		t.Fatal("loaded profile not found in registry")
	}
	if p.MaxSpanLength != 15000 {
		t.Errorf("MaxSpanLength = %d, want 15000", p.MaxSpanLength)
	}
	if len(p.BoundaryPatterns) != 2 || p.BoundaryPatterns[0].ID != "standard" {
		t.Errorf("unexpected boundary patterns: %+v", p.BoundaryPatterns)
	}
	if p.TitleFallback != "BAT conclusion" {
		t.Errorf("TitleFallback = %q, want from YAML", p.TitleFallback)
	}
}

func TestRegistryLoadFileRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "name: [unterminated"},
		{"fails validation", "name: broken\nentry_keyword: ''\n"},
		{"bad regex", "name: broken\nentry_keyword: X\nboundary_patterns:\n  - id: a\n    priority: 1\n    regex: '([unclosed'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfileFile(t, dir, "broken.yaml", tt.content)
			if err := r.LoadFile(path); err == nil {
				t.Fatal("expected load error")
			}
			if _, ok := r.Get("broken"); ok {
				t.Fatal("invalid profile must not be registered")
			}
		})
	}
}

func TestRegistryLoadDirectory(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()
	writeProfileFile(t, dir, "lap-bref-en.yaml", sampleProfileYAML)
	writeProfileFile(t, dir, "notes.txt", "not a profile")

	if err := r.LoadDirectory(dir); err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if _, ok := r.Get("lap-bref-en"); !ok {
		t.Error("profile from directory not registered")
	}
}

func TestRegistryLoadDirectoryMissingIsNotError(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDirectory(filepath.Join(t.TempDir(), "does-not-exist")); err != nil {
		t.Fatalf("missing directory should be ignored, got %v", err)
	}
}

func TestRegistryLoadDirectoryAggregatesErrors(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()
	writeProfileFile(t, dir, "good.yaml", sampleProfileYAML)
	writeProfileFile(t, dir, "bad.yaml", "name: [unterminated")

	err := r.LoadDirectory(dir)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected aggregated error naming bad.yaml, got %v", err)
	}
	// The good profile still loads despite the sibling failure.
	if _, ok := r.Get("lap-bref-en"); !ok {
		t.Error("valid profile should load even when a sibling fails")
	}
}

func TestRegistryRegisterOverrides(t *testing.T) {
	r := NewRegistry()

	override := &Profile{
		Name:         "bref-en",
		Language:     "en",
		EntryKeyword: "BAT",
		BoundaryPatterns: []BoundaryPattern{
			{ID: "custom", Priority: 1, Regex: `(?m)^(\d+)\.\s*BAT\s+`},
		},
	}
	if err := r.Register(override); err != nil {
		t.Fatalf("Register: %v", err)
	}

	p, _ := r.Get("bref-en")
	if len(p.BoundaryPatterns) != 1 || p.BoundaryPatterns[0].ID != "custom" {
		t.Error("registered profile should replace the builtin of the same name")
	}
	if err := r.Register(nil); err == nil {
		t.Error("nil profile must be rejected")
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	list := r.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted by name: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
