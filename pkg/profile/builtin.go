package profile

// Builtin profiles for the two BAT conclusion families the extractor was
// developed against: English BREF documents from the EIPPCB and Dutch BAT
// conclusion (BATC) translations. Each call returns a fresh, uncompiled
// profile so callers may tweak fields before Compile.

// BREFEnglish returns the profile for English BREF documents, where BAT
// conclusions read "12. BAT is to ..." with a handful of variant phrasings.
func BREFEnglish() *Profile {
	return &Profile{
		Name:         "bref-en",
		Language:     "en",
		EntryKeyword: "BAT",
		BoundaryPatterns: []BoundaryPattern{
			{
				ID:       "standard",
				Priority: 1,
				Regex:    `(?mi)^\s*(\d+)\.\s*BAT\s+is\s+to\s+`,
			},
			{
				ID:       "alternative",
				Priority: 2,
				Regex:    `(?mi)^\s*(\d+)\.\s*BAT\s+`,
			},
			{
				// "18. BAT for steam systems is to ..." — the primary
				// pattern cannot catch qualified phrasings.
				ID:        "qualified",
				Priority:  3,
				Regex:     `(?mi)^\s*(\d+)\.\s*BAT\s+for\s+\w+.*?is\s+to\s+`,
				AlwaysRun: true,
			},
			{
				// Conditional conclusions open with "When" instead of "BAT".
				ID:        "conditional",
				Priority:  4,
				Regex:     `(?mi)^\s*(\d+)\.\s*When\s+`,
				AlwaysRun: true,
			},
		},
		ExpectedMinimumEntries: 25,
		SectionTerminators: []string{
			`Chapter\s+[6-9]`,
			`Annex\s+[A-Z]`,
			`References\s*$`,
			`Glossary\s*$`,
			`Bibliography`,
		},
		MaxSpanLength:  20000,
		MinEntryLength: 100,
		DomainSignalPhrases: []string{
			"bat is to",
			"best available technique",
			"in order to reduce",
			"applicability",
			"the technique",
		},
		FallbackKeywords: []string{
			"technique", "reduce", "control", "monitor", "apply",
			"emission", "limit",
		},
		TitleFallback: "BAT conclusion",
	}
}

// BATCDutch returns the profile for Dutch BAT conclusion documents, where
// entries read "BBT 4." or occasionally "4. BBT ...".
func BATCDutch() *Profile {
	return &Profile{
		Name:         "batc-nl",
		Language:     "nl",
		EntryKeyword: "BBT",
		BoundaryPatterns: []BoundaryPattern{
			{
				ID:       "standard",
				Priority: 1,
				Regex:    `(?mi)^\s*BBT\s+(\d+)`,
			},
			{
				ID:       "numbered",
				Priority: 2,
				Regex:    `(?mi)^\s*(\d+)\.\s*BBT\s+`,
			},
		},
		ExpectedMinimumEntries: 15,
		SectionTerminators: []string{
			`BIJLAGE\s+[IVX]+`,
			`Hoofdstuk\s+[5-9]`,
			`Referenties\s*$`,
			`Glossarium\s*$`,
			`Bibliografie\s*$`,
		},
		MaxSpanLength:  50000,
		MinEntryLength: 50,
		DomainSignalPhrases: []string{
			"de bbt is",
			"om de",
			"ter vermindering",
			"te voorkomen",
			"het toepassen",
		},
		FallbackKeywords: []string{
			"techniek", "verminderen", "beperken", "monitoren",
			"toepassen", "emissie",
		},
		TitleFallback: "BBT tekst",
	}
}

// Builtins returns all builtin profiles, uncompiled.
func Builtins() []*Profile {
	return []*Profile{BREFEnglish(), BATCDutch()}
}
