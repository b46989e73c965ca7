package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackMethod is the extraction method recorded on records produced by
// the keyword mode, so callers can always tell them apart from records
// produced by the anchor pipeline.
const FallbackMethod = "fallback-keyword"

// fallbackMaxRecords caps the keyword mode's output; without structural
// anchors the mode would otherwise flood the caller with body sentences.
const fallbackMaxRecords = 20

// fallbackMinSentence is the minimum sentence length considered.
const fallbackMinSentence = 50

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// RunFallback is a separate, low-confidence extraction mode for documents
// where the anchor pipeline found nothing: every sentence containing one of
// the profile's fallback keywords becomes a record, numbered in encounter
// order. Its precision is far below the anchor pipeline's, so it never runs
// implicitly; callers opt in after inspecting an empty primary result.
func (e *Engine) RunFallback(pages []Page) (*Result, error) {
	if len(pages) == 0 {
		return nil, &InputError{Reason: "no pages supplied"}
	}
	keywords := e.prof.FallbackKeywords
	if len(keywords) == 0 {
		keywords = e.prof.DomainSignalPhrases
	}
	if len(keywords) == 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("profile %q has no fallback keywords", e.prof.Name)}
	}

	result := &Result{
		Summary: Summary{Profile: e.prof.Name, FallbackUsed: true},
	}

	count := 0
	for _, page := range pages {
		for _, sentence := range sentenceSplitPattern.Split(page.Text, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) < fallbackMinSentence || !containsAny(sentence, keywords) {
				continue
			}

			count++
			title := sentence
			if len(title) > 100 {
				title = title[:100] + "..."
			}
			result.Records = append(result.Records, Record{
				EntryNumber:      count,
				EntryID:          fmt.Sprintf("%s guidance %d", e.prof.EntryKeyword, count),
				Title:            title,
				FullText:         sentence,
				TextLength:       len(sentence),
				SourcePage:       page.Number,
				ExtractionMethod: FallbackMethod,
				Language:         e.prof.Tag().String(),
			})

			if count >= fallbackMaxRecords {
				e.summarize(result)
				return result, nil
			}
		}
	}

	e.summarize(result)
	return result, nil
}

func containsAny(sentence string, keywords []string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
