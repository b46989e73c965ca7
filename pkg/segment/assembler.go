// Package segment turns ordered per-page regulatory text into numbered
// requirement records. The pipeline concatenates pages into one logical
// buffer with invisible page markers, locates entry anchors with a
// profile's ordered boundary patterns, slices the buffer into spans,
// normalizes and validates each span, and assembles the final record
// sequence sorted by entry number.
package segment

import (
	"fmt"
	"sort"
	"strings"
)

// Page is one page of already-extracted plain text. Numbers are 1-based
// and must be gap-free within the supplied range.
type Page struct {
	Number int
	Text   string
}

// pageMarker returns the boundary token inserted before a page's text.
// The token survives into raw spans and is stripped by normalization.
func pageMarker(page int) string {
	return fmt.Sprintf("\n[PAGE_%d]\n", page)
}

// PageMarkerTable maps logical-buffer offsets back to source page numbers.
// It is built once per document by Assemble and immutable thereafter.
type PageMarkerTable struct {
	offsets []int
	pages   []int
}

// PageFor returns the page number owning the given buffer offset: the page
// of the nearest marker at or before the offset, or the first page if the
// offset precedes all markers.
func (t *PageMarkerTable) PageFor(offset int) int {
	if len(t.offsets) == 0 {
		return 1
	}
	// First marker offset strictly greater than offset.
	i := sort.SearchInts(t.offsets, offset+1)
	if i == 0 {
		return t.pages[0]
	}
	return t.pages[i-1]
}

// Len returns the number of recorded markers.
func (t *PageMarkerTable) Len() int {
	return len(t.offsets)
}

// Assemble concatenates pages into one logical buffer, inserting a page
// marker before each page's text and recording the marker's offset. Page
// content is passed through untouched; cleanup happens later in
// normalization.
func Assemble(pages []Page) (string, *PageMarkerTable) {
	var buf strings.Builder
	table := &PageMarkerTable{
		offsets: make([]int, 0, len(pages)),
		pages:   make([]int, 0, len(pages)),
	}

	for _, p := range pages {
		table.offsets = append(table.offsets, buf.Len())
		table.pages = append(table.pages, p.Number)
		buf.WriteString(pageMarker(p.Number))
		buf.WriteString(p.Text)
	}

	return buf.String(), table
}
