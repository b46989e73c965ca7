// Package batch runs the segmentation engine over many documents at once.
// Each document gets its own pipeline run with no shared mutable state, so
// the only coordination needed is a concurrency bound.
package batch

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/coolbeans/battex/pkg/profile"
	"github.com/coolbeans/battex/pkg/segment"
)

// Document is one unit of batch work: a named page sequence and the
// profile to segment it with.
type Document struct {
	Name    string
	Pages   []segment.Page
	Profile *profile.Profile
}

// Result pairs a document with its run outcome. Err is set for fatal
// input/configuration errors on that document only; other documents in the
// batch are unaffected.
type Result struct {
	Name string
	Run  *segment.Result
	Err  error
}

// Totals aggregates a batch for reporting.
type Totals struct {
	Documents int
	Succeeded int
	Failed    int
	Records   int
}

// DefaultWorkers bounds batch concurrency when the caller passes zero.
const DefaultWorkers = 4

// Run segments every document, at most workers at a time. Per-document
// failures are recorded, not fatal to the batch; Run returns early only if
// the context is cancelled. Results come back in input order.
func Run(ctx context.Context, docs []Document, workers int) ([]Result, Totals, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := Result{Name: doc.Name}
			eng, err := segment.New(doc.Profile)
			if err != nil {
				res.Err = err
			} else {
				res.Run, res.Err = eng.Run(doc.Pages)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Totals{}, err
	}

	totals := Totals{Documents: len(docs)}
	for _, r := range results {
		if r.Err != nil {
			totals.Failed++
			continue
		}
		totals.Succeeded++
		totals.Records += len(r.Run.Records)
	}
	return results, totals, nil
}

// SortByName orders results alphabetically, for stable report output when
// the input order is not meaningful.
func SortByName(results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
}
