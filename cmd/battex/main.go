package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/coolbeans/battex/pkg/batch"
	"github.com/coolbeans/battex/pkg/profile"
	"github.com/coolbeans/battex/pkg/segment"
)

var version = "0.1.0"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "battex",
		Short: "Requirement-entry extractor for regulatory documents",
		Long: `Battex segments long regulatory documents (per-page text extracted
from PDFs) into numbered requirement records such as BAT conclusions.

Each record carries the entry's clean full text, a derived title, the
source page it came from, and provenance metadata describing which
boundary pattern produced it.`,
		Version: version,
	}

	rootCmd.AddCommand(segmentCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(profilesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func segmentCmd() *cobra.Command {
	var (
		profileName string
		profilesDir string
		outPath     string
		firstPage   int
		useFallback bool
	)

	cmd := &cobra.Command{
		Use:   "segment <document>",
		Short: "Segment one document into requirement records",
		Long: `Segment reads a document's extracted text and emits one record per
numbered entry. The document is either a directory of per-page .txt
files (sorted by name) or a single text file with form-feed page
separators, as produced by pdftotext.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := lookupProfile(profileName, profilesDir)
			if err != nil {
				return err
			}

			pages, err := loadPages(args[0], firstPage)
			if err != nil {
				return err
			}

			eng, err := segment.New(prof)
			if err != nil {
				return err
			}

			result, err := eng.Run(pages)
			if err != nil {
				return err
			}

			if len(result.Records) == 0 && useFallback {
				fmt.Println(warnStyle.Render("no anchors found, running low-confidence keyword mode"))
				result, err = eng.RunFallback(pages)
				if err != nil {
					return err
				}
			}

			if outPath != "" {
				if err := writeJSON(outPath, result); err != nil {
					return err
				}
			}

			printSummary(args[0], result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "bref-en", "segmentation profile name")
	cmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "directory of additional profile YAML files")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write records and summary as JSON to this file")
	cmd.Flags().IntVar(&firstPage, "first-page", 1, "page number of the first supplied page")
	cmd.Flags().BoolVar(&useFallback, "fallback", false, "run the low-confidence keyword mode when no anchors are found")

	return cmd
}

func batchCmd() *cobra.Command {
	var (
		profileName string
		profilesDir string
		outDir      string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "batch <document>...",
		Short: "Segment several documents concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := lookupProfile(profileName, profilesDir)
			if err != nil {
				return err
			}

			docs := make([]batch.Document, 0, len(args))
			for _, path := range args {
				pages, err := loadPages(path, 1)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				docs = append(docs, batch.Document{
					Name:    docName(path),
					Pages:   pages,
					Profile: prof,
				})
			}

			results, totals, err := batch.Run(context.Background(), docs, workers)
			if err != nil {
				return err
			}
			batch.SortByName(results)

			fmt.Println(headerStyle.Render("Batch segmentation"))
			for _, r := range results {
				if r.Err != nil {
					fmt.Printf("  %s: %s\n", r.Name, errStyle.Render(r.Err.Error()))
					continue
				}
				fmt.Printf("  %s: %d records, pages %d-%d\n",
					r.Name, r.Run.Summary.Records, r.Run.Summary.MinPage, r.Run.Summary.MaxPage)
				if outDir != "" {
					out := filepath.Join(outDir, r.Name+".json")
					if err := writeJSON(out, r.Run); err != nil {
						return err
					}
				}
			}
			fmt.Printf("%s %d/%d documents, %d records\n",
				labelStyle.Render("total:"), totals.Succeeded, totals.Documents, totals.Records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "bref-en", "segmentation profile name")
	cmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "directory of additional profile YAML files")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write per-document JSON results into this directory")
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultWorkers, "maximum concurrent documents")

	return cmd
}

func profilesCmd() *cobra.Command {
	var profilesDir string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available segmentation profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := profile.NewRegistry()
			if profilesDir != "" {
				if err := reg.LoadDirectory(profilesDir); err != nil {
					return err
				}
			}

			fmt.Println(headerStyle.Render("Profiles"))
			for _, p := range reg.List() {
				fmt.Printf("  %-10s %s, keyword %q, %d boundary patterns\n",
					p.Name, p.Tag(), p.EntryKeyword, len(p.BoundaryPatterns))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "directory of additional profile YAML files")
	return cmd
}

// lookupProfile resolves a profile by name from the builtins plus an
// optional profile directory.
func lookupProfile(name, dir string) (*profile.Profile, error) {
	reg := profile.NewRegistry()
	if dir != "" {
		if err := reg.LoadDirectory(dir); err != nil {
			return nil, err
		}
	}

	prof, ok := reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (run 'battex profiles' to list)", name)
	}
	return prof, nil
}

// loadPages reads a document's page texts: a directory of per-page .txt
// files sorted by name, or one text file with form-feed page separators.
func loadPages(path string, firstPage int) ([]segment.Page, error) {
	if firstPage < 1 {
		firstPage = 1
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		var pages []segment.Page
		for i, text := range strings.Split(string(data), "\f") {
			pages = append(pages, segment.Page{Number: firstPage + i, Text: text})
		}
		return pages, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading document directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no .txt page files found")
	}
	sort.Strings(names)

	pages := make([]segment.Page, 0, len(names))
	for i, name := range names {
		data, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return nil, fmt.Errorf("reading page %s: %w", name, err)
		}
		pages = append(pages, segment.Page{Number: firstPage + i, Text: string(data)})
	}
	return pages, nil
}

func docName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printSummary(name string, result *segment.Result) {
	s := result.Summary

	fmt.Println(headerStyle.Render(fmt.Sprintf("Segmented %s (profile %s)", docName(name), s.Profile)))
	fmt.Printf("  %s %d\n", labelStyle.Render("records:"), s.Records)
	fmt.Printf("  %s %d\n", labelStyle.Render("characters:"), s.TotalCharacters)
	if s.Records > 0 {
		fmt.Printf("  %s %d-%d\n", labelStyle.Render("pages:"), s.MinPage, s.MaxPage)
	}
	if s.Rejected > 0 {
		fmt.Printf("  %s %d\n", labelStyle.Render("rejected:"), s.Rejected)
	}
	if s.Truncated {
		fmt.Println(warnStyle.Render("  final entry truncated at the span ceiling"))
	}
	if s.FallbackUsed {
		fmt.Println(warnStyle.Render("  records come from the low-confidence keyword mode"))
	}

	for _, r := range result.Records {
		title := r.Title
		if len(title) > 70 {
			title = title[:70] + "..."
		}
		fmt.Printf("  %-8s p.%-4d %s\n", r.EntryID, r.SourcePage, title)
	}
}
