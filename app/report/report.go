package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/doerfelverse/publisher-comb/app/publisher"
)

// Writer prints the reconciliation result as a human-readable report.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Run prints the publisher detail blocks and summary count, followed by
// the display mapping section when mappings are provided. Output order is
// deterministic so repeated runs over the same input are byte-identical.
func (w *Writer) Run(result *publisher.Result, mappings map[string]publisher.Mapping) {
	w.writeRecords(result)

	if mappings != nil {
		w.writeMappings(mappings)
	}
}

func (w *Writer) writeRecords(result *publisher.Result) {
	fmt.Fprintf(w.out, "=== UNIQUE PUBLISHERS ===\n\n")

	records := make([]publisher.Record, 0, len(result.Records))
	for guid, record := range result.Records {
		// Skip records no rule could resolve
		if guid == "" {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Title != records[j].Title {
			return records[i].Title < records[j].Title
		}
		return records[i].FeedGUID < records[j].FeedGUID
	})

	for _, record := range records {
		fmt.Fprintf(w.out, "Feed GUID: %s\n", record.FeedGUID)
		fmt.Fprintf(w.out, "Feed URL: %s\n", record.FeedURL)
		fmt.Fprintf(w.out, "Title: %s\n", record.Title)
		fmt.Fprintf(w.out, "Publisher Name: %s\n", record.PublisherName)
		fmt.Fprintf(w.out, "Artist: %s\n", record.Artist)
		fmt.Fprintf(w.out, "Description: %s\n", record.Description)
		fmt.Fprintf(w.out, "Status: %s\n", record.Status)
		fmt.Fprintf(w.out, "Priority: %s\n", record.Priority)

		if ref, ok := result.References[record.FeedGUID]; ok {
			fmt.Fprintf(w.out, "Referenced in: %s\n", ref.ReferencedIn)
			fmt.Fprintf(w.out, "Artist context: %s\n", ref.ArtistContext)
		}

		fmt.Fprintln(w.out, strings.Repeat("-", 60))
	}

	fmt.Fprintf(w.out, "\nTotal unique publishers: %d\n", len(records))
}

func (w *Writer) writeMappings(mappings map[string]publisher.Mapping) {
	fmt.Fprintf(w.out, "\n=== HUMAN-READABLE URL MAPPINGS ===\n\n")

	sorted := make([]publisher.Mapping, 0, len(mappings))
	for _, mapping := range mappings {
		sorted = append(sorted, mapping)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DisplayName != sorted[j].DisplayName {
			return sorted[i].DisplayName < sorted[j].DisplayName
		}
		return sorted[i].GUID < sorted[j].GUID
	})

	for _, mapping := range sorted {
		fmt.Fprintf(w.out, "GUID: %s\n", mapping.GUID)
		fmt.Fprintf(w.out, "Display Name: %s\n", mapping.DisplayName)
		fmt.Fprintf(w.out, "URL Slug: %s\n", mapping.URLSlug)
		fmt.Fprintf(w.out, "Feed URL: %s\n", mapping.FeedURL)
		fmt.Fprintf(w.out, "Status: %s\n", mapping.Status)
		fmt.Fprintln(w.out, strings.Repeat("-", 40))
	}
}
