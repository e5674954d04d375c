package publisher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmcdole/gofeed"
)

// Enricher fills gaps in reconciled records from locally cached publisher
// feed XML files. Feeds are matched by their <podcast:guid> channel tag.
// No network access is involved.
type Enricher struct {
	cacheDir string
	parser   *gofeed.Parser
}

func NewEnricher(cacheDir string) *Enricher {
	return &Enricher{
		cacheDir: cacheDir,
		parser:   gofeed.NewParser(),
	}
}

type channelMeta struct {
	title       string
	author      string
	description string
}

// Run parses every cached feed and fills empty publisherName, artist and
// description fields on matching records. Existing values are never
// overwritten; unparseable files are skipped.
func (e *Enricher) Run(result *Result) error {
	if _, err := os.Stat(e.cacheDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(e.cacheDir, "*.xml"))
	if err != nil {
		return fmt.Errorf("failed to find cached feeds: %w", err)
	}

	enriched := 0
	for _, file := range files {
		guid, meta, err := e.parseCachedFeed(file)
		if err != nil {
			slog.Warn("Skipping unparseable cached feed", "file", file, "error", err)
			continue
		}
		if guid == "" {
			slog.Debug("Cached feed has no podcast:guid, skipping", "file", file)
			continue
		}

		record, ok := result.Records[guid]
		if !ok {
			continue
		}

		if record.PublisherName == "" {
			record.PublisherName = meta.title
		}
		if record.Artist == "" {
			record.Artist = meta.author
		}
		if record.Description == "" {
			record.Description = meta.description
		}

		result.Records[guid] = record
		enriched++
	}

	if enriched > 0 {
		slog.Info("Records enriched from feed cache", "dir", e.cacheDir, "enriched", enriched)
	}

	return nil
}

func (e *Enricher) parseCachedFeed(path string) (string, channelMeta, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", channelMeta{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	feed, err := e.parser.Parse(file)
	if err != nil {
		return "", channelMeta{}, fmt.Errorf("failed to parse feed: %w", err)
	}

	meta := channelMeta{
		title:       feed.Title,
		description: feed.Description,
	}
	if feed.ITunesExt != nil {
		meta.author = feed.ITunesExt.Author
	}

	return podcastGUID(feed), meta, nil
}

func podcastGUID(feed *gofeed.Feed) string {
	namespace, ok := feed.Extensions["podcast"]
	if !ok {
		return ""
	}
	for _, entry := range namespace["guid"] {
		if entry.Value != "" {
			return entry.Value
		}
	}
	return ""
}
