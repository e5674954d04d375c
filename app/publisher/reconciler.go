package publisher

import (
	"fmt"
	"log/slog"

	"github.com/doerfelverse/publisher-comb/app/catalog"
)

const (
	// TypePublisher marks a feed record as a direct publisher entry.
	TypePublisher = "publisher"
	// MediumPublisher marks an album back-reference as pointing at a publisher feed.
	MediumPublisher = "publisher"

	// Defaults for records synthesized from album back-references.
	StatusReferenced = "referenced"
	PriorityUnknown  = "unknown"
)

// Reconciler builds the deduplicated publisher map from the feed dump: a
// primary scan over direct publisher records followed by a reference scan
// that fills gaps from album back-references.
type Reconciler struct {
	ruleset *Ruleset
}

func NewReconciler(ruleset *Ruleset) *Reconciler {
	return &Reconciler{ruleset: ruleset}
}

func (r *Reconciler) Run(feeds []catalog.Feed) *Result {
	result := &Result{
		Records:    make(map[string]Record),
		References: make(map[string]Reference),
	}

	r.scanPrimary(feeds, result)
	r.scanReferences(feeds, result)

	slog.Debug("Reconciliation completed",
		"records", result.ValidCount(),
		"synthesized", len(result.References))

	return result
}

func (r *Reconciler) scanPrimary(feeds []catalog.Feed, result *Result) {
	for _, feed := range feeds {
		if feed.Type != TypePublisher {
			continue
		}

		guid := r.ruleset.Resolve(feed.OriginalURL)
		if guid == "" {
			slog.Debug("No GUID rule matched publisher feed", "url", feed.OriginalURL, "title", feed.Title)
		}

		record := Record{
			FeedGUID: guid,
			FeedURL:  feed.OriginalURL,
			Title:    feed.Title,
			ID:       feed.ID,
			Status:   feed.Status,
			Priority: feed.Priority,
		}

		if info := feed.ParsedData.PublisherInfo; info != nil {
			record.PublisherName = info.Title
			record.Artist = info.Artist
			record.Description = info.Description
		}

		// Last write wins within the primary scan; each physical feed
		// record yields one GUID.
		result.Records[guid] = record
	}
}

func (r *Reconciler) scanReferences(feeds []catalog.Feed, result *Result) {
	for _, feed := range feeds {
		album := feed.ParsedData.Album
		if album == nil || album.Publisher == nil {
			continue
		}
		if album.Publisher.Medium != MediumPublisher {
			continue
		}

		guid := album.Publisher.FeedGUID
		if guid == "" {
			continue
		}
		// Never overwrite an entry found by the primary scan.
		if _, ok := result.Records[guid]; ok {
			continue
		}

		title := "Unknown Publisher"
		if album.Artist != "" {
			title = fmt.Sprintf("Unknown Publisher (%s)", album.Artist)
		}

		result.Records[guid] = Record{
			FeedGUID: guid,
			FeedURL:  album.Publisher.FeedURL,
			Title:    title,
			ID:       "publisher-" + guid,
			Status:   StatusReferenced,
			Priority: PriorityUnknown,
		}
		result.References[guid] = Reference{
			ReferencedIn:  feed.Title,
			ArtistContext: album.Artist,
		}
	}
}
