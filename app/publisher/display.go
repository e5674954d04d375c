package publisher

import (
	"cmp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const unknownPublisher = "Unknown Publisher"

// Mapper derives human-facing display names and URL slugs for resolved
// publisher records.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Run derives a display mapping for every record with a resolved GUID.
func (m *Mapper) Run(result *Result) map[string]Mapping {
	mappings := make(map[string]Mapping)

	for guid, record := range result.Records {
		if guid == "" {
			continue
		}

		displayName := m.resolveDisplayName(guid, record)

		mappings[guid] = Mapping{
			GUID:        guid,
			DisplayName: displayName,
			URLSlug:     Slugify(displayName),
			FeedURL:     record.FeedURL,
			Status:      record.Status,
		}
	}

	return mappings
}

// resolveDisplayName picks the best available name: publisherName, then
// title, then artist, falling back to URL heuristics when nothing usable
// survived reconciliation.
func (m *Mapper) resolveDisplayName(guid string, record Record) string {
	displayName := cmp.Or(record.PublisherName, record.Title, record.Artist)
	if displayName != "" && displayName != unknownPublisher {
		return displayName
	}

	url := record.FeedURL
	switch {
	case strings.Contains(url, "wavlake.com/feed/artist/"):
		return "Wavlake Artist " + shortGUID(guid)
	case strings.Contains(url, "bitpunk.fm"):
		return "BitPunk.fm"
	case strings.Contains(strings.ToLower(url), "doerfel"):
		return "The Doerfels"
	default:
		return "Publisher " + shortGUID(guid)
	}
}

func shortGUID(guid string) string {
	if len(guid) > 8 {
		return guid[:8]
	}
	return guid
}

// Slugify derives a URL-safe slug from a display name: diacritics folded,
// lowercased, spaces replaced with hyphens, parentheses and periods
// stripped. Slug uniqueness is not guaranteed.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	slug := strings.ToLower(folded)
	slug = strings.ReplaceAll(slug, " ", "-")

	return strings.NewReplacer("(", "", ")", "", ".", "").Replace(slug)
}
