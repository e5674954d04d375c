package publisher

// Record is a deduplicated publisher entry keyed by feed GUID. The GUID is
// empty when no resolution rule matched; such records are kept internally
// but excluded from counts and mappings.
type Record struct {
	FeedGUID      string
	FeedURL       string
	Title         string
	ID            string
	PublisherName string
	Artist        string
	Description   string
	Status        string
	Priority      string
}

// Reference records where a synthesized publisher was discovered: the
// title of the referencing feed and the album artist context.
type Reference struct {
	ReferencedIn  string
	ArtistContext string
}

// Mapping is the human-facing view of a resolved publisher.
type Mapping struct {
	GUID        string
	DisplayName string
	URLSlug     string
	FeedURL     string
	Status      string
}

// Result holds the merged output of the primary and reference scans.
type Result struct {
	Records    map[string]Record
	References map[string]Reference
}

// ValidCount returns the number of records with a resolved GUID.
func (r *Result) ValidCount() int {
	count := 0
	for guid := range r.Records {
		if guid != "" {
			count++
		}
	}
	return count
}
