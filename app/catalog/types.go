package catalog

// Document is the top-level shape of the parsed feeds dump.
type Document struct {
	Feeds []Feed `json:"feeds"`
}

// Feed mirrors one semi-structured record from the dump. Any field may be
// absent in the source document and decodes to its zero value.
type Feed struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	OriginalURL string     `json:"originalUrl"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ParsedData  ParsedData `json:"parsedData"`
}

type ParsedData struct {
	Album         *Album         `json:"album"`
	PublisherInfo *PublisherInfo `json:"publisherInfo"`
}

type Album struct {
	Artist    string          `json:"artist"`
	Publisher *AlbumPublisher `json:"publisher"`
}

// AlbumPublisher is a publisher back-reference embedded in album metadata.
type AlbumPublisher struct {
	Medium   string `json:"medium"`
	FeedGUID string `json:"feedGuid"`
	FeedURL  string `json:"feedUrl"`
}

type PublisherInfo struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
}
