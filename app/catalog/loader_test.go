package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidDocument(t *testing.T) {
	tempDir := t.TempDir()

	content := `{
  "feeds": [
    {
      "id": "feed-1",
      "type": "publisher",
      "originalUrl": "https://wavlake.com/feed/artist/abc123",
      "title": "Artist X",
      "status": "active",
      "priority": "core",
      "parsedData": {
        "publisherInfo": {
          "title": "Artist X Publisher",
          "artist": "Artist X",
          "description": "All albums by Artist X"
        }
      }
    },
    {
      "id": "feed-2",
      "type": "album",
      "title": "Album One",
      "parsedData": {
        "album": {
          "artist": "Band Y",
          "publisher": {
            "medium": "publisher",
            "feedGuid": "xyz",
            "feedUrl": "https://wavlake.com/feed/artist/xyz"
          }
        }
      }
    }
  ]
}`

	path := filepath.Join(tempDir, "parsed-feeds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(doc.Feeds))
	}

	first := doc.Feeds[0]
	if first.Type != "publisher" {
		t.Errorf("Expected type 'publisher', got '%s'", first.Type)
	}
	if first.OriginalURL != "https://wavlake.com/feed/artist/abc123" {
		t.Errorf("Unexpected originalUrl: '%s'", first.OriginalURL)
	}
	if first.ParsedData.PublisherInfo == nil {
		t.Fatal("Expected publisherInfo to be present")
	}
	if first.ParsedData.PublisherInfo.Title != "Artist X Publisher" {
		t.Errorf("Unexpected publisherInfo title: '%s'", first.ParsedData.PublisherInfo.Title)
	}

	second := doc.Feeds[1]
	if second.ParsedData.Album == nil || second.ParsedData.Album.Publisher == nil {
		t.Fatal("Expected album publisher reference to be present")
	}
	if second.ParsedData.Album.Publisher.FeedGUID != "xyz" {
		t.Errorf("Unexpected album publisher feedGuid: '%s'", second.ParsedData.Album.Publisher.FeedGUID)
	}
	if second.ParsedData.Album.Artist != "Band Y" {
		t.Errorf("Unexpected album artist: '%s'", second.ParsedData.Album.Artist)
	}
}

func TestLoadAbsentFieldsDefaultToZeroValues(t *testing.T) {
	tempDir := t.TempDir()

	content := `{"feeds": [{"title": "Bare Record"}]}`

	path := filepath.Join(tempDir, "parsed-feeds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Feeds) != 1 {
		t.Fatalf("Expected 1 feed, got %d", len(doc.Feeds))
	}

	feed := doc.Feeds[0]
	if feed.Type != "" || feed.OriginalURL != "" || feed.Status != "" {
		t.Errorf("Expected absent fields to be empty, got type='%s' url='%s' status='%s'",
			feed.Type, feed.OriginalURL, feed.Status)
	}
	if feed.ParsedData.Album != nil {
		t.Error("Expected absent album to be nil")
	}
	if feed.ParsedData.PublisherInfo != nil {
		t.Error("Expected absent publisherInfo to be nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Error("Expected error for missing data file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "broken.json")
	if err := os.WriteFile(path, []byte(`{"feeds": [`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
