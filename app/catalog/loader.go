package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Load reads and decodes the parsed feeds dump. A missing file or
// malformed document is fatal for the run; the caller decides how to exit.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	slog.Debug("Data file loaded", "path", path, "feeds", len(doc.Feeds))

	return &doc, nil
}
