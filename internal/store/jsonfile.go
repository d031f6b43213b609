package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// loadJSON reads and parses a whole collection file. A missing file or
// unparseable content yields the supplied default instead of an error;
// the store favors starting empty over refusing to start.
func loadJSON[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("⚠️ Could not parse %s, falling back to defaults: %v", path, err)
		return def
	}
	return v
}

// saveJSON serializes a whole collection to its file, overwriting any
// previous contents. Human-readable formatting, no atomic rename.
func saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
