package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// GenerateTransactionID returns an 8-character uppercase transaction id
func GenerateTransactionID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// SecureFilename strips path components and unsafe characters from an
// uploaded filename so it can be stored on the local filesystem
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "file"
	}
	return name
}

// TimestampPrefix formats the prefix prepended to uploaded filenames to
// avoid collisions between uploads with the same name
func TimestampPrefix(t time.Time) string {
	return t.Format("20060102_150405_")
}
