package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateTransactionID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// 100 draws from a 32-bit space should not collide
	assert.Len(t, seen, 100)
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":             "photo.png",
		"my photo.png":          "my_photo.png",
		"../../etc/passwd":      "passwd",
		`..\..\windows\sys.png`: "sys.png",
		".hidden.png":           "hidden.png",
		"café résumé.jpg":       "caf_rsum.jpg",
		"...":                   "file",
	}
	for input, want := range cases {
		assert.Equal(t, want, SecureFilename(input), "input %q", input)
	}
}

func TestTimestampPrefix(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "20240615_093045_", TimestampPrefix(ts))
}
