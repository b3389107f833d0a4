// Package media reads display metadata from audio files.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Describe returns a human-readable "artist - title" label for the audio
// file at path. Files without usable tags fall back to the file name; an
// unreadable or unrecognized file is an error.
func Describe(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", fmt.Errorf("read tags from %s: %w", path, err)
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = filepath.Base(path)
	}
	artist := strings.TrimSpace(m.Artist())
	if artist == "" {
		return title, nil
	}
	return artist + " - " + title, nil
}
