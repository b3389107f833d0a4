package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_MissingFile(t *testing.T) {
	_, err := Describe(filepath.Join(t.TempDir(), "nope.mp3"))
	assert.Error(t, err)
}

func TestDescribe_UnrecognizedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no tags"), 0o644))

	_, err := Describe(path)
	assert.Error(t, err)
}
