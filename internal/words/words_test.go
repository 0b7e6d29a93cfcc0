package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("keeps only valid words", func(t *testing.T) {
		path := writeList(t, "crane\nTOOLONG\n  SLATE \nab1de\nxyz\n\ntrace\n")
		list, err := Load(path, 5)
		require.NoError(t, err)
		assert.Equal(t, List{"crane", "slate", "trace"}, list)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 5)
		assert.Error(t, err)
	})
	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeList(t, ""), 5)
		assert.Error(t, err)
	})
	t.Run("no words of required length", func(t *testing.T) {
		_, err := Load(writeList(t, "sixsix\ntoolong\n"), 5)
		assert.Error(t, err)
	})
}

func TestEmbedded(t *testing.T) {
	list, err := Embedded(5)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, w := range list {
		assert.Len(t, w, 5)
	}
	// The default opener must be available out of the box.
	assert.True(t, list.Contains("soare"))

	_, err = Embedded(9)
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	l := List{"crane", "slate"}
	assert.True(t, l.Contains("crane"))
	assert.False(t, l.Contains("brace"))
}
