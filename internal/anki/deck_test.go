package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractFile(t *testing.T, r *zip.ReadCloser, name, dest string) {
	t.Helper()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()

		out, err := os.Create(dest)
		require.NoError(t, err)
		defer out.Close()

		_, err = io.Copy(out, rc)
		require.NoError(t, err)
		return
	}
	t.Fatalf("%s not found in package", name)
}

func TestWriteFile(t *testing.T) {
	deck := NewDeck("Test Vocabulary")
	deck.Add(Note{Simplified: "家具", Traditional: "傢俱", Pinyin: "jiā jù", Definitions: "furniture"})
	deck.Add(Note{Simplified: "沙发", Traditional: "沙發", Pinyin: "shā fā", Definitions: "sofa; settee"})
	require.Equal(t, 2, deck.Len())

	out := filepath.Join(t.TempDir(), "test.apkg")
	require.NoError(t, deck.WriteFile(out))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}
	assert.True(t, names["collection.anki2"], "package holds the collection database")
	assert.True(t, names["media"], "package holds the media manifest")

	dbPath := filepath.Join(t.TempDir(), "collection.anki2")
	extractFile(t, r, "collection.anki2", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var notes int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM notes").Scan(&notes))
	assert.Equal(t, 2, notes)

	var cards int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM cards").Scan(&cards))
	assert.Equal(t, 2, cards)

	var flds string
	require.NoError(t, db.QueryRow("SELECT flds FROM notes WHERE sfld = '家具'").Scan(&flds))
	fields := strings.Split(flds, "\x1f")
	require.Len(t, fields, len(NoteFields))
	assert.Equal(t, "傢俱", fields[1])
	assert.Equal(t, "jiā jù", fields[2])
	assert.Equal(t, "furniture", fields[3])

	var models, decks string
	require.NoError(t, db.QueryRow("SELECT models, decks FROM col").Scan(&models, &decks))
	assert.Contains(t, models, "Cidian Vocabulary")
	assert.Contains(t, decks, "Test Vocabulary")
}

func TestNoteGUIDStable(t *testing.T) {
	flds := "家具\x1f傢俱\x1fjiā jù\x1ffurniture"
	assert.Equal(t, noteGUID(flds), noteGUID(flds))
	assert.NotEqual(t, noteGUID(flds), noteGUID(flds+"x"))
	assert.Len(t, noteGUID(flds), 10)
}
