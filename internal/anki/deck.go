// Package anki exports dictionary entries as Anki .apkg decks.
package anki

import (
	"archive/zip"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// NoteFields are the fields of the vocabulary note type, in order.
var NoteFields = []string{"Simplified", "Traditional", "Pinyin", "Definitions"}

// Note holds the field values for one vocabulary card.
type Note struct {
	Simplified  string
	Traditional string
	Pinyin      string // tone-marked display form
	Definitions string // glosses joined with "; "
}

func (n Note) fields() []string {
	return []string{n.Simplified, n.Traditional, n.Pinyin, n.Definitions}
}

// Deck accumulates notes for export to a .apkg file.
type Deck struct {
	Name  string
	notes []Note
}

// NewDeck creates an empty deck.
func NewDeck(name string) *Deck {
	return &Deck{Name: name}
}

// Add appends a note to the deck.
func (d *Deck) Add(n Note) {
	d.notes = append(d.notes, n)
}

// Len returns the number of notes in the deck.
func (d *Deck) Len() int {
	return len(d.notes)
}

// WriteFile writes the deck as an Anki .apkg package: a zip archive holding
// a collection.anki2 SQLite database and a media manifest.
func (d *Deck) WriteFile(path string) error {
	tempDir, err := os.MkdirTemp("", "cidian-apkg-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := d.writeCollection(filepath.Join(tempDir, "collection.anki2")); err != nil {
		return err
	}

	// Empty media manifest; the deck carries no audio or images.
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}

	return zipDir(tempDir, path)
}

const collectionSchema = `
CREATE TABLE col (
    id integer PRIMARY KEY,
    crt integer NOT NULL,
    mod integer NOT NULL,
    scm integer NOT NULL,
    ver integer NOT NULL,
    dty integer NOT NULL,
    usn integer NOT NULL,
    ls integer NOT NULL,
    conf text NOT NULL,
    models text NOT NULL,
    decks text NOT NULL,
    dconf text NOT NULL,
    tags text NOT NULL
);
CREATE TABLE notes (
    id integer PRIMARY KEY,
    guid text NOT NULL,
    mid integer NOT NULL,
    mod integer NOT NULL,
    usn integer NOT NULL,
    tags text NOT NULL,
    flds text NOT NULL,
    sfld integer NOT NULL,
    csum integer NOT NULL,
    flags integer NOT NULL,
    data text NOT NULL
);
CREATE TABLE cards (
    id integer PRIMARY KEY,
    nid integer NOT NULL,
    did integer NOT NULL,
    ord integer NOT NULL,
    mod integer NOT NULL,
    usn integer NOT NULL,
    type integer NOT NULL,
    queue integer NOT NULL,
    due integer NOT NULL,
    ivl integer NOT NULL,
    factor integer NOT NULL,
    reps integer NOT NULL,
    lapses integer NOT NULL,
    left integer NOT NULL,
    odue integer NOT NULL,
    odid integer NOT NULL,
    flags integer NOT NULL,
    data text NOT NULL
);
CREATE TABLE revlog (
    id integer PRIMARY KEY,
    cid integer NOT NULL,
    usn integer NOT NULL,
    ease integer NOT NULL,
    ivl integer NOT NULL,
    lastIvl integer NOT NULL,
    factor integer NOT NULL,
    time integer NOT NULL,
    type integer NOT NULL
);
CREATE TABLE graves (
    usn integer NOT NULL,
    oid integer NOT NULL,
    type integer NOT NULL
);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
`

// writeCollection builds the collection.anki2 database.
func (d *Deck) writeCollection(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("creating collection database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := time.Now()
	modelID := now.UnixMilli()
	deckID := modelID + 1

	models, err := modelsJSON(modelID, deckID)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	decks, err := decksJSON(deckID, d.Name)
	if err != nil {
		return fmt.Errorf("marshaling decks: %w", err)
	}

	conf := fmt.Sprintf(`{"nextPos":1,"estTimes":true,"activeDecks":[%d],"sortType":"noteFld","timeLim":0,"sortBackwards":false,"addToCur":true,"curDeck":%d,"newBury":true,"newSpread":0,"dueCounts":true,"curModel":"%d","collapseTime":1200}`, deckID, deckID, modelID)
	dconf := `{"1":{"id":1,"name":"Default","replayq":true,"lapse":{"leechFails":8,"minInt":1,"delays":[10],"leechAction":0,"mult":0},"rev":{"perDay":100,"ivlFct":1,"maxIvl":36500,"ease4":1.3,"bury":true,"fuzz":0.05},"timer":0,"maxTaken":60,"usn":0,"new":{"perDay":20,"delays":[1,10],"separate":true,"ints":[1,4,7],"initialFactor":2500,"bury":true,"order":1},"mod":0,"autoplay":true}}`

	_, err = db.Exec(
		`INSERT INTO col VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now.Unix(), now.UnixMilli(), now.UnixMilli(), conf, models, decks, dconf,
	)
	if err != nil {
		return fmt.Errorf("writing collection row: %w", err)
	}

	for i, note := range d.notes {
		noteID := modelID + 2 + int64(i)*2
		cardID := noteID + 1
		flds := strings.Join(note.fields(), "\x1f")
		sfld := note.Simplified

		_, err = db.Exec(
			`INSERT INTO notes VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')`,
			noteID, noteGUID(flds), modelID, now.Unix(), flds, sfld, fieldChecksum(sfld),
		)
		if err != nil {
			return fmt.Errorf("writing note %q: %w", note.Simplified, err)
		}

		_, err = db.Exec(
			`INSERT INTO cards VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
			cardID, noteID, deckID, now.Unix(), i+1,
		)
		if err != nil {
			return fmt.Errorf("writing card %q: %w", note.Simplified, err)
		}
	}

	return nil
}

// modelsJSON builds the models blob for the col table: one note type with
// the vocabulary fields and a single recognition card template.
func modelsJSON(modelID, deckID int64) (string, error) {
	fields := make([]map[string]any, len(NoteFields))
	for i, name := range NoteFields {
		fields[i] = map[string]any{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		}
	}

	model := map[string]any{
		"id":    modelID,
		"name":  "Cidian Vocabulary",
		"type":  0,
		"mod":   modelID / 1000,
		"usn":   -1,
		"sortf": 0,
		"did":   deckID,
		"flds":  fields,
		"tmpls": []map[string]any{{
			"name":  "Card 1",
			"ord":   0,
			"qfmt":  "<div class=hanzi>{{Simplified}}</div>",
			"afmt":  "{{FrontSide}}<hr id=answer>{{Traditional}}<br>{{Pinyin}}<br>{{Definitions}}",
			"did":   nil,
			"bqfmt": "",
			"bafmt": "",
		}},
		"css":       ".card { font-family: arial; font-size: 20px; text-align: center; }\n.hanzi { font-size: 48px; }",
		"latexPre":  "\\documentclass[12pt]{article}\n\\begin{document}\n",
		"latexPost": "\\end{document}",
		"req":       []any{[]any{0, "any", []int{0}}},
	}

	blob, err := json.Marshal(map[string]any{strconv.FormatInt(modelID, 10): model})
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// decksJSON builds the decks blob for the col table.
func decksJSON(deckID int64, name string) (string, error) {
	deck := map[string]any{
		"id":               deckID,
		"name":             name,
		"desc":             "Exported by cidian",
		"mod":              deckID / 1000,
		"usn":              -1,
		"collapsed":        false,
		"browserCollapsed": false,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"dyn":              0,
		"extendNew":        10,
		"extendRev":        50,
		"conf":             1,
	}

	blob, err := json.Marshal(map[string]any{strconv.FormatInt(deckID, 10): deck})
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// noteGUID derives a stable identifier from the note's fields so
// re-exporting the same words updates rather than duplicates.
func noteGUID(flds string) string {
	h := sha256.Sum256([]byte(flds))
	return fmt.Sprintf("%x", h)[:10]
}

// fieldChecksum is the first 8 hex digits of the SHA-256 of the sort field,
// parsed as an integer.
func fieldChecksum(sfld string) int64 {
	h := sha256.Sum256([]byte(sfld))
	hashStr := fmt.Sprintf("%x", h)
	csum, _ := strconv.ParseInt(hashStr[:8], 16, 64)
	return csum
}

// zipDir packs the contents of dir into a zip archive at outputPath.
func zipDir(dir, outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)
	defer zipWriter.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		return fmt.Errorf("creating zip: %w", err)
	}

	return nil
}
