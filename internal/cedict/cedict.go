// Package cedict parses CC-CEDICT dictionary source and indexes its entries
// for exact and longest-match lookup.
package cedict

import (
	"regexp"
	"strings"
)

// Entry is a single CC-CEDICT dictionary entry.
type Entry struct {
	Traditional string   `json:"traditional"`
	Simplified  string   `json:"simplified"`
	Pinyin      string   `json:"pinyin"`      // numbered reading, e.g. "jia1 ju4"
	Definitions []string `json:"definitions"` // glosses in source order, first is the primary sense
}

// entryRe captures the CC-CEDICT line shape:
// <traditional> <simplified> [<pinyin>] /<gloss>/<gloss>/.../
var entryRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+/(.+)/$`)

// ParseLine parses one line of CC-CEDICT source. Comment lines (leading '#')
// and lines that do not match the entry format yield nil; neither is an
// error, callers skip them and continue.
func ParseLine(line string) *Entry {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	var defs []string
	for _, d := range strings.Split(m[4], "/") {
		if d != "" {
			defs = append(defs, d)
		}
	}

	return &Entry{
		Traditional: m[1],
		Simplified:  m[2],
		Pinyin:      m[3],
		Definitions: defs,
	}
}
