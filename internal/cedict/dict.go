package cedict

import "strings"

// Dictionary maps headwords to entries. Both the traditional and the
// simplified form of every entry are keys into the same map, and when two
// entries share a headword the later one wins.
//
// A Dictionary is built once with Build and never mutated afterward, so it
// is safe for unsynchronized concurrent readers.
type Dictionary struct {
	entries   map[string]*Entry
	maxKeyLen int // rune count of the longest headword
}

// Build parses raw CC-CEDICT source text into a Dictionary. Lines that fail
// to parse are skipped; Build itself never fails.
func Build(raw string) *Dictionary {
	d := &Dictionary{entries: make(map[string]*Entry)}
	for _, line := range strings.Split(raw, "\n") {
		entry := ParseLine(line)
		if entry == nil {
			continue
		}
		d.insert(entry.Traditional, entry)
		d.insert(entry.Simplified, entry)
	}
	return d
}

func (d *Dictionary) insert(key string, e *Entry) {
	d.entries[key] = e
	if n := len([]rune(key)); n > d.maxKeyLen {
		d.maxKeyLen = n
	}
}

// Get looks up a headword exactly as stored, traditional or simplified.
// No normalization is applied.
func (d *Dictionary) Get(key string) (*Entry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

// Len returns the number of headword keys in the dictionary.
func (d *Dictionary) Len() int { return len(d.entries) }

// MaxKeyLen returns the rune count of the longest headword, 0 when empty.
func (d *Dictionary) MaxKeyLen() int { return d.maxKeyLen }

// FindLongestMatch returns the longest headword starting at text[start],
// trying candidate lengths from the longest key in the dictionary down to a
// single rune. start is a rune offset. ok is false when no headword matches.
func (d *Dictionary) FindLongestMatch(text []rune, start int) (string, bool) {
	if start < 0 || start >= len(text) {
		return "", false
	}

	longest := d.maxKeyLen
	if rest := len(text) - start; rest < longest {
		longest = rest
	}
	for n := longest; n >= 1; n-- {
		candidate := string(text[start : start+n])
		if _, ok := d.entries[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}
