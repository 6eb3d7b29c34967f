// Package segment splits text into dictionary terms using greedy
// longest-match segmentation.
package segment

import "github.com/luojia/cidian/internal/cedict"

// Segment is a contiguous span of input text. Start and End are rune
// offsets into the original text; Entry is set when Matched is true.
type Segment struct {
	Text    string        `json:"text"`
	Start   int           `json:"start"`
	End     int           `json:"end"`
	Entry   *cedict.Entry `json:"entry,omitempty"`
	Matched bool          `json:"matched"`
}

// Split segments text greedily: at each rune position the longest headword
// in d wins and the position advances past it; a rune with no match becomes
// a single-rune unmatched segment. The returned segments are contiguous,
// non-overlapping, and concatenate back to the original text.
func Split(text string, d *cedict.Dictionary) []Segment {
	runes := []rune(text)
	segs := make([]Segment, 0, len(runes))

	for i := 0; i < len(runes); {
		word, ok := d.FindLongestMatch(runes, i)
		if !ok {
			segs = append(segs, Segment{Text: string(runes[i]), Start: i, End: i + 1})
			i++
			continue
		}

		n := len([]rune(word))
		entry, _ := d.Get(word)
		segs = append(segs, Segment{
			Text:    word,
			Start:   i,
			End:     i + n,
			Entry:   entry,
			Matched: true,
		})
		i += n
	}

	return segs
}

// Coalesce merges runs of adjacent unmatched segments into single segments.
// Matched segments pass through untouched. This is a display convenience;
// the concatenation of the result still reproduces the original text.
func Coalesce(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if !s.Matched && len(out) > 0 {
			last := &out[len(out)-1]
			if !last.Matched && last.End == s.Start {
				last.Text += s.Text
				last.End = s.End
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
