package segment

import (
	"strings"
	"testing"

	"github.com/luojia/cidian/internal/cedict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict(t *testing.T) *cedict.Dictionary {
	t.Helper()
	raw := strings.Join([]string{
		"傢俱 家具 [jia1 ju4] /furniture/",
		"家 家 [jia1] /home/family/",
		"買 买 [mai3] /to buy/",
	}, "\n")
	return cedict.Build(raw)
}

func TestSplitGreedy(t *testing.T) {
	d := testDict(t)

	segs := Split("他買了家具", d)
	require.Len(t, segs, 4)

	assert.Equal(t, "他", segs[0].Text)
	assert.False(t, segs[0].Matched)

	assert.Equal(t, "買", segs[1].Text)
	assert.True(t, segs[1].Matched)
	require.NotNil(t, segs[1].Entry)
	assert.Equal(t, "mai3", segs[1].Entry.Pinyin)

	assert.Equal(t, "了", segs[2].Text)
	assert.False(t, segs[2].Matched)

	assert.Equal(t, "家具", segs[3].Text)
	assert.True(t, segs[3].Matched)
	assert.Equal(t, 3, segs[3].Start)
	assert.Equal(t, 5, segs[3].End)
}

func TestSplitMaximalMunch(t *testing.T) {
	d := testDict(t)

	// 家 alone is an entry, but 家具 is longer and must win.
	segs := Split("家具", d)
	require.Len(t, segs, 1)
	assert.Equal(t, "家具", segs[0].Text)

	// At the end of text only the short key fits.
	segs = Split("家", d)
	require.Len(t, segs, 1)
	assert.Equal(t, "家", segs[0].Text)
	assert.True(t, segs[0].Matched)
}

func TestSplitRoundTrip(t *testing.T) {
	d := testDict(t)

	texts := []string{
		"",
		"他買了家具",
		"家具",
		"Hello 家具 world!",
		"。、？！",
		"没有词典词的句子",
	}

	for _, text := range texts {
		segs := Split(text, d)

		var joined strings.Builder
		pos := 0
		for _, s := range segs {
			assert.Equal(t, pos, s.Start, "segments must be contiguous in %q", text)
			assert.Greater(t, s.End, s.Start)
			joined.WriteString(s.Text)
			pos = s.End
		}
		assert.Equal(t, len([]rune(text)), pos)
		assert.Equal(t, text, joined.String(), "concatenation must reproduce the input")
	}
}

func TestSplitEmptyText(t *testing.T) {
	segs := Split("", testDict(t))
	assert.Empty(t, segs)
}

func TestCoalesce(t *testing.T) {
	d := testDict(t)

	segs := Coalesce(Split("他去了家具店裡", d))

	// 他去了 merges into one unmatched run; 店裡 merges into another.
	require.Len(t, segs, 3)
	assert.Equal(t, "他去了", segs[0].Text)
	assert.False(t, segs[0].Matched)
	assert.Equal(t, "家具", segs[1].Text)
	assert.True(t, segs[1].Matched)
	assert.Equal(t, "店裡", segs[2].Text)

	// Round trip still holds after coalescing.
	var joined strings.Builder
	for _, s := range segs {
		joined.WriteString(s.Text)
	}
	assert.Equal(t, "他去了家具店裡", joined.String())
}

func TestCoalesceEmpty(t *testing.T) {
	assert.Empty(t, Coalesce(nil))
}
