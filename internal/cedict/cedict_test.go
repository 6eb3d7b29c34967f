package cedict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Entry
	}{
		{
			name: "basic entry",
			line: "傢俱 家具 [jia1 ju4] /furniture/",
			want: &Entry{
				Traditional: "傢俱",
				Simplified:  "家具",
				Pinyin:      "jia1 ju4",
				Definitions: []string{"furniture"},
			},
		},
		{
			name: "multiple glosses keep source order",
			line: "沙發 沙发 [sha1 fa1] /sofa/settee/",
			want: &Entry{
				Traditional: "沙發",
				Simplified:  "沙发",
				Pinyin:      "sha1 fa1",
				Definitions: []string{"sofa", "settee"},
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			line: "  傢俱 家具 [jia1 ju4] /furniture/  ",
			want: &Entry{
				Traditional: "傢俱",
				Simplified:  "家具",
				Pinyin:      "jia1 ju4",
				Definitions: []string{"furniture"},
			},
		},
		{
			name: "glosses with embedded spaces and slashes",
			line: "一起 一起 [yi1 qi3] /in the same place/together/",
			want: &Entry{
				Traditional: "一起",
				Simplified:  "一起",
				Pinyin:      "yi1 qi3",
				Definitions: []string{"in the same place", "together"},
			},
		},
		{name: "comment line", line: "# CC-CEDICT", want: nil},
		{name: "metadata comment", line: "#! version=1", want: nil},
		{name: "empty line", line: "", want: nil},
		{name: "whitespace only", line: "   ", want: nil},
		{name: "missing pinyin brackets", line: "傢俱 家具 /furniture/", want: nil},
		{name: "empty pinyin", line: "傢俱 家具 [] /furniture/", want: nil},
		{name: "missing glosses", line: "傢俱 家具 [jia1 ju4]", want: nil},
		{name: "missing simplified", line: "傢俱 [jia1 ju4] /furniture/", want: nil},
		{name: "unterminated gloss list", line: "傢俱 家具 [jia1 ju4] /furniture", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestParseLineDropsEmptyGlosses(t *testing.T) {
	e := ParseLine("你好 你好 [ni3 hao3] /hello//hi/")
	require.NotNil(t, e)
	assert.Equal(t, []string{"hello", "hi"}, e.Definitions)
}

func TestParseLineDeterministic(t *testing.T) {
	lines := []string{
		"傢俱 家具 [jia1 ju4] /furniture/",
		"#!comment",
		"not an entry",
	}
	for _, line := range lines {
		first := ParseLine(line)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, ParseLine(line), "line %q", line)
		}
	}
}
