package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luojia/cidian/internal/pinyin"
	"github.com/luojia/cidian/internal/segment"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var segmentJSON bool

var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Segment Chinese text into dictionary terms",
	Long: `Segment text into the longest recognized dictionary terms, greedily
from left to right. Characters that match no entry are passed through as
unmatched spans.

Text is taken from the arguments, or from stdin when none are given.

Example:
  cidian segment 他買了家具
  cat article.txt | cidian segment --json`,
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().BoolVar(&segmentJSON, "json", false, "emit segments as JSON")
}

func runSegment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, "")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if text == "" {
		return fmt.Errorf("no text to segment")
	}

	dict, err := loadDictionary(cmd.Context())
	if err != nil {
		return err
	}

	segs := segment.Split(text, dict)

	if segmentJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(segs)
	}

	printSegments(segs)
	return nil
}

// printSegments renders one segment per row, runewidth-aligned so the
// pinyin and gloss columns line up under CJK text.
func printSegments(segs []segment.Segment) {
	col := 0
	for _, s := range segs {
		if w := runewidth.StringWidth(s.Text); w > col {
			col = w
		}
	}

	for _, s := range segs {
		padded := runewidth.FillRight(s.Text, col)
		if !s.Matched {
			fmt.Printf("%s  -\n", padded)
			continue
		}
		gloss := ""
		if len(s.Entry.Definitions) > 0 {
			gloss = s.Entry.Definitions[0]
		}
		fmt.Printf("%s  [%s]  %s\n", padded, pinyin.Mark(s.Entry.Pinyin), gloss)
	}
}
