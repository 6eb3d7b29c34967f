package cmd

import (
	"fmt"
	"strings"

	"github.com/luojia/cidian/internal/cedict"
	"github.com/luojia/cidian/internal/pinyin"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Look up words in the dictionary",
	Long: `Look up one or more words and display their traditional and
simplified forms, tone-marked pinyin, and glosses.

Either script works as the lookup key. For words missing from the
dictionary, per-character readings are shown instead.

Example:
  cidian lookup 家具
  cidian lookup 傢俱 沙發`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary(cmd.Context())
	if err != nil {
		return err
	}

	for _, word := range args {
		entry, ok := dict.Get(word)
		if !ok {
			fmt.Printf("%s: not in dictionary\n", word)
			printFallbackReadings(word)
			fmt.Println()
			continue
		}
		printEntry(entry)
		fmt.Println()
	}

	return nil
}

func printEntry(e *cedict.Entry) {
	head := e.Simplified
	if e.Traditional != e.Simplified {
		head = fmt.Sprintf("%s (%s)", e.Simplified, e.Traditional)
	}
	fmt.Printf("%s  [%s]\n", head, pinyin.Mark(e.Pinyin))
	for i, def := range e.Definitions {
		fmt.Printf("  %d. %s\n", i+1, def)
	}
}

// printFallbackReadings shows per-character readings for words without an
// entry of their own.
func printFallbackReadings(word string) {
	for _, r := range word {
		char := string(r)
		readings := pinyin.Readings(char)
		if len(readings) == 0 {
			continue
		}
		fmt.Printf("  %s  %s\n", char, strings.Join(readings, " / "))
	}
}
