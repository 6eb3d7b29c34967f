package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/luojia/cidian/internal/anki"
	"github.com/luojia/cidian/internal/pinyin"
	"github.com/spf13/cobra"
)

var (
	deckOut  string
	deckName string
)

var deckCmd = &cobra.Command{
	Use:   "deck <word>...",
	Short: "Export words as an Anki deck",
	Long: `Export dictionary entries for the given words as an Anki .apkg
package with simplified, traditional, pinyin, and definition fields.

Words that are not in the dictionary are skipped with a warning.

Example:
  cidian deck 家具 沙發 桌子 -o furniture.apkg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeck,
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.Flags().StringVarP(&deckOut, "output", "o", "cidian.apkg", "output .apkg path")
	deckCmd.Flags().StringVar(&deckName, "name", "Cidian Vocabulary", "deck name")
}

func runDeck(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary(cmd.Context())
	if err != nil {
		return err
	}

	deck := anki.NewDeck(deckName)
	for _, word := range args {
		entry, ok := dict.Get(word)
		if !ok {
			fmt.Fprintf(os.Stderr, "skipping %s: not in dictionary\n", word)
			continue
		}
		deck.Add(anki.Note{
			Simplified:  entry.Simplified,
			Traditional: entry.Traditional,
			Pinyin:      pinyin.Mark(entry.Pinyin),
			Definitions: strings.Join(entry.Definitions, "; "),
		})
	}

	if deck.Len() == 0 {
		return fmt.Errorf("none of the given words are in the dictionary")
	}

	if err := deck.WriteFile(deckOut); err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}

	fmt.Printf("Wrote %d notes to %s\n", deck.Len(), deckOut)
	return nil
}
