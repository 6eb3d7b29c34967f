package cmd

import (
	"fmt"
	"os"

	"github.com/luojia/cidian/internal/cedict"
	"github.com/luojia/cidian/internal/fetch"
	"github.com/spf13/cobra"
)

var fetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the CC-CEDICT dictionary",
	Long: `Download the CC-CEDICT dictionary source and store it in the data
directory. Gzipped distributions are decompressed on the fly.

This is the only step that touches the network; every other command works
from the local copy.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "source URL (default is the MDBG CC-CEDICT export)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	url := fetchURL
	if url == "" {
		url = cfg.SourceURL
	}
	src := fetch.NewHTTPSource(url)

	fmt.Printf("Downloading %s ...\n", src.URL)
	raw, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	path := cfg.DictionaryPath()
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		return fmt.Errorf("writing dictionary file: %w", err)
	}

	dict := cedict.Build(raw)
	fmt.Printf("Saved %s (%d keys, longest headword %d characters)\n",
		path, dict.Len(), dict.MaxKeyLen())
	return nil
}
