// Package cmd contains all CLI commands for cidian.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/luojia/cidian/internal/cedict"
	"github.com/luojia/cidian/internal/config"
	"github.com/luojia/cidian/internal/fetch"
	"github.com/luojia/cidian/internal/loader"
	"github.com/luojia/cidian/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cidian",
	Short: "CC-CEDICT dictionary and Chinese text segmenter",
	Long: `cidian loads the CC-CEDICT bilingual dictionary and segments Chinese
text into the longest recognized dictionary terms.

Every entry is indexed under both its traditional and simplified headword,
so lookups work against either script.

Running 'cidian' without arguments launches the interactive reader.
Run 'cidian fetch' once to download the dictionary.`,
	RunE: runReader,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/cidian)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "cidian")
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("CIDIAN")
	viper.AutomaticEnv()

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func loadConfig() (*config.Config, error) {
	return config.LoadDir(getConfigDir())
}

// dictLoader guards the one-time dictionary build shared by all commands.
var dictLoader *loader.Loader

// loadDictionary builds the shared dictionary from the locally fetched
// CC-CEDICT file.
func loadDictionary(ctx context.Context) (*cedict.Dictionary, error) {
	if dictLoader == nil {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		dictLoader = loader.New(&fetch.FileSource{Path: cfg.DictionaryPath()})
	}

	dict, err := dictLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'cidian fetch' first)", err)
	}
	return dict, nil
}

// runReader launches the interactive reader TUI.
func runReader(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dict, err := loadDictionary(cmd.Context())
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.New(dict, cfg.ToneColors),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running reader: %w", err)
	}

	return nil
}
