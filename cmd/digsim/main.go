// digsim evaluates tile-digging patterns by simulating how much of the
// surrounding terrain each pattern reveals.
//
// Usage:
//
//	digsim list              - List catalog styles
//	digsim run [style...]    - Evaluate the catalog (or the named styles)
//	digsim show <style>      - Print one tile of a pattern
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.digsim, ./configs, built-in)
//	--catalog <path>    - Catalog file or directory of YAML files
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/digsim/internal/catalog"
	"github.com/vovakirdan/digsim/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagCatalog  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "digsim",
	Short: "Evaluate tile-digging patterns",
	Long: `digsim simulates repeating dig patterns over a square window and reports
how much terrain each one reveals for the digging it costs.

Available commands:
  list     - Show catalog styles
  run      - Evaluate styles and print grids and metrics
  show     - Print one tile of a pattern

Examples:
  digsim list
  digsim run
  digsim run "fish hook" "stair step" --sort efficiency
  digsim run --format yaml --catalog ./patterns/
  digsim show "offset sawtooth"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to catalog YAML file or directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
}

// newLogger builds the stderr logger for a command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "digsim",
		Level:           level,
	}), nil
}

// loadCatalog resolves the catalog from --catalog or the default search order.
func loadCatalog(logger *log.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(flagCatalog, logger)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return cat, nil
}

// loadConfig resolves the config from --config or the default search order.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
