package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/digsim/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <style>",
	Short: "Print one tile of a pattern",
	Long: `Prints the repeating tile of a catalog style, using the configured glyphs
for dug and untouched cells.

Examples:
  digsim show "fish hook"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(logger)
	if err != nil {
		return err
	}

	entry, ok := cat.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown style %q (run 'digsim list' to see available styles)", args[0])
	}
	style, err := entry.Style()
	if err != nil {
		return err
	}
	glyphs, err := render.GlyphsByName(cfg.Output.Glyphs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%dx%d, %d digs)\n", style.Name,
		style.Pattern.RowCount(), style.Pattern.ColCount(), style.Pattern.DigCount())
	if entry.Source != "" {
		fmt.Fprintf(out, "source: %s\n", entry.Source)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Pattern(style.Pattern.Rows(), glyphs))
	return nil
}
