package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog styles",
	Long:  `Shows every style in the catalog with its tile size and dig count.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := len("Style")
	for _, e := range cat.Entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "Style", "Tile", "Digs")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "-----", "----", "----")

	for _, e := range cat.Entries {
		s, err := e.Style()
		if err != nil {
			logger.Debug("invalid style", "style", e.Name, "error", err)
			fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, e.Name, "-", "invalid")
			continue
		}
		tile := fmt.Sprintf("%dx%d", s.Pattern.RowCount(), s.Pattern.ColCount())
		fmt.Fprintf(out, "  %-*s  %-5s  %d\n", maxNameLen, e.Name, tile, s.Pattern.DigCount())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'digsim run <style>' to evaluate a style.")
	return nil
}
