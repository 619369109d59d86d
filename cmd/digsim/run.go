package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/digsim/internal/catalog"
	"github.com/vovakirdan/digsim/internal/config"
	"github.com/vovakirdan/digsim/internal/render"
	"github.com/vovakirdan/digsim/internal/report"
	"github.com/vovakirdan/digsim/internal/sim"
)

var (
	flagFormat    string
	flagSort      string
	flagNoGrid    bool
	flagStrict    bool
	flagSize      int
	flagPadding   int
	flagPrecision int
	flagGlyphs    string
	flagColor     string
)

var runCmd = &cobra.Command{
	Use:   "run [style...]",
	Short: "Evaluate catalog styles",
	Long: `Simulates each style over the configured window, trims the padding and
prints the revealed grid followed by totals and metrics:

  effort     - dug / total
  coverage   - (revealed + partial/4) / total
  efficiency - dug / (revealed + partial/4)

Without arguments every catalog style is evaluated in catalog order.
Invalid patterns are reported and skipped unless --strict is set.

Examples:
  digsim run
  digsim run "simple sawtooth" --glyphs ascii
  digsim run --sort efficiency --no-grid
  digsim run --size 80 --padding 6 --format yaml`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml")
	runCmd.Flags().StringVar(&flagSort, "sort", "none", "Rank by: none, effort, coverage, efficiency")
	runCmd.Flags().BoolVar(&flagNoGrid, "no-grid", false, "Omit the grid visualisation in text output")
	runCmd.Flags().BoolVar(&flagStrict, "strict", false, "Abort on the first invalid style")
	runCmd.Flags().IntVar(&flagSize, "size", 0, "Override simulation.size")
	runCmd.Flags().IntVar(&flagPadding, "padding", 0, "Override simulation.padding")
	runCmd.Flags().IntVar(&flagPrecision, "precision", 0, "Override output.precision")
	runCmd.Flags().StringVar(&flagGlyphs, "glyphs", "", "Override output.glyphs: emoji, ascii")
	runCmd.Flags().StringVar(&flagColor, "color", "", "Override output.color: auto, always, never")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	key, err := report.ParseSortKey(flagSort)
	if err != nil {
		return err
	}
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown --format %q", flagFormat)
	}

	cat, err := loadCatalog(logger)
	if err != nil {
		return err
	}
	selected, err := cat.Select(args)
	if err != nil {
		return err
	}

	rep, err := evaluateCatalog(selected, cfg, logger, flagStrict)
	if err != nil {
		return err
	}
	rep.Sort(key)

	out := cmd.OutOrStdout()
	if flagFormat == "yaml" {
		data, err := rep.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	opt, err := renderOptions(cfg, logger)
	if err != nil {
		return err
	}
	writeText(out, rep, opt, !flagNoGrid)
	return nil
}

// applyRunOverrides copies explicitly set flags over the loaded config.
func applyRunOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Simulation.Size = flagSize
	}
	if flags.Changed("padding") {
		cfg.Simulation.Padding = flagPadding
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = flagPrecision
	}
	if flags.Changed("glyphs") {
		cfg.Output.Glyphs = flagGlyphs
	}
	if flags.Changed("color") {
		cfg.Output.Color = flagColor
	}
}

// evaluateCatalog runs every entry of cat through the simulator. Invalid
// entries are recorded as failures, or abort the run when strict is set.
func evaluateCatalog(cat *catalog.Catalog, cfg config.Config, logger *log.Logger, strict bool) (*report.Report, error) {
	simCfg := cfg.Sim()
	rep := report.New(simCfg, cfg.Output.Precision)

	for _, e := range cat.Entries {
		res, err := evaluateEntry(e, simCfg)
		if err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("skipping style", "style", e.Name, "error", err)
			rep.AddFailure(e.Name, err)
			continue
		}
		logger.Debug("evaluated style", "style", e.Name,
			"dug", res.Totals.Dug, "efficiency", res.Metrics.Efficiency)
		rep.Add(res)
	}

	logger.Info("evaluation finished",
		"styles", len(rep.Results), "failed", len(rep.Failures),
		"size", simCfg.Size, "padding", simCfg.Padding)
	return rep, nil
}

func evaluateEntry(e catalog.Entry, cfg sim.Config) (sim.Result, error) {
	style, err := e.Style()
	if err != nil {
		return sim.Result{}, err
	}
	return sim.Evaluate(style, cfg)
}

// renderOptions resolves glyphs and colour for the current stdout.
func renderOptions(cfg config.Config, logger *log.Logger) (render.Options, error) {
	glyphs, err := render.GlyphsByName(cfg.Output.Glyphs)
	if err != nil {
		return render.Options{}, err
	}

	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)

	color := false
	if cfg.Output.Glyphs == config.GlyphsASCII {
		switch cfg.Output.Color {
		case config.ColorAlways:
			color = true
		case config.ColorAuto:
			color = isTTY
		}
	}

	if isTTY {
		cellWidth := 1
		if cfg.Output.Glyphs == config.GlyphsEmoji {
			cellWidth = 2
		}
		if w, _, err := term.GetSize(fd); err == nil && w < cfg.Simulation.Size*cellWidth {
			logger.Warn("terminal narrower than grid, rows will wrap",
				"columns", w, "needed", cfg.Simulation.Size*cellWidth)
		}
	}

	return render.Options{Glyphs: glyphs, Color: color}, nil
}

// writeText prints each result as grid + summary, followed by failures.
func writeText(w io.Writer, rep *report.Report, opt render.Options, showGrid bool) {
	for _, e := range rep.Results {
		if showGrid && e.Grid != nil {
			fmt.Fprint(w, render.Grid(e.Grid, opt))
		}
		fmt.Fprint(w, render.Summary(e))
		fmt.Fprintln(w)
	}
	for _, f := range rep.Failures {
		fmt.Fprintf(w, "style: %s\nerror: %s\n\n", f.Style, f.Error)
	}
}
