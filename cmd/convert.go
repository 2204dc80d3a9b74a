// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → preprocess → parse → render → write.
//
// It handles flag validation, renderer selection and command lookup.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tablepipe/config"
	"github.com/gaurav-prasanna/tablepipe/core"
	"github.com/gaurav-prasanna/tablepipe/core/command"
	"github.com/gaurav-prasanna/tablepipe/core/extract"
	"github.com/gaurav-prasanna/tablepipe/core/fetch"
	"github.com/gaurav-prasanna/tablepipe/core/normalize"
	"github.com/gaurav-prasanna/tablepipe/core/output"
	"github.com/gaurav-prasanna/tablepipe/core/render"
	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// Flag variables.
var (
	flagCommand   string
	flagDelim     string
	flagJoin      []string
	flagASCII     bool
	flagSelector  string
	flagJSON      bool
	flagYAML      bool
	flagMarkdown  bool
	flagPDF       bool
	flagMeta      bool
	flagCompact   bool
	flagOutputDir string
	flagQuiet     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Convert a table from a file, stdin or URL into structured output",
	Long: `Convert reads command output, splits its table into records using the
selected command's parser, and writes them in the specified format
(JSON by default, YAML, Markdown or PDF).

The source is a file path, "-" for stdin (the default), or an http(s) URL.
For HTML pages the first <pre> block (see --selector) is used.

Examples:
  systemctl -a | tablepipe convert --command systemctl
  tablepipe convert listing.txt --command sparse --yaml
  tablepipe convert https://example.com/df.html --join "mounted on" --markdown
  tablepipe convert listing.txt --delim '|' --pdf --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Parsing flags.
	convertCmd.Flags().StringVarP(&flagCommand, "command", "c", "", "Table consumer: simple, sparse, systemctl (default from config: sparse)")
	convertCmd.Flags().StringVar(&flagDelim, "delim", "", "Sentinel character for the sparse parser (default U+2063)")
	convertCmd.Flags().StringArrayVar(&flagJoin, "join", nil, "Multi-word header label to join with underscores (repeatable)")
	convertCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Drop non-ASCII characters from the input")
	convertCmd.Flags().StringVar(&flagSelector, "selector", "", "CSS selector of the HTML block holding the table (URL sources)")

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON (default)")
	convertCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Output YAML")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown table")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF table")
	convertCmd.Flags().BoolVar(&flagMeta, "meta", false, "Wrap records with document metadata (JSON, YAML)")
	convertCmd.Flags().BoolVar(&flagCompact, "compact", false, "Single-line JSON")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout)")
	convertCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress compatibility warnings")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := fetch.Stdin
	if len(args) == 1 {
		source = args[0]
	}

	// --- Validate flags ---
	format, err := validateFlags()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, format)
	if err := cfg.Validate(); err != nil {
		return err
	}

	consumer, err := command.Lookup(cfg.Command)
	if err != nil {
		return err
	}
	if !cfg.Quiet && !consumer.IsCompatible(runtime.GOOS) {
		logger.Warn("command output may not parse on this platform",
			"command", consumer.Name, "platform", runtime.GOOS, "compatible", consumer.Compatible)
	}

	// Select renderer.
	renderer, err := selectRenderer(cfg)
	if err != nil {
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	writer.Stdout = cmd.OutOrStdout()

	fetcher := fetch.For(source, cmd.InOrStdin())
	data, meta, err := processSource(cmd.Context(), cfg, source, consumer, fetcher, extract.New(cfg.Selector), renderer)
	if err != nil {
		return err
	}

	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	logger.Info("converted", "source", meta.Source, "command", meta.Command, "records", meta.Records)
	if path != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// processSource runs a single source through the full pipeline.
func processSource(
	ctx context.Context,
	c *config.Config,
	source string,
	consumer *command.Command,
	fetcher core.Fetcher,
	extractor core.Extractor,
	renderer core.Renderer,
) ([]byte, core.DocumentMetadata, error) {
	// 1. Fetch
	result, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, core.DocumentMetadata{}, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract the preformatted block from HTML pages
	text := result.Body
	if fetch.IsHTML(result) {
		text, err = extractor.Extract(result.Body)
		if err != nil {
			return nil, core.DocumentMetadata{}, fmt.Errorf("extract: %w", err)
		}
	}

	// 3. Preprocess into clean lines and prepare the header
	var preprocessor core.Preprocessor = normalize.New(c.ASCIIOnly || consumer.ASCIIOnly)
	lines := preprocessor.Lines(text)
	if len(lines) > 0 {
		lines[0] = normalize.NormalizeHeader(lines[0], c.Join...)
	}

	// 4. Parse
	records, err := consumer.Parse(lines, parseOptions(c, source)...)
	if err != nil {
		return nil, core.DocumentMetadata{}, fmt.Errorf("parse %s: %w", source, err)
	}

	var columns []string
	if len(lines) > 0 {
		columns = strings.Fields(lines[0])
	}
	meta := core.DocumentMetadata{
		Source:   result.Source,
		Command:  consumer.Name,
		Columns:  columns,
		Records:  len(records),
		ParsedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 5. Render to output format
	data, err := renderer.Render(records, meta)
	if err != nil {
		return nil, core.DocumentMetadata{}, fmt.Errorf("render: %w", err)
	}

	return data, meta, nil
}

// parseOptions builds the per-call engine options: the sentinel override
// and an observer that logs absorbed irregularities.
func parseOptions(c *config.Config, source string) []table.Option {
	opts := []table.Option{
		table.WithObserver(func(ir table.Irregularity) {
			logger.Debug("irregular row",
				slog.String("source", source),
				slog.String("kind", string(ir.Kind)),
				slog.Int("line", ir.Line+2),
				slog.String("column", ir.Column))
		}),
	}
	if r, _ := c.DelimiterRune(); r != 0 {
		opts = append(opts, table.WithDelimiter(r))
	}
	return opts
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, c *config.Config, format string) {
	flags := cmd.Flags()
	if flags.Changed("command") {
		c.Command = flagCommand
	}
	if flags.Changed("delim") {
		c.Delimiter = flagDelim
	}
	if flags.Changed("join") {
		c.Join = append(c.Join, flagJoin...)
	}
	if flags.Changed("ascii") {
		c.ASCIIOnly = flagASCII
	}
	if flags.Changed("selector") {
		c.Selector = flagSelector
	}
	if format != "" {
		c.Format = format
	}
	if flags.Changed("meta") {
		c.Metadata = flagMeta
	}
	if flags.Changed("compact") {
		c.Pretty = !flagCompact
	}
	if flags.Changed("output_dir") {
		c.OutputDir = flagOutputDir
	}
	if flags.Changed("quiet") {
		c.Quiet = flagQuiet
	}
}

// validateFlags checks that at most one output format is chosen and
// returns it ("" when none was given on the command line).
func validateFlags() (string, error) {
	var formats []string
	if flagJSON {
		formats = append(formats, "json")
	}
	if flagYAML {
		formats = append(formats, "yaml")
	}
	if flagMarkdown {
		formats = append(formats, "markdown")
	}
	if flagPDF {
		formats = append(formats, "pdf")
	}

	if len(formats) > 1 {
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(formats))
	}
	if flagCompact && (flagYAML || flagMarkdown || flagPDF) {
		return "", fmt.Errorf("--compact only applies to JSON output")
	}
	if len(formats) == 0 {
		return "", nil
	}
	return formats[0], nil
}

// selectRenderer creates the appropriate Renderer based on configuration.
func selectRenderer(c *config.Config) (core.Renderer, error) {
	switch c.Format {
	case "json":
		return render.NewJSONRenderer(c.Pretty, c.Metadata), nil
	case "yaml":
		return render.NewYAMLRenderer(c.Metadata), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no renderer for output format %q", c.Format)
	}
}
