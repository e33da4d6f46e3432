package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/rgonek/html2tea/command"
	"github.com/rgonek/html2tea/converter"
	"github.com/rgonek/html2tea/mdconverter"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "html2tea [file]",
		Short: "Convert an HTML fragment to BuckleScript-TEA view code",
		Long: `html2tea reads an HTML fragment from a file or stdin and prints the
equivalent Tea.Html view code. Use --markdown to convert Markdown instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.verbose)

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := resolveConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if opts.ast {
				return printAST(cmd.OutOrStdout(), input)
			}
			return runConvert(cmd.OutOrStdout(), input, cfg, opts.markdown)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.preset, "preset", presetOCaml, "preset: ocaml|reason|verbatim")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with converter settings")
	flags.IntVar(&opts.indent, "indent", 2, "spaces per nesting level")
	flags.BoolVar(&opts.tabs, "tabs", false, "indent with one tab per level")
	flags.StringVar(&opts.syntax, "syntax", string(converter.SyntaxOCaml), "output syntax: ocaml|reason")
	flags.StringVar(&opts.whitespace, "whitespace", string(converter.WhitespaceCollapse), "text whitespace: collapse|preserve")
	flags.StringVar(&opts.unknownAttrs, "unknown-attrs", string(converter.UnknownGeneric), "attributes without a constructor: generic|skip")
	flags.StringVar(&opts.style, "style", string(converter.StyleSplit), "style attribute: split|raw")
	flags.BoolVar(&opts.markdown, "markdown", false, "treat the input as GitHub Flavored Markdown")
	flags.BoolVar(&opts.allowRawHTML, "allow-raw-html", false, "keep raw HTML embedded in Markdown input")
	flags.BoolVar(&opts.ast, "ast", false, "print the parsed node tree as JSON instead of view code")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func runConvert(w io.Writer, input string, cfg mdconverter.Config, markdown bool) error {
	factory := command.HTMLConverter(cfg.Config)
	if markdown {
		factory = func(ed converter.EditorOptions) (command.Converter, error) {
			mdCfg := cfg
			mdCfg.Config = cfg.Config.WithEditorOptions(ed)
			return mdconverter.New(mdCfg)
		}
	}

	ed := &command.Editor{
		Selection:    input,
		TabSize:      cfg.IndentWidth,
		InsertSpaces: !cfg.UseTabs,
	}

	start := time.Now()
	result, err := command.HTMLToView(ed, factory)
	if err != nil {
		slog.Debug("conversion failed", "error", err)
		return errors.New(command.UserMessage(err))
	}
	slog.Debug("converted selection", "bytes", len(input), "took", time.Since(start))

	for _, warning := range result.Warnings {
		slog.Warn(warning.Message,
			"type", warning.Type,
			"line", warning.Pos.Line,
			"column", warning.Pos.Column,
		)
	}

	_, err = fmt.Fprintln(w, result.Code)
	return err
}

func printAST(w io.Writer, input string) error {
	nodes, err := converter.Parse(input)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
