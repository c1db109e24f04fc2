package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/diagfmt"
	"cxxdoc/internal/lexer"
	"cxxdoc/internal/source"
	"cxxdoc/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.h",
	Short: "Dump the tokens of a C++ source file",
	Long:  `Tokenize prints every token of a file, including comments with their Doxygen form and placement`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("diagnostics", "pretty", "diagnostics style on stderr (pretty|short|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.LoadWithEncoding(args[0], m.Config.Analysis.Encoding)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	file := fs.Get(id)

	_, span := trace.Start(cmd.Context(), trace.ScopePass, "lex")
	bag := diag.NewBag(m.Config.Run.MaxDiagnostics)
	toks := lexer.New(file, lexer.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag})}).All()
	span.End("")

	if err := printBag(cmd, bag, fs); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, file, toks)
	}
	return diagfmt.FormatTokensPretty(out, file, toks)
}

// printBag renders diagnostics to stderr.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	style, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch style {
	case "pretty":
	case "short":
		// одна строка на диагностику, пути относительно cwd
		if wd, err := os.Getwd(); err == nil {
			fs.SetBaseDir(wd)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), diag.FormatShort(bag.Items(), fs, true))
		return nil
	case "json":
		bag.Sort()
		return diagfmt.JSON(cmd.ErrOrStderr(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unsupported diagnostics style %q (must be pretty, short or json)", style)
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     color,
		Context:   1,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "... %d more diagnostics dropped (--max-diagnostics)\n", n)
	}
	return nil
}
