package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/diagfmt"
	"cxxdoc/internal/engine"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] file.h",
	Short: "Dump the declaration records of a C++ header",
	Long:  `Scan prints every declaration found in a file, private ones included, with its visibility, enclosing record and documentation`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().String("diagnostics", "pretty", "diagnostics style on stderr (pretty|short|json)")
	scanCmd.Flags().Bool("no-protected", false, "do not count protected members as public API")
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	noProtected, err := cmd.Flags().GetBool("no-protected")
	if err != nil {
		return fmt.Errorf("failed to get no-protected flag: %w", err)
	}

	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	policy := publicapi.Policy{IncludeProtected: m.Config.Analysis.IncludeProtected && !noProtected}

	fs := source.NewFileSet()
	id, err := fs.LoadWithEncoding(args[0], m.Config.Analysis.Encoding)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	res := engine.Analyze(cmd.Context(), fs.Get(id), engine.Options{
		Policy:         policy,
		MaxDiagnostics: m.Config.Run.MaxDiagnostics,
	})

	bag := diag.NewBag(0)
	for _, d := range res.Diagnostics {
		bag.Add(d)
	}
	if err := printBag(cmd, bag, fs); err != nil {
		return err
	}

	in := diagfmt.RecordsInput{
		File:      res.File,
		Records:   res.Records,
		DocOffset: diagfmt.TokenOffsets(res.Tokens),
		Policy:    policy,
	}
	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatRecordsJSON(out, in)
	}
	return diagfmt.FormatRecordsPretty(out, in)
}
