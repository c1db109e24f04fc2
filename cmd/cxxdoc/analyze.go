package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cxxdoc/internal/diagfmt"
	"cxxdoc/internal/driver"
	"cxxdoc/internal/observ"
	"cxxdoc/internal/version"
)

const appName = "cxxdoc"

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [path...]",
	Short: "Measure public API documentation coverage",
	Long: `Analyze discovers C++ headers under the given paths (default: current
directory), analyzes them in parallel and prints per-file reports followed by
the summary. Explicit file arguments are analyzed whatever their suffix.`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("format", "pretty", "output format (pretty|json|yaml|issues|sarif)")
	f.Int("jobs", 0, "parallel workers (0 = manifest value or GOMAXPROCS)")
	f.Bool("no-protected", false, "do not count protected members as public API")
	f.Bool("no-cache", false, "disable the on-disk report cache")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.Float64("fail-under", 0, "exit with status 3 when coverage is below this percentage")
	f.Bool("verbose", false, "list documented items too (pretty format)")
	f.Bool("summary", false, "print only the summary (pretty format)")
}

type analyzeFlags struct {
	format      string
	jobs        int
	noProtected bool
	noCache     bool
	ui          uiMode
	failUnder   float64
	verbose     bool
	summary     bool
}

func readAnalyzeFlags(cmd *cobra.Command) (analyzeFlags, error) {
	var af analyzeFlags
	var err error
	f := cmd.Flags()
	if af.format, err = f.GetString("format"); err != nil {
		return af, fmt.Errorf("failed to get format flag: %w", err)
	}
	af.format = strings.ToLower(af.format)
	switch af.format {
	case "pretty", "json", "yaml", "issues", "sarif":
	default:
		return af, fmt.Errorf("unsupported format %q (must be pretty, json, yaml, issues or sarif)", af.format)
	}
	if af.jobs, err = f.GetInt("jobs"); err != nil {
		return af, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if af.jobs < 0 {
		return af, fmt.Errorf("--jobs must be >= 0, got %d", af.jobs)
	}
	if af.noProtected, err = f.GetBool("no-protected"); err != nil {
		return af, fmt.Errorf("failed to get no-protected flag: %w", err)
	}
	if af.noCache, err = f.GetBool("no-cache"); err != nil {
		return af, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiValue, err := f.GetString("ui")
	if err != nil {
		return af, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if af.ui, err = readUIMode(uiValue); err != nil {
		return af, err
	}
	if af.failUnder, err = f.GetFloat64("fail-under"); err != nil {
		return af, fmt.Errorf("failed to get fail-under flag: %w", err)
	}
	if af.failUnder < 0 || af.failUnder > 100 {
		return af, fmt.Errorf("--fail-under must be within 0..100, got %g", af.failUnder)
	}
	if af.verbose, err = f.GetBool("verbose"); err != nil {
		return af, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if af.summary, err = f.GetBool("summary"); err != nil {
		return af, fmt.Errorf("failed to get summary flag: %w", err)
	}
	return af, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	af, err := readAnalyzeFlags(cmd)
	if err != nil {
		return err
	}
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	disc, opts := driver.FromConfig(m.Config)
	if af.jobs > 0 {
		opts.Jobs = af.jobs
	}
	if af.noProtected {
		opts.Policy.IncludeProtected = false
	}
	if m.Config.Cache.Enabled && !af.noCache {
		cache, err := driver.OpenDiskCache(m.Config.Cache.Dir, appName)
		if err != nil {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := driver.Discover(paths, disc)
	if err != nil {
		return err
	}

	var res *driver.Result
	if !quiet && shouldUseTUI(af.ui, af.format) && len(files) > 0 {
		res, err = runAnalyzeWithUI(cmd.Context(), "analyzing headers", files, opts)
	} else {
		res, err = driver.AnalyzeFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	if err := renderAnalysis(cmd, res, af, quiet); err != nil {
		return err
	}

	if timings {
		merged := make([]observ.Report, 0, len(res.Files))
		for _, f := range res.Files {
			merged = append(merged, f.Timing)
		}
		if err := observ.Merge(merged...).WriteText(cmd.ErrOrStderr(), "timings"); err != nil {
			return err
		}
	}

	if af.failUnder > 0 && res.Summary.Coverage() < af.failUnder {
		return &exitError{code: 3, err: fmt.Errorf("coverage %.2f%% is below --fail-under %.2f%%", res.Summary.Coverage(), af.failUnder)}
	}
	return nil
}

func renderAnalysis(cmd *cobra.Command, res *driver.Result, af analyzeFlags, quiet bool) error {
	out := cmd.OutOrStdout()
	switch af.format {
	case "json":
		return diagfmt.ReportJSON(out, res)
	case "yaml":
		return diagfmt.ReportYAML(out, res)
	case "issues":
		return diagfmt.ReportIssues(out, res)
	case "sarif":
		return diagfmt.Sarif(out, res, diagfmt.SarifRunMeta{
			ToolName:       appName,
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		color, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		return diagfmt.ReportPretty(out, res, diagfmt.ReportOpts{
			Color:       color,
			Verbose:     af.verbose,
			SummaryOnly: af.summary || quiet,
		})
	}
}
