package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprefix/internal/configloader"
	"github.com/yaklabco/mdprefix/internal/logging"
	"github.com/yaklabco/mdprefix/pkg/config"
	"github.com/yaklabco/mdprefix/pkg/reporter"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

// outputFilePermissions is the file mode for --output reports.
const outputFilePermissions = 0o644

type scanFlags struct {
	format    string
	flavor    string
	ignore    []string
	jobs      int
	noTasks   bool
	showBlank bool
	verify    bool
	compact   bool
	quiet     bool
	output    string
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Report the container markers of Markdown files",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

const scanLongDescription = `Scan Markdown files and report the blockquote, list and task markers
found at the start of each line.

By default, scans all .md and .markdown files in the current directory
and subdirectories. Specify paths to scan specific files or directories.

Examples:
  mdprefix scan                        # Scan current directory
  mdprefix scan docs/ README.md        # Scan a directory and a file
  mdprefix scan --format table         # Per-file counts
  mdprefix scan --verify               # Cross-check against goldmark
  mdprefix scan --format json -o r.json  # Write a JSON report atomically`

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor used by --verify: commonmark, gfm")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noTasks, "no-tasks", false, "do not recognize task checkboxes")
	cmd.Flags().BoolVar(&flags.showBlank, "show-blank", false, "list lines without markers in text output")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "cross-check markers against goldmark")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "omit the summary line")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
}

// cliConfig converts the flags the user actually set into a config layer.
func (f *scanFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Ignore:    f.ignore,
		Verify:    f.verify,
		ShowBlank: f.showBlank,
		Output:    f.output,
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("no-tasks") {
		enabled := !f.noTasks
		cfg.TaskLists = &enabled
	}

	return cfg
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldFiles, loadResult.LoadedFrom,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldTaskLists, cfg.TaskListsEnabled(),
		logging.FieldVerify, cfg.Verify,
		logging.FieldJobs, cfg.Jobs,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	start := time.Now()
	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return withExitCode(ExitInternalError, fmt.Errorf("scan: %w", err))
		}
		return withExitCode(ExitIOError, fmt.Errorf("scan: %w", err))
	}

	logger.Debug("scan complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldMismatchesTotal, result.Stats.MismatchesTotal,
		logging.FieldDuration, time.Since(start),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	var out io.Writer = cmd.OutOrStdout()
	var buffered bytes.Buffer
	if cfg.Output != "" {
		out = &buffered
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowBlank:   cfg.ShowBlank,
		ShowSummary: !flags.quiet,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("create reporter: %w", err))
	}

	mismatches, err := rep.Report(ctx, result)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if cfg.Output != "" {
		if err := renameio.WriteFile(cfg.Output, buffered.Bytes(), outputFilePermissions); err != nil {
			return withExitCode(ExitIOError, fmt.Errorf("write report: %w", err))
		}
		logger.Debug("report written", logging.FieldOutput, cfg.Output)
	}

	if result.HasErrors() {
		return withExitCode(ExitIOError,
			fmt.Errorf("%d of %d files could not be scanned", result.Stats.FilesErrored, result.Stats.FilesDiscovered))
	}

	if mismatches > 0 {
		return ErrMismatchesFound
	}

	return nil
}
