package analyse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/solint/cmd/version"
	"github.com/scan-io-git/solint/internal/report"
	"github.com/scan-io-git/solint/internal/scanner"
	"github.com/scan-io-git/solint/pkg/shared"
	"github.com/scan-io-git/solint/pkg/shared/config"
	"github.com/scan-io-git/solint/pkg/shared/errors"
	"github.com/scan-io-git/solint/pkg/shared/files"
	"github.com/scan-io-git/solint/pkg/shared/logger"
)

// RunOptionsAnalyse holds the arguments for the analyse command.
type RunOptionsAnalyse struct {
	ReportFormat string
	OutputPath   string
	Threads      int
	MaxProblems  int
	Assisted     bool
	FailOn       string
	DiffBase     string
	Disable      []string
	NoColor      bool
}

// Global variables for configuration and command arguments
var (
	AppConfig           *config.Config
	analyseOptions      RunOptionsAnalyse
	exampleAnalyseUsage = `  # Analysing every Solidity file under a directory
  solint analyse ./contracts

  # Analysing a single file and standard input
  solint analyse Token.sol -
  cat Token.sol | solint analyse -

  # Writing a SARIF report into a directory
  solint analyse --format sarif --output ./reports ./contracts

  # Failing the build on warnings, ignoring naming checks
  solint analyse --fail-on warning --disable function_naming --disable variable_naming ./contracts

  # Reporting only problems on lines added since main
  solint analyse --diff-base main ./contracts`
)

// AnalyseCmd represents the analyse command.
var AnalyseCmd = &cobra.Command{
	Use:                   "analyse [--format/-f text|json|sarif] [--output/-o PATH] [-j THREADS] [--fail-on LEVEL] [--diff-base REV] PATH...",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyseUsage,
	Short:                 "Analyse Solidity sources with heuristic security, syntax and naming checks",
	Long: `Analyse Solidity sources with heuristic security, syntax and naming checks.

PATH may be a file, a directory walked for the configured extensions, or "-" for standard input.
Exit codes: 0 when the gate passes, 1 when problems at or above --fail-on were found, 2 on usage or IO errors.`,
	RunE: runAnalyseCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runAnalyseCommand executes the analyse command.
func runAnalyseCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-analyse")

	options := analyseOptions
	mergeConfig(cmd.Flags(), AppConfig, &options)

	if err := validateAnalyseArgs(&options, args); err != nil {
		logger.Error("invalid analyse arguments", "error", err)
		return errors.NewCommandError(args, nil, err, errors.ExitFailure)
	}

	return runAnalyse(AppConfig, options, args, cmd.OutOrStdout(), cmd.InOrStdin(), logger)
}

// runAnalyse scans args, writes the report and applies the gate.
func runAnalyse(cfg *config.Config, options RunOptionsAnalyse, args []string, stdout io.Writer, stdin io.Reader, logger hclog.Logger) error {
	format, err := report.ParseFormat(options.ReportFormat)
	if err != nil {
		return errors.NewCommandError(args, nil, err, errors.ExitFailure)
	}

	scanOpts, err := prepareScanOptions(cfg, options, logger)
	if err != nil {
		logger.Error("failed to prepare analyzer settings", "error", err)
		return errors.NewCommandError(args, nil, err, errors.ExitFailure)
	}

	s := scanner.New(scanOpts, logger).WithStdin(stdin)
	result, err := s.Scan(args)
	if err != nil {
		logger.Error("failed to collect targets", "error", err)
		return errors.NewCommandError(args, nil, err, errors.ExitFailure)
	}

	origin := resolveOrigin(args, logger)

	if options.DiffBase != "" {
		if err := applyDiffFilter(&result, origin.Root, options.DiffBase, logger); err != nil {
			logger.Error("failed to apply diff filter", "base", options.DiffBase, "error", err)
			return errors.NewCommandErrorWithResult(result.Launches, err, errors.ExitFailure)
		}
	}

	reportOpts := report.Options{
		Format:      format,
		NoColor:     options.NoColor || options.OutputPath != "",
		ToolVersion: version.CoreVersion,
		RepoRoot:    origin.Root,
		Provenance:  origin.Provenance,
		Repository:  origin.Repository,
	}
	if err := writeReport(&result, reportOpts, options.OutputPath, stdout, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		return errors.NewCommandErrorWithResult(result.Launches, err, errors.ExitFailure)
	}

	if failed := result.Launches.Failed(); len(failed) > 0 {
		for _, launch := range failed {
			logger.Warn("file was not analysed", "path", launch.Args, "error", launch.Message)
		}
		err := fmt.Errorf("%d of %d files could not be read", len(failed), len(result.Launches.Launches))
		return errors.NewCommandErrorWithResult(result.Launches, err, errors.ExitFailure)
	}

	summary := report.CollectSeverityInfo(&result)
	tripped, err := report.Gate(summary, options.FailOn)
	if err != nil {
		return errors.NewCommandErrorWithResult(result.Launches, err, errors.ExitFailure)
	}
	if tripped {
		logger.Info("problems found at or above the fail-on level", "fail_on", options.FailOn, "error", summary.Error, "warning", summary.Warning, "information", summary.Information)
		err := fmt.Errorf("found problems at or above %q", options.FailOn)
		return errors.NewCommandErrorWithResult(result.Launches, err, errors.ExitFindings)
	}

	logger.Debug("analyse command completed successfully", "files", len(result.Files), "problems", summary.Total)
	return nil
}

// writeReport renders the report to stdout or, with an output path, to a file.
func writeReport(result *scanner.Result, opts report.Options, outputPath string, stdout io.Writer, logger hclog.Logger) error {
	if outputPath == "" {
		return report.Write(stdout, result, opts, logger)
	}

	fullPath, folder, err := files.DetermineFileFullPath(outputPath, reportFileName(opts.Format))
	if err != nil {
		return err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, result, opts, logger); err != nil {
		return err
	}
	if err := files.WriteFile(fullPath, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("report saved", "path", fullPath, "format", opts.Format)
	return nil
}

func reportFileName(format report.Format) string {
	return "solint-report." + format.Extension()
}

// bindFlags registers the analyse flags on fs.
func bindFlags(fs *pflag.FlagSet, options *RunOptionsAnalyse) {
	fs.StringVarP(&options.ReportFormat, "format", "f", string(report.FormatText), "Report format: text, json or sarif.")
	fs.StringVarP(&options.OutputPath, "output", "o", "", "Path to the report file or to a directory that receives solint-report.<ext>. Defaults to stdout.")
	fs.IntVarP(&options.Threads, "threads", "j", config.DefaultThreads, "Number of files analysed concurrently.")
	fs.IntVar(&options.MaxProblems, "max-problems", config.DefaultMaxProblems, "Maximum number of problems reported per file.")
	fs.BoolVar(&options.Assisted, "assisted", false, "Run the tree-sitter assisted checks when a Solidity grammar is registered.")
	fs.StringVar(&options.FailOn, "fail-on", config.DefaultFailOn, "Lowest severity that fails the run: error, warning, information or none.")
	fs.StringVar(&options.DiffBase, "diff-base", "", "Only report problems on lines added since this git revision.")
	fs.StringArrayVar(&options.Disable, "disable", nil, "Disable a rule by code or config key. Repeatable.")
	fs.BoolVar(&options.NoColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored text output.")
}

// Initialize flags for the analyse command.
func init() {
	bindFlags(AnalyseCmd.Flags(), &analyseOptions)
	AnalyseCmd.Flags().BoolP("help", "h", false, "Show help for the analyse command.")
}
