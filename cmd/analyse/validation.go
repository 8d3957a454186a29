package analyse

import (
	"fmt"
	"os"
	"strings"

	internalconfig "github.com/scan-io-git/solint/internal/config"
	"github.com/scan-io-git/solint/internal/report"
	"github.com/scan-io-git/solint/internal/scanner"
	"github.com/scan-io-git/solint/pkg/shared/config"
	"github.com/scan-io-git/solint/pkg/shared/files"
)

// validateAnalyseArgs validates the arguments provided to the analyse command.
func validateAnalyseArgs(allArgumentsAnalyse *RunOptionsAnalyse, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one target path must be specified")
	}

	if _, err := report.ParseFormat(allArgumentsAnalyse.ReportFormat); err != nil {
		return err
	}

	if err := config.ValidateThreads(allArgumentsAnalyse.Threads); err != nil {
		return fmt.Errorf("the 'threads' flag is invalid: %w", err)
	}

	if allArgumentsAnalyse.MaxProblems < 0 {
		return fmt.Errorf("the 'max-problems' flag must not be negative: %d", allArgumentsAnalyse.MaxProblems)
	}

	allArgumentsAnalyse.FailOn = strings.ToLower(strings.TrimSpace(allArgumentsAnalyse.FailOn))
	if err := config.ValidateFailOn(allArgumentsAnalyse.FailOn); err != nil {
		return fmt.Errorf("the 'fail-on' flag is invalid: %w", err)
	}

	if err := internalconfig.ValidateRuleNames(allArgumentsAnalyse.Disable); err != nil {
		return fmt.Errorf("the 'disable' flag is invalid: %w", err)
	}

	onlyStdin := true
	for _, target := range args {
		if target == scanner.StdinArg {
			continue
		}
		onlyStdin = false
		info, err := os.Stat(target)
		if os.IsNotExist(err) {
			return fmt.Errorf("the target path does not exist: %v", target)
		}
		if err == nil && !info.IsDir() {
			if err := files.ValidatePath(target); err != nil {
				return fmt.Errorf("the target path cannot be analysed: %w", err)
			}
		}
	}

	if allArgumentsAnalyse.DiffBase != "" && onlyStdin {
		return fmt.Errorf("the 'diff-base' flag needs at least one target path inside a git repository")
	}

	return nil
}
