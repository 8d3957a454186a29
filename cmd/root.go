package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/solint/cmd/analyse"
	"github.com/scan-io-git/solint/cmd/rules"
	"github.com/scan-io-git/solint/cmd/version"
	"github.com/scan-io-git/solint/pkg/shared/config"
	"github.com/scan-io-git/solint/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "solint [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Solint is a heuristic linter for Solidity sources.",
		Long: `Solint is a heuristic linter for Solidity sources.
	It reports risky security patterns, likely syntax mistakes and naming-convention violations
	without compiling the code, as text, JSON or SARIF.
	`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $SOLINT_CONFIG, then ./solint.yml)")
	rootCmd.AddCommand(analyse.AnalyseCmd)
	rootCmd.AddCommand(rules.NewRulesCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitOK
	}

	var cmdErr *errors.CommandError
	if stderrors.As(err, &cmdErr) {
		if cmdErr.ExitCode != errors.ExitFindings {
			fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		}
		return cmdErr.ExitCode
	}
	fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
	return errors.ExitFailure
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		return errors.NewCommandError(cfgFile, nil, fmt.Errorf("initializing config file function is crashed: %w", err), errors.ExitFailure)
	}

	analyse.Init(AppConfig)
	rules.Init(AppConfig)
	return nil
}
