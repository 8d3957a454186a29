package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/solint/internal/analyzer"
	internalconfig "github.com/scan-io-git/solint/internal/config"
	"github.com/scan-io-git/solint/pkg/shared/config"
	"github.com/scan-io-git/solint/pkg/shared/logger"
)

var AppConfig *config.Config

// RuleInfo is one row of the rule listing.
type RuleInfo struct {
	Code        analyzer.Code     `json:"code"`
	Severity    analyzer.Severity `json:"severity"`
	ConfigKey   string            `json:"config_key"`
	Enabled     bool              `json:"enabled"`
	Description string            `json:"description"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewRulesCmd creates the rules command.
func NewRulesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:                   "rules [--json]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "List every check with its severity and the config key that toggles it",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logger.NewLogger(AppConfig, "core-rules")
			list := listRules(AppConfig)
			logger.Debug("listing rules", "count", len(list))
			return printRules(cmd.OutOrStdout(), list, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as JSON.")
	return cmd
}

// listRules describes every code, with its enabled state under cfg.
func listRules(cfg *config.Config) []RuleInfo {
	enabled := internalconfig.Rules(cfg)
	var out []RuleInfo
	for _, info := range analyzer.Codes() {
		out = append(out, RuleInfo{
			Code:        info.Code,
			Severity:    info.Severity,
			ConfigKey:   info.ConfigKey,
			Enabled:     enabled.Enabled(info.Code),
			Description: info.Description,
		})
	}
	return out
}

func printRules(w io.Writer, rules []RuleInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tSEVERITY\tCONFIG KEY\tENABLED\tDESCRIPTION")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", r.Code, r.Severity, r.ConfigKey, r.Enabled, r.Description)
	}
	return tw.Flush()
}
