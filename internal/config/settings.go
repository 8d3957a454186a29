// Package config turns the YAML configuration into analyzer settings.
package config

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/solint/internal/analyzer"
	sharedconfig "github.com/scan-io-git/solint/pkg/shared/config"
)

// Rules resolves the rules directive. Unset switches stay on.
func Rules(cfg *sharedconfig.Config) analyzer.Rules {
	rules := analyzer.DefaultRules()
	for _, info := range analyzer.Codes() {
		field := "Rules." + fieldName(info.ConfigKey)
		rules.Set(info.Code, sharedconfig.GetBoolValue(cfg, field, true))
	}
	return rules
}

// Disable switches off the checks named in names. A name is either a finding code
// (TX_ORIGIN) or its config key (tx_origin), matched case-insensitively.
func Disable(rules *analyzer.Rules, names []string) error {
	for _, name := range names {
		code, ok := resolveCode(name)
		if !ok {
			return fmt.Errorf("unknown rule %q", name)
		}
		rules.Set(code, false)
	}
	return nil
}

// ValidateRuleNames reports the first entry of names that is not a known rule.
func ValidateRuleNames(names []string) error {
	for _, name := range names {
		if _, ok := resolveCode(name); !ok {
			return fmt.Errorf("unknown rule %q, run 'solint rules' for the list", name)
		}
	}
	return nil
}

// Naming resolves the naming directive, filling unset patterns with the defaults.
func Naming(cfg *sharedconfig.Config) *analyzer.NamingConfig {
	naming := analyzer.DefaultNaming()
	if cfg == nil {
		return &naming
	}
	naming.FunctionPattern = sharedconfig.SetThen(cfg.Naming.FunctionPattern, naming.FunctionPattern)
	naming.VariablePattern = sharedconfig.SetThen(cfg.Naming.VariablePattern, naming.VariablePattern)
	naming.ConstantPattern = sharedconfig.SetThen(cfg.Naming.ConstantPattern, naming.ConstantPattern)
	naming.ContractPattern = sharedconfig.SetThen(cfg.Naming.ContractPattern, naming.ContractPattern)
	return &naming
}

func resolveCode(name string) (analyzer.Code, bool) {
	name = strings.TrimSpace(name)
	for _, info := range analyzer.Codes() {
		if strings.EqualFold(string(info.Code), name) || strings.EqualFold(info.ConfigKey, name) {
			return info.Code, true
		}
	}
	return "", false
}

// fieldName maps a snake_case YAML key onto the Go field holding it.
func fieldName(key string) string {
	var b strings.Builder
	for _, part := range strings.Split(key, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
