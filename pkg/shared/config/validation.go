package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidateConfig checks the configuration and fills in defaults for unset values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateAnalyzerConfig(&cfg.Analyzer); err != nil {
		return fmt.Errorf("YAML global config: analyzer directive is invalid: %w", err)
	}
	if err := ValidateNamingConfig(&cfg.Naming); err != nil {
		return fmt.Errorf("YAML global config: naming directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks that the log level is one hclog understands.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	switch strings.ToUpper(loggerConfig.Level) {
	case "", "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	}
	return fmt.Errorf("unsupported level %q", loggerConfig.Level)
}

// ValidateAnalyzerConfig checks the analyzer directive and applies defaults.
func ValidateAnalyzerConfig(analyzerConfig *Analyzer) error {
	if analyzerConfig == nil {
		return fmt.Errorf("analyzer configuration is nil")
	}

	if analyzerConfig.MaxProblems == nil {
		v := DefaultMaxProblems
		analyzerConfig.MaxProblems = &v
	} else if *analyzerConfig.MaxProblems < 0 {
		// a negative cap allows no findings
		*analyzerConfig.MaxProblems = 0
	}

	if analyzerConfig.Threads == 0 {
		analyzerConfig.Threads = DefaultThreads
	}
	if err := ValidateThreads(analyzerConfig.Threads); err != nil {
		return err
	}

	analyzerConfig.FailOn = strings.ToLower(SetThen(analyzerConfig.FailOn, DefaultFailOn))
	if err := ValidateFailOn(analyzerConfig.FailOn); err != nil {
		return err
	}

	if len(analyzerConfig.Extensions) == 0 {
		analyzerConfig.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for i, ext := range analyzerConfig.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return fmt.Errorf("extensions must not contain empty values")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		analyzerConfig.Extensions[i] = ext
	}

	if analyzerConfig.ExcludeDirs == nil {
		analyzerConfig.ExcludeDirs = append([]string(nil), DefaultExcludeDirs...)
	}
	return nil
}

// ValidateThreads checks the number of concurrent workers.
func ValidateThreads(threads int) error {
	if threads < 1 || threads > MaxThreads {
		return fmt.Errorf("threads must be between 1 and %d: %d", MaxThreads, threads)
	}
	return nil
}

// ValidateFailOn checks a gate level name.
func ValidateFailOn(level string) error {
	for _, allowed := range FailOnLevels {
		if level == allowed {
			return nil
		}
	}
	return fmt.Errorf("fail_on must be one of %s: %q", strings.Join(FailOnLevels, ", "), level)
}

// ValidateNamingConfig checks that every configured naming pattern compiles.
func ValidateNamingConfig(namingConfig *Naming) error {
	if namingConfig == nil {
		return fmt.Errorf("naming configuration is nil")
	}
	patterns := []struct {
		name    string
		pattern string
	}{
		{"function_pattern", namingConfig.FunctionPattern},
		{"variable_pattern", namingConfig.VariablePattern},
		{"constant_pattern", namingConfig.ConstantPattern},
		{"contract_pattern", namingConfig.ContractPattern},
	}
	for _, p := range patterns {
		if p.pattern == "" {
			continue
		}
		if _, err := regexp.Compile(p.pattern); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return nil
}
