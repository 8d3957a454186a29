package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the YAML configuration of solint.
type Config struct {
	Logger   Logger   `yaml:"logger"`
	Analyzer Analyzer `yaml:"analyzer"`
	Rules    Rules    `yaml:"rules"`
	Naming   Naming   `yaml:"naming"`
}

type Logger struct {
	Level           string `yaml:"level"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
	DisableTime     *bool  `yaml:"disable_time"`
}

type Analyzer struct {
	MaxProblems   *int     `yaml:"max_problems"`
	AssistedParse *bool    `yaml:"assisted_parse"`
	Threads       int      `yaml:"threads"`
	FailOn        string   `yaml:"fail_on"`
	Extensions    []string `yaml:"extensions"`
	ExcludeDirs   []string `yaml:"exclude_dirs"`
}

// Rules toggles individual checks. A nil value means the check keeps its default.
type Rules struct {
	TxOrigin           *bool `yaml:"tx_origin"`
	Selfdestruct       *bool `yaml:"selfdestruct"`
	Delegatecall       *bool `yaml:"delegatecall"`
	LowLevelCallValue  *bool `yaml:"low_level_call_value"`
	MissingSemicolon   *bool `yaml:"missing_semicolon"`
	MissingBraces      *bool `yaml:"missing_braces"`
	MissingParentheses *bool `yaml:"missing_parentheses"`
	MissingDataType    *bool `yaml:"missing_data_type"`
	WrongKeywords      *bool `yaml:"wrong_keywords"`
	MissingPayable     *bool `yaml:"missing_payable"`
	MissingReturn      *bool `yaml:"missing_return"`
	FunctionNaming     *bool `yaml:"function_naming"`
	VariableNaming     *bool `yaml:"variable_naming"`
	ContractNaming     *bool `yaml:"contract_naming"`
}

type Naming struct {
	FunctionPattern string `yaml:"function_pattern"`
	VariablePattern string `yaml:"variable_pattern"`
	ConstantPattern string `yaml:"constant_pattern"`
	ContractPattern string `yaml:"contract_pattern"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.SetStrict(true)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// NewConfig reads the configuration at configPath. Unset values are filled in by ValidateConfig.
func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}

	return config, nil
}

// ResolveConfigPath picks the configuration file: the explicit path, then the
// SOLINT_CONFIG environment variable, then solint.yml in the working directory.
// An empty result means built-in defaults apply.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	if err := ValidateConfigPath(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// LoadConfig resolves, reads and validates the configuration.
func LoadConfig(explicit string) (*Config, error) {
	cfg := &Config{}
	if path := ResolveConfigPath(explicit); path != "" {
		loaded, err := NewConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
