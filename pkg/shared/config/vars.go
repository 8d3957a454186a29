package config

const (
	EnvConfig   = "SOLINT_CONFIG"
	EnvLogLevel = "SOLINT_LOG_LEVEL"

	DefaultConfigFile  = "solint.yml"
	DefaultMaxProblems = 100
	DefaultThreads     = 4
	MaxThreads         = 64
	DefaultFailOn      = "error"
)

var (
	DefaultExtensions  = []string{".sol"}
	DefaultExcludeDirs = []string{"node_modules", ".git", "lib"}

	// FailOnLevels are the accepted values of analyzer.fail_on, most severe first.
	FailOnLevels = []string{"error", "warning", "information", "none"}
)
