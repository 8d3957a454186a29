package logger

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/solint/pkg/shared/config"
)

// Output receives every logger built by NewLogger. Reports own stdout.
var Output io.Writer = os.Stderr

func NewLogger(cfg *config.Config, name string) hclog.Logger {
	var logLevel hclog.Level

	// env variable has the first priority
	if logLevelEnv := os.Getenv(config.EnvLogLevel); logLevelEnv != "" {
		logLevel = getLogLevel(strings.ToUpper(logLevelEnv))
	} else if cfg != nil && cfg.Logger.Level != "" {
		logLevel = getLogLevel(strings.ToUpper(cfg.Logger.Level))
	} else {
		logLevel = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Output:          Output,
		Level:           logLevel,
		JSONFormat:      config.GetBoolValue(cfg, "Logger.JSONFormat", false),
		IncludeLocation: config.GetBoolValue(cfg, "Logger.IncludeLocation", false),
		DisableTime:     config.GetBoolValue(cfg, "Logger.DisableTime", true),
	})
}

func getLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}
