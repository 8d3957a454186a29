package logger

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/solint/pkg/shared/config"
)

func TestNewLoggerLevelPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		cfgLevel string
		want     hclog.Level
	}{
		{"default", "", "", hclog.Info},
		{"config level", "", "debug", hclog.Debug},
		{"env wins over config", "error", "debug", hclog.Error},
		{"unknown falls back to info", "chatty", "", hclog.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvLogLevel, tt.env)
			cfg := &config.Config{Logger: config.Logger{Level: tt.cfgLevel}}
			assert.Equal(t, tt.want, NewLogger(cfg, "test").GetLevel())
		})
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	defer func() { Output = prev }()

	yes := true
	cfg := &config.Config{Logger: config.Logger{JSONFormat: &yes}}
	NewLogger(cfg, "core-test").Info("scanned", "files", 2)

	assert.Contains(t, buf.String(), `"@module":"core-test"`)
	assert.Contains(t, buf.String(), `"files":2`)
}
