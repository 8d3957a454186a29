package rules

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/pkg/shared/config"
)

func TestListRules(t *testing.T) {
	off := false
	cfg := &config.Config{Rules: config.Rules{Selfdestruct: &off}}

	rules := listRules(cfg)
	require.Len(t, rules, len(analyzer.Codes()))
	for _, r := range rules {
		if r.Code == analyzer.CodeSelfdestruct {
			assert.False(t, r.Enabled)
			assert.Equal(t, "selfdestruct", r.ConfigKey)
			continue
		}
		assert.True(t, r.Enabled, r.Code)
	}
}

func TestPrintRulesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, listRules(nil), false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(analyzer.Codes())+1)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, buf.String(), "TX_ORIGIN")
	assert.Contains(t, buf.String(), "missing_semicolon")
}

func TestPrintRulesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, listRules(nil), true))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.NotEmpty(t, decoded)
	assert.Equal(t, "TX_ORIGIN", decoded[0]["code"])
	assert.Equal(t, "warning", decoded[0]["severity"])
	assert.Equal(t, true, decoded[0]["enabled"])
}
