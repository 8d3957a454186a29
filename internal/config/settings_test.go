package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/solint/internal/analyzer"
	sharedconfig "github.com/scan-io-git/solint/pkg/shared/config"
)

func boolPtr(v bool) *bool { return &v }

func TestRulesDefaultsToEnabled(t *testing.T) {
	assert.Equal(t, analyzer.DefaultRules(), Rules(nil))
	assert.Equal(t, analyzer.DefaultRules(), Rules(&sharedconfig.Config{}))
}

func TestRulesHonoursConfig(t *testing.T) {
	cfg := &sharedconfig.Config{Rules: sharedconfig.Rules{
		TxOrigin:          boolPtr(false),
		WrongKeywords:     boolPtr(false),
		LowLevelCallValue: boolPtr(true),
	}}

	rules := Rules(cfg)
	assert.False(t, rules.TxOrigin)
	assert.False(t, rules.WrongKeywords)
	assert.True(t, rules.LowLevelCallValue)
	assert.True(t, rules.ContractNaming)
}

func TestEveryConfigKeyMapsToAField(t *testing.T) {
	off := boolPtr(false)
	cfg := &sharedconfig.Config{Rules: sharedconfig.Rules{
		TxOrigin: off, Selfdestruct: off, Delegatecall: off, LowLevelCallValue: off,
		MissingSemicolon: off, MissingBraces: off, MissingParentheses: off, MissingDataType: off,
		WrongKeywords: off, MissingPayable: off, MissingReturn: off,
		FunctionNaming: off, VariableNaming: off, ContractNaming: off,
	}}

	rules := Rules(cfg)
	for _, info := range analyzer.Codes() {
		assert.False(t, rules.Enabled(info.Code), info.ConfigKey)
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "LowLevelCallValue", fieldName("low_level_call_value"))
	assert.Equal(t, "TxOrigin", fieldName("tx_origin"))
	assert.Equal(t, "Selfdestruct", fieldName("selfdestruct"))
}

func TestDisable(t *testing.T) {
	rules := analyzer.DefaultRules()
	require.NoError(t, Disable(&rules, []string{"TX_ORIGIN", "missing_semicolon", " Delegatecall "}))
	assert.False(t, rules.TxOrigin)
	assert.False(t, rules.MissingSemicolon)
	assert.False(t, rules.Delegatecall)
	assert.True(t, rules.Selfdestruct)

	assert.Error(t, Disable(&rules, []string{"NO_SUCH_RULE"}))
}

func TestValidateRuleNames(t *testing.T) {
	assert.NoError(t, ValidateRuleNames([]string{"contract_naming", "WRONG_KEYWORD"}))
	assert.NoError(t, ValidateRuleNames(nil))
	assert.Error(t, ValidateRuleNames([]string{"contract_naming", "bogus"}))
}

func TestNaming(t *testing.T) {
	def := analyzer.DefaultNaming()
	assert.Equal(t, &def, Naming(nil))

	cfg := &sharedconfig.Config{Naming: sharedconfig.Naming{ContractPattern: `^C[A-Za-z]+$`}}
	got := Naming(cfg)
	assert.Equal(t, `^C[A-Za-z]+$`, got.ContractPattern)
	assert.Equal(t, def.FunctionPattern, got.FunctionPattern)
	assert.Equal(t, def.ConstantPattern, got.ConstantPattern)
}
