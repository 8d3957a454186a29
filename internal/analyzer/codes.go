package analyzer

// Code names the rule that produced a finding. Values are stable and caller-facing.
type Code string

const (
	CodeTxOrigin           Code = "TX_ORIGIN"
	CodeSelfdestruct       Code = "SELFDESTRUCT"
	CodeDelegatecall       Code = "DELEGATECALL"
	CodeLowLevelCallValue  Code = "LOW_LEVEL_CALL_VALUE"
	CodeMissingSemicolon   Code = "MISSING_SEMICOLON"
	CodeMissingBraces      Code = "MISSING_BRACES"
	CodeMissingParentheses Code = "MISSING_PARENTHESES"
	CodeMissingDataType    Code = "MISSING_DATA_TYPE"
	CodeWrongKeyword       Code = "WRONG_KEYWORD"
	CodeMissingPayable     Code = "MISSING_PAYABLE"
	CodeMissingReturn      Code = "MISSING_RETURN"
	CodeFunctionNaming     Code = "FUNCTION_NAMING"
	CodeVariableNaming     Code = "VARIABLE_NAMING"
	CodeContractNaming     Code = "CONTRACT_NAMING"
)

// CodeInfo describes a finding code for rule listings and report metadata.
type CodeInfo struct {
	Code        Code
	Severity    Severity
	ConfigKey   string // ConfigKey is the YAML key under "rules" that toggles the check.
	Description string
}

var codeTable = []CodeInfo{
	{CodeTxOrigin, SeverityWarning, "tx_origin", "Use of tx.origin, which is spoofable across call chains when used for authorization."},
	{CodeSelfdestruct, SeverityWarning, "selfdestruct", "Call to selfdestruct or suicide, which irreversibly removes contract code."},
	{CodeDelegatecall, SeverityWarning, "delegatecall", "Call to delegatecall, which executes foreign code in the caller's storage context."},
	{CodeLowLevelCallValue, SeverityWarning, "low_level_call_value", "Low-level call transferring value, a common reentrancy surface."},
	{CodeMissingSemicolon, SeverityError, "missing_semicolon", "Statement or declaration without a terminating semicolon."},
	{CodeMissingBraces, SeverityError, "missing_braces", "Unbalanced curly braces."},
	{CodeMissingParentheses, SeverityError, "missing_parentheses", "Bare word that looks like a call without parentheses."},
	{CodeMissingDataType, SeverityError, "missing_data_type", "Variable, tuple slot or parameter declared without a type, and later uses of it."},
	{CodeWrongKeyword, SeverityWarning, "wrong_keywords", "Deprecated keyword such as var or suicide."},
	{CodeMissingPayable, SeverityWarning, "missing_payable", "Function header without payable in a contract that moves ether."},
	{CodeMissingReturn, SeverityError, "missing_return", "Function declaring return values without a return statement (assisted parse only)."},
	{CodeFunctionNaming, SeverityError, "function_naming", "Function name that is malformed or does not match the function pattern."},
	{CodeVariableNaming, SeverityError, "variable_naming", "Variable name that is malformed or does not match the variable or constant pattern."},
	{CodeContractNaming, SeverityError, "contract_naming", "Contract, interface or library name that is malformed or does not match the contract pattern."},
}

// Codes returns metadata for every finding code in a stable order.
func Codes() []CodeInfo {
	out := make([]CodeInfo, len(codeTable))
	copy(out, codeTable)
	return out
}

// LookupCode returns the metadata for a code.
func LookupCode(code Code) (CodeInfo, bool) {
	for _, info := range codeTable {
		if info.Code == code {
			return info, true
		}
	}
	return CodeInfo{}, false
}

// Severity returns the fixed severity of the code.
func (c Code) Severity() Severity {
	if info, ok := LookupCode(c); ok {
		return info.Severity
	}
	return SeverityInformation
}

// Description returns a one-line description of the code.
func (c Code) Description() string {
	if info, ok := LookupCode(c); ok {
		return info.Description
	}
	return ""
}
