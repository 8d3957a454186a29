package analyzer

// Rules switches individual checks on or off. The zero value disables everything;
// use DefaultRules for the usual all-on configuration.
type Rules struct {
	TxOrigin          bool
	Selfdestruct      bool
	Delegatecall      bool
	LowLevelCallValue bool

	MissingSemicolon   bool
	MissingParentheses bool
	MissingBraces      bool
	MissingReturn      bool
	WrongKeywords      bool
	MissingDataType    bool
	MissingPayable     bool

	FunctionNaming bool
	VariableNaming bool
	ContractNaming bool
}

// DefaultRules returns a Rules value with every check enabled.
func DefaultRules() Rules {
	return Rules{
		TxOrigin:           true,
		Selfdestruct:       true,
		Delegatecall:       true,
		LowLevelCallValue:  true,
		MissingSemicolon:   true,
		MissingParentheses: true,
		MissingBraces:      true,
		MissingReturn:      true,
		WrongKeywords:      true,
		MissingDataType:    true,
		MissingPayable:     true,
		FunctionNaming:     true,
		VariableNaming:     true,
		ContractNaming:     true,
	}
}

// flag returns a pointer to the switch guarding code, or nil for unknown codes.
func (r *Rules) flag(code Code) *bool {
	switch code {
	case CodeTxOrigin:
		return &r.TxOrigin
	case CodeSelfdestruct:
		return &r.Selfdestruct
	case CodeDelegatecall:
		return &r.Delegatecall
	case CodeLowLevelCallValue:
		return &r.LowLevelCallValue
	case CodeMissingSemicolon:
		return &r.MissingSemicolon
	case CodeMissingParentheses:
		return &r.MissingParentheses
	case CodeMissingBraces:
		return &r.MissingBraces
	case CodeMissingReturn:
		return &r.MissingReturn
	case CodeWrongKeyword:
		return &r.WrongKeywords
	case CodeMissingDataType:
		return &r.MissingDataType
	case CodeMissingPayable:
		return &r.MissingPayable
	case CodeFunctionNaming:
		return &r.FunctionNaming
	case CodeVariableNaming:
		return &r.VariableNaming
	case CodeContractNaming:
		return &r.ContractNaming
	}
	return nil
}

// Enabled reports whether the check producing code is switched on.
func (r Rules) Enabled(code Code) bool {
	if f := r.flag(code); f != nil {
		return *f
	}
	return false
}

// Set switches the check producing code and reports whether the code is known.
func (r *Rules) Set(code Code, enabled bool) bool {
	f := r.flag(code)
	if f == nil {
		return false
	}
	*f = enabled
	return true
}

// NamingConfig holds the patterns identifiers must match, per category.
type NamingConfig struct {
	FunctionPattern string
	VariablePattern string
	ConstantPattern string
	ContractPattern string
}

// DefaultNaming follows the Solidity style guide: mixedCase functions and variables,
// UPPER_CASE constants and CapWords contracts.
func DefaultNaming() NamingConfig {
	return NamingConfig{
		FunctionPattern: `^[a-z_][a-zA-Z0-9_]*$`,
		VariablePattern: `^[a-z_][a-zA-Z0-9_]*$`,
		ConstantPattern: `^[A-Z_][A-Z0-9_]*$`,
		ContractPattern: `^[A-Z][a-zA-Z0-9]*$`,
	}
}
