package skema

// RuleKind tags a pipeline step as a validator or a transformer.
type RuleKind int

const (
	Validator RuleKind = iota
	Transformer
)

func (k RuleKind) String() string {
	if k == Transformer {
		return "transformer"
	}
	return "validator"
}

// Rule is one pipeline step. It names a registry entry and carries the
// call-time arguments for it. Rules are values; a pipeline never mutates them.
type Rule struct {
	Name string
	Kind RuleKind
	// Args is interpreted only by the registry entry named by Name.
	Args any
	// Message overrides the translated default failure message.
	Message string
	// Code is reported on the Issue when the rule rejects (validators only).
	Code string
	// Params feed message templates (for example {"min": "5"}).
	Params map[string]string
}

// Check returns a validator rule. An empty code defaults to CodeCustom.
func Check(name, code string, args any, params map[string]string, msg ...string) Rule {
	if code == "" {
		code = CodeCustom
	}
	return Rule{Name: name, Kind: Validator, Args: args, Code: code, Params: params, Message: firstMessage(msg)}
}

// Apply returns a transformer rule.
func Apply(name string, args any) Rule {
	return Rule{Name: name, Kind: Transformer, Args: args}
}

func firstMessage(msg []string) string {
	for _, m := range msg {
		if m != "" {
			return m
		}
	}
	return ""
}
