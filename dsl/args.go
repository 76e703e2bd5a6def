package dsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/reoring/skema/internal/validators"
)

// Rule arguments arrive typed from the builders and loosely typed from
// declarative schema files (YAML numbers, RFC 3339 strings). The helpers
// below accept both.

func intArg(a any) (int, error) {
	if f, ok := validators.ToFloat(a); ok {
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("expected an integer argument, got %v", f)
		}
		return int(f), nil
	}
	if s, ok := a.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("expected an integer argument, got %T", a)
}

func floatArg(a any) (float64, error) {
	if f, ok := validators.ToFloat(a); ok {
		return f, nil
	}
	if s, ok := a.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("expected a numeric argument, got %T", a)
}

func stringArg(a any) (string, error) {
	if s, ok := a.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected a string argument, got %T", a)
}

func timeArg(a any) (time.Time, error) {
	switch t := a.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(time.RFC3339, t)
	}
	return time.Time{}, fmt.Errorf("expected a time or RFC 3339 string argument, got %T", a)
}

func regexArg(a any) (*regexp2.Regexp, error) {
	switch t := a.(type) {
	case *regexp2.Regexp:
		return t, nil
	case string:
		return compileRegex(t)
	}
	return nil, fmt.Errorf("expected a pattern argument, got %T", a)
}

// compileRegex compiles ECMAScript-flavoured patterns, so lookaround and
// backreferences behave as users of JavaScript validators expect. A /body/flags
// literal is accepted too; only the i, m and s flags are honoured.
func compileRegex(expr string) (*regexp2.Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if len(expr) > 1 && expr[0] == '/' {
		if end := strings.LastIndexByte(expr, '/'); end > 0 {
			for _, f := range expr[end+1:] {
				switch f {
				case 'i':
					opts |= regexp2.IgnoreCase
				case 'm':
					opts |= regexp2.Multiline
				case 's':
					opts |= regexp2.Singleline
				}
			}
			expr = expr[1:end]
		}
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = time.Second
	return re, nil
}

// pairArg reads a two-element argument: a [2]T-like slice or a map with the
// given keys.
func pairArg(a any, lo, hi string) (any, any, error) {
	switch t := a.(type) {
	case []any:
		if len(t) == 2 {
			return t[0], t[1], nil
		}
	case map[string]any:
		x, ok1 := t[lo]
		y, ok2 := t[hi]
		if ok1 && ok2 {
			return x, y, nil
		}
	case [2]float64:
		return t[0], t[1], nil
	case [2]time.Time:
		return t[0], t[1], nil
	}
	return nil, nil, fmt.Errorf("expected a [%s, %s] pair argument, got %T", lo, hi, a)
}

func fmtFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func params(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}
