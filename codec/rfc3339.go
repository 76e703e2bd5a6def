package codec

import (
	"strconv"
	"time"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

const (
	ruleRFC3339  = "rfc3339"
	ruleDuration = "duration"
)

// family holds the wire-format checks the codecs need on top of dsl.
func family() skema.Family {
	return skema.Family{
		Name: "codec",
		Entries: map[string]skema.Entry{
			ruleRFC3339: skema.ValidatorEntry(skema.Predicate(func(v, _ any) bool {
				s, ok := v.(string)
				if !ok {
					return false
				}
				_, err := parseRFC3339(s)
				return err == nil
			}), nil),
			ruleDuration: skema.ValidatorEntry(skema.Predicate(func(v, _ any) bool {
				s, ok := v.(string)
				if !ok {
					return false
				}
				_, err := time.ParseDuration(s)
				return err == nil
			}), nil),
		},
	}
}

// TimeRFC3339 converts between RFC 3339 strings and time.Time. Encoding
// normalizes to UTC.
func TimeRFC3339(msg ...string) Codec[string, time.Time] {
	m := "must be an RFC 3339 timestamp"
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	in := dsl.String().WithRegistry(Registry()).Schema.
		Append(skema.Check(ruleRFC3339, skema.CodeInvalidFormat, nil, nil, m))
	out := skema.Transform(in, func(s string) time.Time {
		t, _ := parseRFC3339(s)
		return t
	})
	return New(in, out, formatRFC3339Canonical)
}

// Duration converts between Go duration strings ("1h30m") and time.Duration.
func Duration(msg ...string) Codec[string, time.Duration] {
	m := "must be a duration such as 1h30m"
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	in := dsl.String().WithRegistry(Registry()).Schema.
		Append(skema.Check(ruleDuration, skema.CodeInvalidFormat, nil, nil, m))
	out := skema.Transform(in, func(s string) time.Duration {
		d, _ := time.ParseDuration(s)
		return d
	})
	return New(in, out, time.Duration.String)
}

// StringBool converts between the strings "true"/"false" and bool.
func StringBool(msg ...string) Codec[string, bool] {
	in := dsl.StringBool(msg...).Schema
	out := skema.Transform(in, func(s string) bool { return s == "true" })
	return New(in, out, strconv.FormatBool)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
