package dsl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/validators"
	js "github.com/reoring/skema/jsonschema"
)

// Format schemas are string schemas with one extra check. They keep the
// string family methods, so Email().Max(254) works.

func formatSchema(name string, msg []string) StringSchema {
	return String().with(name, nil, msg)
}

func Email(msg ...string) StringSchema       { return formatSchema("email", msg) }
func UUID(msg ...string) StringSchema        { return formatSchema("uuid", msg) }
func JWT(msg ...string) StringSchema         { return formatSchema("jwt", msg) }
func NanoID(msg ...string) StringSchema      { return formatSchema("nanoid", msg) }
func CUID(msg ...string) StringSchema        { return formatSchema("cuid", msg) }
func CUID2(msg ...string) StringSchema       { return formatSchema("cuid2", msg) }
func ULID(msg ...string) StringSchema        { return formatSchema("ulid", msg) }
func URL(msg ...string) StringSchema         { return formatSchema("url", msg) }
func HTTPURL(msg ...string) StringSchema     { return formatSchema("httpUrl", msg) }
func Hostname(msg ...string) StringSchema    { return formatSchema("hostname", msg) }
func IPv4(msg ...string) StringSchema        { return formatSchema("ipv4", msg) }
func IPv6(msg ...string) StringSchema        { return formatSchema("ipv6", msg) }
func MAC(msg ...string) StringSchema         { return formatSchema("mac", msg) }
func CIDRv4(msg ...string) StringSchema      { return formatSchema("cidrv4", msg) }
func CIDRv6(msg ...string) StringSchema      { return formatSchema("cidrv6", msg) }
func Base64(msg ...string) StringSchema      { return formatSchema("base64", msg) }
func Base64URL(msg ...string) StringSchema   { return formatSchema("base64url", msg) }
func Hex(msg ...string) StringSchema         { return formatSchema("hex", msg) }
func Emoji(msg ...string) StringSchema       { return formatSchema("emoji", msg) }
func ISODate(msg ...string) StringSchema     { return formatSchema("isoDate", msg) }
func ISOTime(msg ...string) StringSchema     { return formatSchema("isoTime", msg) }
func ISODatetime(msg ...string) StringSchema { return formatSchema("isoDatetime", msg) }
func ISODuration(msg ...string) StringSchema { return formatSchema("isoDuration", msg) }

// Hash accepts hex digests of algo: md5, sha1, sha256, sha384 or sha512.
// It panics on an unknown algorithm.
func Hash(algo string, msg ...string) StringSchema { return String().with("hash", algo, msg) }

// Regex is a string schema that must match pattern.
func Regex(pattern string, msg ...string) StringSchema { return String().Regex(pattern, msg...) }

// StringBool accepts only "true" and "false".
func StringBool(msg ...string) StringSchema { return String().with("stringBool", nil, msg) }

func init() {
	formats := []struct {
		name    string
		jsonFmt string
		pred    func(any) bool
	}{
		{"email", "email", validators.Email},
		{"uuid", "uuid", validators.UUID},
		{"jwt", "", validators.JWT},
		{"nanoid", "", validators.NanoID},
		{"cuid", "", validators.CUID},
		{"cuid2", "", validators.CUID2},
		{"ulid", "", validators.ULID},
		{"url", "uri", validators.URL},
		{"httpUrl", "uri", validators.HTTPURL},
		{"hostname", "hostname", validators.Hostname},
		{"ipv4", "ipv4", validators.IPv4},
		{"ipv6", "ipv6", validators.IPv6},
		{"mac", "", validators.MAC},
		{"cidrv4", "", validators.CIDRv4},
		{"cidrv6", "", validators.CIDRv6},
		{"base64", "", validators.Base64},
		{"base64url", "", validators.Base64URL},
		{"hex", "", validators.Hex},
		{"emoji", "", validators.Emoji},
		{"isoDate", "date", validators.ISODate},
		{"isoTime", "time", validators.ISOTime},
		{"isoDatetime", "date-time", validators.ISODatetime},
		{"isoDuration", "duration", validators.ISODuration},
	}
	for _, f := range formats {
		var project skema.ProjectFunc
		if f.jsonFmt != "" {
			project = format(f.jsonFmt)
		}
		check(FamilyString, f.name, skema.CodeInvalidFormat, f.pred, project)
	}

	define("hash", ruleDef{
		family: FamilyString,
		entry: skema.ValidatorEntry(skema.Predicate(func(v, a any) bool {
			algo, _ := a.(string)
			return validators.Hash(v, algo)
		}), func(s *js.Schema, a any) {
			algo, _ := a.(string)
			if n, ok := validators.HashLengths[algo]; ok {
				s.Pattern = fmt.Sprintf("^[a-fA-F0-9]{%d}$", n)
			}
		}),
		rule: func(a any, msg string) (skema.Rule, error) {
			algo, err := stringArg(a)
			if err != nil {
				return skema.Rule{}, err
			}
			algo = strings.ToLower(algo)
			if _, ok := validators.HashLengths[algo]; !ok {
				known := make([]string, 0, len(validators.HashLengths))
				for k := range validators.HashLengths {
					known = append(known, k)
				}
				sort.Strings(known)
				return skema.Rule{}, fmt.Errorf("unknown hash algorithm %q (want one of %s)", algo, strings.Join(known, ", "))
			}
			return skema.Check("hash", skema.CodeInvalidFormat, algo, params("algo", algo), msg), nil
		},
	})
}
