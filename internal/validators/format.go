package validators

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

var (
	reEmail       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reJWT         = regexp.MustCompile(`^[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+$`)
	reNanoID      = regexp.MustCompile(`^[A-Za-z0-9_\-]{21}$`)
	reCUID        = regexp.MustCompile(`^c[0-9a-z]{24}$`)
	reCUID2       = regexp.MustCompile(`(?i)^[a-z0-9]{24}$`)
	reULID        = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	reMAC         = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)
	reBase64      = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	reBase64URL   = regexp.MustCompile(`^[A-Za-z0-9\-_]+={0,2}$`)
	reHex         = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	reISODate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reISOTime     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(?:\.\d+)?$`)
	reISODatetime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
	reISODuration = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+S)?)?$`)

	// hostname needs lookaround, which RE2 lacks
	reHostname = regexp2.MustCompile(`^(?=.{1,253}$)(?!-)[a-z0-9-]{1,63}(?<!-)(\.[a-z0-9-]{1,63})*$`, regexp2.ECMAScript|regexp2.IgnoreCase)
)

func matchString(re *regexp.Regexp, v any) bool {
	s, ok := v.(string)
	return ok && re.MatchString(s)
}

func Email(v any) bool     { return matchString(reEmail, v) }
func JWT(v any) bool       { return matchString(reJWT, v) }
func NanoID(v any) bool    { return matchString(reNanoID, v) }
func CUID(v any) bool      { return matchString(reCUID, v) }
func CUID2(v any) bool     { return matchString(reCUID2, v) }
func ULID(v any) bool      { return matchString(reULID, v) }
func MAC(v any) bool       { return matchString(reMAC, v) }
func Base64(v any) bool    { return matchString(reBase64, v) }
func Base64URL(v any) bool { return matchString(reBase64URL, v) }
func Hex(v any) bool       { return matchString(reHex, v) }
func ISODate(v any) bool   { return matchString(reISODate, v) }
func ISOTime(v any) bool   { return matchString(reISOTime, v) }

func ISODatetime(v any) bool { return matchString(reISODatetime, v) }

// ISODuration accepts PnYnMnDTnHnMnS. A bare "P" is rejected.
func ISODuration(v any) bool {
	s, ok := v.(string)
	return ok && s != "P" && reISODuration.MatchString(s)
}

// UUID accepts the canonical 36-character form of RFC 4122 versions 1 to 5.
func UUID(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	ver := u.Version()
	return ver >= 1 && ver <= 5 && u.Variant() == uuid.RFC4122
}

// URL accepts any absolute URL.
func URL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// HTTPURL accepts absolute http and https URLs with a host.
func HTTPURL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func Hostname(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	m, err := reHostname.MatchString(s)
	return err == nil && m
}

// IPv4 accepts dotted-quad addresses without leading zeros.
func IPv4(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is4()
}

// IPv6 accepts IPv6 addresses, including IPv4-mapped forms, without a zone.
func IPv6(v any) bool {
	s, ok := v.(string)
	if !ok || !strings.Contains(s, ":") {
		return false
	}
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is6() && a.Zone() == ""
}

func CIDRv4(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	p, err := netip.ParsePrefix(s)
	return err == nil && p.Addr().Is4()
}

func CIDRv6(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	p, err := netip.ParsePrefix(s)
	return err == nil && p.Addr().Is6()
}

// HashLengths maps supported digest names to their hex length.
var HashLengths = map[string]int{
	"md5":    32,
	"sha1":   40,
	"sha256": 64,
	"sha384": 96,
	"sha512": 128,
}

// Hash reports whether v is a hex digest of the given algorithm. An unknown
// algorithm never matches.
func Hash(v any, algo string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	n, known := HashLengths[strings.ToLower(algo)]
	return known && len(s) == n && reHex.MatchString(s)
}

// Emoji reports whether v is exactly one user-perceived character whose
// leading rune is pictographic.
func Emoji(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || uniseg.GraphemeClusterCount(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return isPictographic(r)
}

var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1},
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1},
		{Lo: 0x203c, Hi: 0x203c, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x21aa, Stride: 1},
		{Lo: 0x231a, Hi: 0x23ff, Stride: 1},
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1},
		{Lo: 0x25aa, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1},
	},
	LatinOffset: 2,
}

func isPictographic(r rune) bool { return unicode.Is(pictographic, r) }
