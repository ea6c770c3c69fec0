package jsonschema

import (
	"encoding/base64"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Formats is the process-wide named table of string-format validators.
// Compiler.RegisterFormat adds to a separate per-Compiler table that is
// consulted first; this map holds the builtins every Compiler falls
// back to.
var Formats = map[string]func(string) bool{
	"boolean":       IsBoolean,
	"byte":          IsByte,
	"date":          IsDate,
	"date-time":     IsDateTime,
	"time":          IsTime,
	"time-duration": IsTimeDuration,
	"decimal":       IsDecimal,
	"email":         IsEmail,
	"hostname":      IsHostname,
	"ip-address":    IsIPAddress,
	"ip-address-v4": IsIPV4,
	"ip-address-v6": IsIPV6,
	"pattern":       IsRegex,
	"semver":        IsSemver,
	"uri":           IsURI,
	"url":           IsURL,
	"uuid":          IsUUID,
	"password":      IsPassword,
}

var (
	isoDateTimeRe = regexp.MustCompile(`(?i)^(\d{4})-?([0-1]\d)-?([0-3]\d)[t\s]?([0-2]\d:?[0-5]\d:?[0-5]\d|23:59:60|235960)(\.\d+)?(z|[+-]\d{2}:\d{2})?$`)
	isoDateRe     = regexp.MustCompile(`(?i)^(\d{4})-?([0-1]\d)-?([0-3]\d)$`)
	isoTimeRe     = regexp.MustCompile(`(?i)^([0-2]\d:?[0-5]\d:?[0-5]\d|23:59:60|235960)(\.\d+)?(z|[+-]\d{2}:\d{2})?$`)
	isoDurationRe = regexp.MustCompile(`(?i)^-?P(?:\d+Y)?(?:\d+M)?(?:\d+W)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+(?:\.\d+)?S)?)?$`)
	hostnameRe    = regexp.MustCompile(`(?i)^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[-0-9a-z]{0,61}[0-9a-z])?)*$`)
	emailRe       = regexp.MustCompile(`(?i)^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	decimalRe     = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	semverRe      = regexp.MustCompile(`(?i)^([0-9]+)\.([0-9]+)\.([0-9]+)(?:-([0-9a-z-]+(?:\.[0-9a-z-]+)*))?(?:\+([0-9a-z-]+(?:\.[0-9a-z-]+)*))?$`)
	uriRe         = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:\S*$`)

	truthyTokens = map[string]bool{"1": true, "ok": true, "yes": true, "y": true, "yup": true, "true": true, "t": true, "on": true}
	falsyTokens  = map[string]bool{"0": true, "no": true, "n": true, "nope": true, "false": true, "f": true, "off": true}
)

// IsBoolean accepts the truthy/falsy token vocabulary used by form-style
// inputs, not just Go's literal "true"/"false".
func IsBoolean(s string) bool {
	lower := strings.ToLower(s)
	return truthyTokens[lower] || falsyTokens[lower]
}

// IsByte reports whether s is valid standard base64.
func IsByte(s string) bool {
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}

// IsDateTime reports whether s is a full-date plus full-time production
// per RFC 3339 section 5.6.
func IsDateTime(s string) bool {
	return isoDateTimeRe.MatchString(s)
}

// IsDate reports whether s is a full-date production per RFC 3339 section 5.6.
func IsDate(s string) bool {
	return isoDateRe.MatchString(s)
}

// IsTime reports whether s is a full-time production per RFC 3339 section 5.6.
func IsTime(s string) bool {
	return isoTimeRe.MatchString(s)
}

// IsTimeDuration reports whether s is an ISO 8601 duration, e.g. "P3Y6M4DT12H30M5S".
func IsTimeDuration(s string) bool {
	if !isoDurationRe.MatchString(s) {
		return false
	}
	return s != "P" && s != "-P"
}

// IsDecimal reports whether s parses as a finite base-10 decimal number.
func IsDecimal(s string) bool {
	return decimalRe.MatchString(s)
}

// IsEmail reports whether s looks like an Internet email address. This
// willfully diverges from RFC 5322 in favor of a practical subset; the
// only reliable email validator is sending a message.
func IsEmail(s string) bool {
	if !emailRe.MatchString(s) || strings.Contains(s, "..") {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// IsHostname reports whether s is a valid Internet hostname per RFC 1034/1123.
func IsHostname(s string) bool {
	return len(s) <= 253 && hostnameRe.MatchString(s)
}

// IsIPAddress reports whether s parses as either an IPv4 or IPv6 address.
func IsIPAddress(s string) bool {
	return IsIPV4(s) || IsIPV6(s)
}

// IsIPV4 reports whether s is a dotted-quad IPv4 address.
func IsIPV4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
}

// IsIPV6 reports whether s is a colon-separated IPv6 address.
func IsIPV6(s string) bool {
	return strings.Contains(s, ":") && net.ParseIP(s) != nil
}

// IsRegex reports whether s compiles as a regular expression, used both
// as the "pattern" format and to pre-validate regex-bearing keywords.
func IsRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

// IsSemver reports whether s is a semantic version per semver.org.
func IsSemver(s string) bool {
	return semverRe.MatchString(s)
}

// IsURI reports whether s has a scheme, loosely per RFC 3986.
func IsURI(s string) bool {
	return uriRe.MatchString(s)
}

// IsURL reports whether s parses as an absolute http(s)/ftp URL with a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ftp":
		return true
	default:
		return false
	}
}

// IsUUID reports whether s is a valid RFC 4122 UUID.
func IsUUID(s string) bool {
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			c := s[0]
			hex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, n := range groups {
		if !parseHex(n) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

// IsPassword always accepts: it exists only so "password" can be named
// in a schema's format without triggering the unknown-format path, the
// same stance opyapi's validate_format_password takes.
func IsPassword(string) bool {
	return true
}
