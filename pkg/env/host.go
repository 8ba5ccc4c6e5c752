package env

import (
	"os"
	"strings"
)

const (
	// PlainTextVar forces or disables plain-text summaries.
	PlainTextVar = "TESTER_PLAIN_TEXT"

	// GatewayVar is set by web servers running a program
	// through CGI.
	GatewayVar = "GATEWAY_INTERFACE"
)

// DetectPlainText reports whether summaries should be rendered
// as plain text, using the process environment.
func DetectPlainText() bool {
	return DetectPlainTextFrom(os.Getenv)
}

// DetectPlainTextFrom reports whether summaries should be plain
// text. A valid boolean in PlainTextVar wins. Otherwise the
// output is plain unless the program runs behind a CGI gateway,
// where it is wrapped for display in a browser.
func DetectPlainTextFrom(getenv func(string) string) bool {
	if v, ok := ParseBool(getenv(PlainTextVar)); ok {
		return v
	}
	return getenv(GatewayVar) == ""
}

// ParseBool parses the boolean words "1", "true", "on", "yes" and
// "0", "false", "off", "no" case-insensitively. ok is false for
// blank or any other input.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}
