package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// US ZIP: 5 digits or ZIP+4
	reZIP      = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	reNonDigit = regexp.MustCompile(`\D`)
	reDate     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// Qty parses a quantity field. Non-numeric, zero, and negative values all
// normalize to 1; there is no rejection channel for bad quantities.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// Phone checks for a valid 10-digit US phone number, ignoring formatting.
func Phone(s string) bool {
	digits := reNonDigit.ReplaceAllString(s, "")
	return len(digits) == 10
}

func ZIP(s string) bool {
	return reZIP.MatchString(strings.TrimSpace(s))
}

// Required trims and reports whether a field has content.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Date checks a YYYY-MM-DD form value.
func Date(s string) bool {
	return reDate.MatchString(strings.TrimSpace(s))
}
