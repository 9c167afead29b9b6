package validation

import (
	"strings"
)

const phoneDigits = 10

// TrimString trims the ends and collapses inner runs of whitespace to one space
func TrimString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatPhoneInput keeps only digits, caps them at 10 and formats what is there
// as (XXX)-XXX-XXXX while the user types.
func FormatPhoneInput(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == phoneDigits {
				break
			}
		}
	}

	d := digits.String()
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ")-" + d[3:]
	default:
		return "(" + d[:3] + ")-" + d[3:6] + "-" + d[6:]
	}
}
