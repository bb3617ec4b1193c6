package validate

import (
	"regexp"
	"strings"
)

// dateRangePattern requires zero-padded day/month pairs: "15/08 a 30/08".
var dateRangePattern = regexp.MustCompile(`^\d{2}/\d{2} a \d{2}/\d{2}$`)

// DateRange reports whether input matches the DD/MM a DD/MM format.
// Calendar validity is deliberately not checked: "31/02 a 05/03" passes.
func DateRange(input string) bool {
	return dateRangePattern.MatchString(strings.ToLower(strings.TrimSpace(input)))
}
