package validate

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseBudget parses a monetary amount in Brazilian surface form: optional
// R$ prefix, thousands dots, decimal comma, optional trailing "mil" (x1000).
// Returns false for anything that does not parse to a positive value.
func ParseBudget(input string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "r$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	mult := 1.0
	if strings.Contains(s, "mil") {
		s = strings.ReplaceAll(s, "mil", "")
		mult = 1000
	}
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * mult, true
}

// Budget reports whether input is an acceptable monetary amount.
func Budget(input string) bool {
	_, ok := ParseBudget(input)
	return ok
}

// FormatBRL renders a value as localized currency: FormatBRL(15000) == "R$15.000,00".
func FormatBRL(v float64) string {
	return "R$" + brlPrinter.Sprintf("%.2f", v)
}
