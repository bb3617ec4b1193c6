package validate

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// TitleCase normalizes a destination for storage: "itália" -> "Itália".
func TitleCase(s string) string {
	return titleCaser.String(s)
}
