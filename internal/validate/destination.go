package validate

import "strings"

// DestinationValidator reports whether a user-supplied destination is accepted.
type DestinationValidator func(input string) bool

// europeanCountries is the fixed allow-list, stored accent-folded and
// lowercased. Matching is substring-based so "quero ir para a França" passes.
var europeanCountries = []string{
	"alemanha",
	"austria",
	"belgica",
	"bulgaria",
	"croacia",
	"dinamarca",
	"escocia",
	"eslovaquia",
	"eslovenia",
	"espanha",
	"estonia",
	"finlandia",
	"franca",
	"grecia",
	"holanda",
	"hungria",
	"inglaterra",
	"irlanda",
	"islandia",
	"italia",
	"letonia",
	"lituania",
	"luxemburgo",
	"malta",
	"noruega",
	"paises baixos",
	"polonia",
	"portugal",
	"reino unido",
	"republica tcheca",
	"romenia",
	"suecia",
	"suica",
	"ucrania",
}

// AllowlistDestination accepts input mentioning a recognized European country.
// Comparison is case-insensitive and accent-insensitive.
func AllowlistDestination(input string) bool {
	folded := strings.ToLower(strings.TrimSpace(FoldAccents(input)))
	if folded == "" {
		return false
	}
	for _, country := range europeanCountries {
		if strings.Contains(folded, country) {
			return true
		}
	}
	return false
}

// OpenDestination accepts any non-empty text.
func OpenDestination(input string) bool {
	return strings.TrimSpace(input) != ""
}

// DestinationByPolicy returns the validator for the configured policy.
// Anything other than "open" gets the strict allow-list.
func DestinationByPolicy(policy string) DestinationValidator {
	if strings.EqualFold(strings.TrimSpace(policy), "open") {
		return OpenDestination
	}
	return AllowlistDestination
}
