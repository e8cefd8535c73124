package location

import (
	"strings"
	"unicode"
)

// Place is a resolved location.
type Place struct {
	City    string
	State   string
	Country string
}

// IsZero reports whether nothing could be resolved.
func (p Place) IsZero() bool {
	return p.City == "" && p.State == "" && p.Country == ""
}

// normalizeName strips non-letter characters and lowercases, so that
// "Navi Mumbai", "navi-mumbai" and "NaviMumbai" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalCity resolves a raw city token against the alias table and the
// gazetteer, returning the gazetteer key and whether the city is known.
func canonicalCity(raw string) (string, bool) {
	key := normalizeName(raw)
	if key == "" {
		return "", false
	}
	if alias, ok := cityAliases[key]; ok {
		return alias, true
	}
	if city, ok := cityIndex[key]; ok {
		return city, true
	}
	return "", false
}

// Resolve parses a free-text location into a Place. Known cities resolve
// through the gazetteer; otherwise the comma-separated parts are taken as
// city[, state[, country]]; otherwise the whole string is treated as a city
// in the default country. Total: never fails.
func Resolve(raw string) Place {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Place{}
	}

	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// A known city anywhere in the string wins, regardless of how the
	// rest of it is written ("Noida, NCR", "Noida (Sector 62)").
	for _, part := range parts {
		if city, ok := canonicalCity(part); ok {
			return Place{City: city, State: cityStates[city], Country: defaultCountry}
		}
	}

	// Comma-split heuristics for unknown places.
	switch len(parts) {
	case 1:
		return Place{City: strings.ToLower(parts[0]), Country: defaultCountry}
	case 2:
		return Place{City: strings.ToLower(parts[0]), State: strings.ToLower(parts[1]), Country: defaultCountry}
	default:
		return Place{
			City:    strings.ToLower(parts[0]),
			State:   strings.ToLower(parts[1]),
			Country: strings.ToLower(parts[len(parts)-1]),
		}
	}
}
