package normalization

import "strings"

// entityAliases maps the spellings seen on the wire to their canonical entity name.
var entityAliases = map[string]string{
	"":        "",
	"-":       "",
	"default": "",

	"restaurant":  "restaurants",
	"restaurants": "restaurants",
	"foodie":      "restaurants",

	"system":  "system",
	"console": "system",
}

var canonicalEntities = map[string]bool{
	"restaurants": true,
	"system":      true,
}

// NormalizeEntity converts an entity name to its canonical form. Casing, surrounding
// space and underscores are ignored; unknown names come back normalized but unaliased.
//
//	NormalizeEntity(" Restaurant ") => "restaurants"
//	NormalizeEntity("CONSOLE") => "system"
func NormalizeEntity(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	normalized := strings.ReplaceAll(trimmed, "_", "-")
	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	return normalized
}

// IsValidEntity reports whether raw names an entity this service handles.
func IsValidEntity(raw string) bool {
	return canonicalEntities[NormalizeEntity(raw)]
}
