// Package skills provides skill normalization, matching, and scoring against job requisitions.
package skills

import (
	"strings"
	"unicode"
)

// abbreviations maps common tech shorthands to their expanded form.
// Applied word by word after punctuation folding.
var abbreviations = map[string]string{
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"k8s":     "kubernetes",
	"tf":      "terraform",
	"pg":      "postgresql",
	"mongo":   "mongodb",
	"es":      "elasticsearch",
	"ml":      "machine learning",
	"ai":      "artificial intelligence",
	"oop":     "object oriented programming",
	"db":      "database",
	"ci":      "continuous integration",
	"cd":      "continuous deployment",
	"aws":     "amazon web services",
	"gcp":     "google cloud platform",
	"html5":   "html",
	"css3":    "css",
	"nodejs":  "node",
	"reactjs": "react",
	"vuejs":   "vue",
}

// synonyms collapses spelling variants to one canonical token.
// Applied to the whole normalized string as a final pass.
var synonyms = map[string]string{
	"golang":               "go",
	"go lang":              "go",
	"react javascript":     "react",
	"vue javascript":       "vue",
	"node javascript":      "node",
	"angular javascript":   "angular",
	"angularjs":            "angular",
	"next javascript":      "nextjs",
	"express javascript":   "express",
	"postgres":             "postgresql",
	"postgre sql":          "postgresql",
	"ms sql":               "sql server",
	"mssql":                "sql server",
	"my sql":               "mysql",
	"c plus plus":          "c++",
	"cplusplus":            "c++",
	"c sharp":              "c#",
	"csharp":               "c#",
	"dot net":              ".net",
	"dotnet":               ".net",
	"spring boot":          "spring",
	"springboot":           "spring",
	"rest api":             "rest",
	"restful":              "rest",
	"restful api":          "rest",
	"amazon web service":   "amazon web services",
	"google cloud":         "google cloud platform",
	"version control":      "git",
	"github":               "git",
	"gitlab":               "git",
	"unit testing":         "testing",
	"test automation":      "automation testing",
	"scikit learn":         "scikit-learn",
	"sklearn":              "scikit-learn",
	"tensor flow":          "tensorflow",
}

// Normalize canonicalizes a raw skill string into a comparable token.
// It lowercases, trims, folds punctuation to spaces, collapses whitespace,
// expands abbreviations word by word, then collapses synonym variants.
// Total: unknown tokens pass through unchanged.
func Normalize(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return ""
	}

	// Punctuation to space, keeping the characters that distinguish
	// real skill names: c++, c#, .net.
	var b strings.Builder
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#':
			b.WriteRune(r)
		case r == '.' && (strings.HasPrefix(lower, ".net") || strings.HasSuffix(lower, ".net")):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		if expanded, ok := abbreviations[w]; ok {
			words[i] = expanded
		}
	}
	normalized := strings.Join(words, " ")

	if canonical, ok := synonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeAll normalizes a list of raw skills, dropping entries that
// normalize to the empty string and deduplicating the rest in input order.
func NormalizeAll(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		n := Normalize(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
