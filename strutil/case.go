package strutil

import (
	"strings"
	"unicode"
)

// ToSnake converts s to snake_case: "UserID" becomes "user_id",
// "parse HTTPRequest" becomes "parse_http_request".
func ToSnake(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), "_"))
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), "-"))
}

// ToCamel converts s to camelCase: the first word is lowered, the rest
// are capitalized. Acronyms are treated as single words, so "user ID"
// becomes "userId".
func ToCamel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascal converts s to PascalCase.
func ToPascal(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// splitWords breaks s into words at separators (anything that is not a
// letter or digit) and at case boundaries: a lower-to-upper transition,
// a digit-to-upper transition, and the last capital of an acronym run
// ("HTTPServer" splits as "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
