package strutil

import "strings"

// Truncate returns the first n runes of s. Strings of n runes or fewer
// are returned unchanged. A non-positive n yields the empty string.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// TruncateWords returns the first n whitespace-separated words of s,
// joined by single spaces. A non-positive n yields the empty string.
func TruncateWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

// Ellipsis truncates s to at most n runes, replacing the cut tail with
// "...". The result never exceeds n runes; when n is 3 or less the
// result is just the leading runes with no marker.
func Ellipsis(s string, n int) string {
	runes := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// Mask replaces the middle of s with '*', keeping the first prefix and
// last suffix runes visible. Strings too short to keep both ends are
// masked entirely, so a short secret never leaks through its edges.
func Mask(s string, prefix, suffix int) string {
	if prefix < 0 {
		prefix = 0
	}
	if suffix < 0 {
		suffix = 0
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if prefix+suffix >= len(runes) {
		return strings.Repeat("*", len(runes))
	}
	var b strings.Builder
	b.WriteString(string(runes[:prefix]))
	b.WriteString(strings.Repeat("*", len(runes)-prefix-suffix))
	b.WriteString(string(runes[len(runes)-suffix:]))
	return b.String()
}
