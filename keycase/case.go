package keycase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	leadingSeps    = regexp.MustCompile(`^[_.\- ]+`)
	sepThenWord    = regexp.MustCompile(`[_.\- ]+([\p{L}\p{N}_]|$)`)
	digitsThenWord = regexp.MustCompile(`\d+([\p{L}\p{N}_]|$)`)

	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperWord  = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// Camel converts s to camelCase: "foo-bar" => "fooBar",
// "XMLHttpRequest" => "xmlHttpRequest".
func Camel(s string) string { return camel(s, false) }

// Pascal converts s to PascalCase: "foo-bar" => "FooBar".
func Pascal(s string) string { return camel(s, true) }

func camel(s string, pascal bool) string {
	s = strings.TrimSpace(s)
	switch utf8.RuneCountInString(s) {
	case 0:
		return ""
	case 1:
		if pascal {
			return strings.ToUpper(s)
		}
		return strings.ToLower(s)
	}

	if s != strings.ToLower(s) {
		s = splitCaseBoundaries(s)
	}
	s = leadingSeps.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	if pascal && s != "" {
		r, n := utf8.DecodeRuneInString(s)
		s = string(unicode.ToUpper(r)) + s[n:]
	}

	s = replaceGroup(sepThenWord, s, strings.ToUpper)
	return digitsThenWord.ReplaceAllStringFunc(s, strings.ToUpper)
}

// splitCaseBoundaries inserts '-' at lower->Upper transitions and before the
// last capital of an upper-case run followed by a lower-case letter.
func splitCaseBoundaries(s string) string {
	rs := []rune(s)
	var lastLower, lastUpper, lastLastUpper bool
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case lastLower && unicode.IsUpper(c):
			rs = insertRune(rs, i, '-')
			lastLower = false
			lastLastUpper = lastUpper
			lastUpper = true
			i++
		case lastUpper && lastLastUpper && unicode.IsLower(c):
			rs = insertRune(rs, i-1, '-')
			lastLastUpper = lastUpper
			lastUpper = false
			lastLower = true
		default:
			lastLower = unicode.ToLower(c) == c && unicode.ToUpper(c) != c
			lastLastUpper = lastUpper
			lastUpper = unicode.ToUpper(c) == c && unicode.ToLower(c) != c
		}
	}
	return string(rs)
}

func insertRune(rs []rune, i int, r rune) []rune {
	rs = append(rs, 0)
	copy(rs[i+1:], rs[i:])
	rs[i] = r
	return rs
}

// replaceGroup replaces every match of re with f(first capture group).
func replaceGroup(re *regexp.Regexp, s string, f func(string) string) string {
	idx := re.FindAllStringSubmatchIndex(s, -1)
	if idx == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range idx {
		b.WriteString(s[last:m[0]])
		b.WriteString(f(s[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Snake converts s to snake_case: "fooBar" => "foo_bar",
// "XMLHttpRequest" => "xml_http_request". Non-alphanumeric runs become a
// single separator and are trimmed at both ends.
func Snake(s string) string {
	s = lowerUpper.ReplaceAllString(s, "${1}\x00${2}")
	s = upperWord.ReplaceAllString(s, "${1}\x00${2}")
	s = nonAlnum.ReplaceAllString(s, "\x00")
	s = strings.Trim(s, "\x00")

	parts := strings.Split(s, "\x00")
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, "_")
}
