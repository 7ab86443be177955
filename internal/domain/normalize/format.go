package normalize

import (
	"strings"
	"time"
	"unicode"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// FormatDateLabel renders a stored date as "Jan 2, 2006". Values that do not
// parse are returned unchanged.
func FormatDateLabel(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// HumanizeKey turns a camelCase or snake_case key into a sentence-case label:
// "dateOfBirth" -> "Date of birth", "memberID" -> "Member ID".
func HumanizeKey(key string) string {
	runes := []rune(key)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	for i, w := range words {
		if len(w) > 1 && strings.ToUpper(w) == w {
			continue
		}
		words[i] = strings.ToLower(w)
	}
	if len(words) == 0 {
		return ""
	}
	label := strings.Join(words, " ")
	first := []rune(label)
	first[0] = unicode.ToUpper(first[0])
	return string(first)
}
