package common

import (
	"strings"
	"unicode"
)

// ToUpperSnake converts a key or platform name to SCREAMING_SNAKE_CASE:
// "KeyA" -> "KEY_A", "Digit0" -> "DIGIT_0", "F10" -> "F10",
// "NumpadAdd" -> "NUMPAD_ADD".
func ToUpperSnake(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i, r := range rs {
		if i > 0 {
			prev := rs[i-1]
			switch {
			case unicode.IsUpper(r) && !unicode.IsUpper(prev):
				b.WriteByte('_')
			case unicode.IsDigit(r) && unicode.IsLetter(prev) && i > 1:
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ToPascalCase upper-cases the first letter of s.
func ToPascalCase(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// FileHeader returns the "generated, do not edit" banner in the comment
// syntax of a target language.
func FileHeader(comment, lang string) string {
	return comment + " Code generated by keynames codegen (" + lang + "). DO NOT EDIT.\n"
}
