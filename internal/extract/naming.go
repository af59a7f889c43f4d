package extract

import "strings"

// PascalCase converts a kebab- or snake-case file stem to PascalCase.
// "user-profile" becomes "UserProfile". Only ASCII letters are upper-cased.
func PascalCase(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	upperNext := true
	for i := 0; i < len(stem); i++ {
		c := stem[i]
		switch {
		case c == '-' || c == '_':
			upperNext = true
		case upperNext:
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			upperNext = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SynthesizeName builds the conventional class name for a file stem when the
// source declares none: PascalCase(stem) followed by suffix.
func SynthesizeName(stem, suffix string) string {
	return PascalCase(stem) + suffix
}
