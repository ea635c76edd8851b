package export

import "strings"

// Sanitize prepares display text for flat-file layout: bullets become
// dashes, decorative glyphs are dropped, and leading indentation is
// stripped per line.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '•':
			b.WriteRune('-')
		case isDecorative(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// isDecorative reports whether a rune is an emoji, dingbat or private-use
// glyph that has no place in a plain-text report.
func isDecorative(r rune) bool {
	switch {
	case r >= 0x2011 && r <= 0x27BF: // general punctuation through dingbats
		return true
	case r >= 0xE000 && r <= 0xF8FF: // private use area
		return true
	case r >= 0x1F000: // emoji planes
		return true
	case r == 0xFE0F: // variation selector carried by emoji sequences
		return true
	}
	return false
}
