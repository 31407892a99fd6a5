// Package textutil provides text normalization for extracted resume content.
// All functions are pure and idempotent.
package textutil

import (
	"strings"
)

// Bullet is the canonical bullet glyph every bullet variant normalizes to.
const Bullet = "•"

// bulletVariants are glyphs treated as bullet markers in extracted text.
var bulletVariants = []string{"◦", "▪", "▫", "●", "○", "■", "□", "‣", "⁃", "∙", "·", "▸", "►", "➤"}

// punctuationReplacer maps typographic punctuation to ASCII equivalents.
var punctuationReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	"…", "...", // ellipsis
	" ", " ", // no-break space
)

// Normalize standardizes whitespace, punctuation, and bullet glyphs in
// extracted text. Runs of spaces and tabs collapse to one space, zero-width
// and control characters are stripped (newlines and tabs survive until the
// whitespace pass), typographic quotes and dashes become ASCII, every bullet
// variant becomes the canonical bullet, runs of three or more blank lines
// collapse to exactly one blank line, and every line is trimmed.
//
// Normalize(Normalize(x)) == Normalize(x) for every input.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = stripInvisible(text)
	text = punctuationReplacer.Replace(text)
	for _, v := range bulletVariants {
		text = strings.ReplaceAll(text, v, Bullet)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(collapseSpaces(line))
	}

	// Collapse 3+ consecutive blank lines to exactly one blank line.
	out := make([]string, 0, len(lines))
	blanks := 0
	flush := func() {
		if blanks >= 3 {
			out = append(out, "")
		} else {
			for i := 0; i < blanks; i++ {
				out = append(out, "")
			}
		}
		blanks = 0
	}
	for _, line := range lines {
		if line == "" {
			blanks++
			continue
		}
		flush()
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

// RemoveIconsSymbols strips emoji and pictograph code points on top of the
// regular normalization. Useful before keyword analysis, where icon fonts
// used as section markers would otherwise leak into tokens.
func RemoveIconsSymbols(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isIconRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return Normalize(b.String())
}

// stripInvisible removes zero-width characters and control characters other
// than newline and tab.
func stripInvisible(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
			continue
		case '\n', '\t':
			b.WriteRune(r)
			continue
		case '\r':
			// CRLF folds into the newline pass.
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSpaces reduces runs of spaces and tabs to a single space.
func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inRun := false
	for _, r := range line {
		if r == ' ' || r == '\t' {
			inRun = true
			continue
		}
		if inRun {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			inRun = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isIconRune reports whether the rune falls in an emoji or pictograph block.
func isIconRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map symbols
		return true
	case r >= 0x1F700 && r <= 0x1F77F: // alchemical symbols
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA00 && r <= 0x1FAFF: // extended-A symbols
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	}
	return false
}
