// Package termtext measures and fits plain text to terminal cells. Widths come from go-runewidth and cuts happen at grapheme cluster boundaries (UAX #29), so a
// wide character or a combined emoji is never split.
package termtext

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. A nil *Options assumes a non-East Asian locale.
type Options struct {
	EastAsianWidth   bool // if true, treats ambiguous East Asian code points as 2 wide. Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

func (o *Options) condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if o == nil {
		return cond
	}

	cond.EastAsianWidth = o.EastAsianWidth
	if o.EastAsianWidth && o.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}
	return cond
}

// Width returns the number of terminal cells s occupies. s should not contain control characters (see Sanitize).
func Width(s string, opts *Options) int {
	return opts.condition().StringWidth(s)
}

// Grapheme is one grapheme cluster of a string along with its cell width.
type Grapheme struct {
	Text  string
	Width int
}

// Graphemes splits s into grapheme clusters.
func Graphemes(s string, opts *Options) []Grapheme {
	cond := opts.condition()
	var out []Grapheme
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, Grapheme{Text: iter.Value(), Width: cond.StringWidth(iter.Value())})
	}
	return out
}

// Truncate returns the longest prefix of s that fits in width cells, and the width of that prefix. Clusters are never split: if a 2-wide cluster would straddle the
// limit, it is dropped and the result is one cell narrower than width.
func Truncate(s string, width int, opts *Options) (string, int) {
	if width <= 0 || s == "" {
		return "", 0
	}

	cond := opts.condition()
	used := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if used+w > width {
			return s[:iter.Start()], used
		}
		used += w
	}
	return s, used
}

// Pad truncates s to width cells and right-pads it with spaces to exactly width cells.
func Pad(s string, width int, opts *Options) string {
	prefix, used := Truncate(s, width, opts)
	if used == width {
		return prefix
	}
	return prefix + strings.Repeat(" ", width-used)
}

const hexDigits = "0123456789ABCDEF"

// Sanitize makes s safe to print in a terminal.
//   - If tabWidth > 0, it replaces \t with tabWidth spaces. Otherwise, \t is left as-is.
//   - \n is left as-is.
//   - All other ASCII control characters (<= 0x1F and 0x7F) are replaced with "\xXX" (ex: "\x1B" for ESC).
//   - Invalid UTF-8 is replaced by U+FFFD.
func Sanitize(s string, tabWidth int) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}
		i += size

		switch {
		case r == '\t' && tabWidth > 0:
			b.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\t' || r == '\n':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[r>>4])
			b.WriteByte(hexDigits[r&0x0F])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
