// Package textutil classifies code points and compares, trims, and expands rune ranges of two texts.
//
// All offsets are rune indices. Whitespace means exactly ' ', '\t' and '\n'; punctuation means the fixed ASCII set !"#$%&'()*+,-./:;<=>?@[\]^`{|}~ (notably not '_').
package textutil

import "unicode"

// IsWhitespace reports whether r is a space, tab, or newline.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// IsPunctuation reports whether r is one of the ASCII punctuation characters.
func IsPunctuation(r rune) bool {
	switch {
	case r >= 33 && r <= 47:
		return true
	case r >= 58 && r <= 64:
		return true
	case r >= 91 && r <= 94:
		return true
	case r == 96:
		return true
	case r >= 123 && r <= 126:
		return true
	}
	return false
}

// IsAlpha reports whether r is neither whitespace nor punctuation.
func IsAlpha(r rune) bool {
	return !IsWhitespace(r) && !IsPunctuation(r)
}

// IsContinuousScript reports whether r belongs to a script written without spaces between words (ideographs, Hiragana, Katakana, Thai, Javanese). Each such
// character is a word on its own.
func IsContinuousScript(r rune) bool {
	if r < 128 || unicode.IsDigit(r) {
		return false
	}
	return unicode.In(r, unicode.Ideographic, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Thai, unicode.Javanese)
}

// IsWordPart reports whether r continues a multi-character word.
func IsWordPart(r rune) bool {
	return IsAlpha(r) && !IsContinuousScript(r)
}

// IsLeadingSpace reports whether text[start] is whitespace preceded only by whitespace back to the previous newline (or the start of text).
func IsLeadingSpace(text []rune, start int) bool {
	if start < 0 || start >= len(text) || !IsWhitespace(text[start]) {
		return false
	}
	for i := start - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return true
		}
		if !IsWhitespace(text[i]) {
			return false
		}
	}
	return true
}

// IsTrailingSpace reports whether text[end] is whitespace followed only by whitespace up to the next newline (or the end of text).
func IsTrailingSpace(text []rune, end int) bool {
	if end < 0 || end >= len(text) || !IsWhitespace(text[end]) {
		return false
	}
	for i := end; i < len(text); i++ {
		if text[i] == '\n' {
			return true
		}
		if !IsWhitespace(text[i]) {
			return false
		}
	}
	return true
}

// IsLeadingTrailingSpace reports whether text[i] is leading or trailing space of its line.
func IsLeadingTrailingSpace(text []rune, i int) bool {
	return IsLeadingSpace(text, i) || IsTrailingSpace(text, i)
}
