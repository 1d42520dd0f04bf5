package textutil

import "slices"

// Equal reports whether the two rune slices are identical.
func Equal(text1, text2 []rune) bool {
	return slices.Equal(text1, text2)
}

// EqualIgnoreWhitespace reports whether text1 and text2 are equal once all whitespace is disregarded. Whitespace is only skipped where the texts disagree, so
// "foobar" and "foo bar" are equal but "foobar" and "foobar bar" are not.
func EqualIgnoreWhitespace(text1, text2 []rune) bool {
	i1, i2 := 0, 0
	len1, len2 := len(text1), len(text2)
	for i1 < len1 && i2 < len2 {
		if text1[i1] == text2[i2] {
			i1++
			i2++
			continue
		}

		skipped := false
		for i1 < len1 && IsWhitespace(text1[i1]) {
			skipped = true
			i1++
		}
		for i2 < len2 && IsWhitespace(text2[i2]) {
			skipped = true
			i2++
		}
		if !skipped {
			return false
		}
	}
	for ; i1 < len1; i1++ {
		if !IsWhitespace(text1[i1]) {
			return false
		}
	}
	for ; i2 < len2; i2++ {
		if !IsWhitespace(text2[i2]) {
			return false
		}
	}
	return true
}
