package textutil

import "github.com/codalotl/worddiff/internal/diffiter"

// ExpandForward returns how many elements, starting at data1[start1] and data2[start2], are pairwise equal before either end is reached.
func ExpandForward[T comparable](data1, data2 []T, start1, start2, end1, end2 int) int {
	old := start1
	for start1 < end1 && start2 < end2 && data1[start1] == data2[start2] {
		start1++
		start2++
	}
	return start1 - old
}

// ExpandBackward returns how many elements, ending just before data1[end1] and data2[end2], are pairwise equal before either start is reached.
func ExpandBackward[T comparable](data1, data2 []T, start1, start2, end1, end2 int) int {
	old := end1
	for start1 < end1 && start2 < end2 && data1[end1-1] == data2[end2-1] {
		end1--
		end2--
	}
	return old - end1
}

// ExpandWhitespaceForward is ExpandForward restricted to whitespace: it counts equal whitespace characters at the start of both ranges.
func ExpandWhitespaceForward(text1, text2 []rune, start1, start2, end1, end2 int) int {
	old := start1
	for start1 < end1 && start2 < end2 && text1[start1] == text2[start2] && IsWhitespace(text1[start1]) {
		start1++
		start2++
	}
	return start1 - old
}

// ExpandWhitespaceBackward counts equal whitespace characters at the end of both ranges.
func ExpandWhitespaceBackward(text1, text2 []rune, start1, start2, end1, end2 int) int {
	old := end1
	for start1 < end1 && start2 < end2 && text1[end1-1] == text2[end2-1] && IsWhitespace(text1[end1-1]) {
		end1--
		end2--
	}
	return old - end1
}

// ExpandWhitespace shrinks r by the equal whitespace shared at its start, then at its end.
func ExpandWhitespace(text1, text2 []rune, r diffiter.Range) diffiter.Range {
	n := ExpandWhitespaceForward(text1, text2, r.Start1, r.Start2, r.End1, r.End2)
	start1, start2 := r.Start1+n, r.Start2+n

	n = ExpandWhitespaceBackward(text1, text2, start1, start2, r.End1, r.End2)
	return diffiter.NewRange(start1, r.End1-n, start2, r.End2-n)
}

// TrimWhitespaceRange trims whitespace from both ends of each side of r independently.
func TrimWhitespaceRange(text1, text2 []rune, r diffiter.Range) diffiter.Range {
	start1 := TrimWhitespaceStart(text1, r.Start1, r.End1)
	end1 := TrimWhitespaceEnd(text1, start1, r.End1)
	start2 := TrimWhitespaceStart(text2, r.Start2, r.End2)
	end2 := TrimWhitespaceEnd(text2, start2, r.End2)
	return diffiter.NewRange(start1, end1, start2, end2)
}

// TrimWhitespaceStart returns the first non-whitespace index in [start, end), or end.
func TrimWhitespaceStart(text []rune, start, end int) int {
	for start < end && IsWhitespace(text[start]) {
		start++
	}
	return start
}

// TrimWhitespaceEnd returns the index just past the last non-whitespace character in [start, end), or start.
func TrimWhitespaceEnd(text []rune, start, end int) int {
	for start < end && IsWhitespace(text[end-1]) {
		end--
	}
	return end
}

// EqualIgnoreWhitespaceRange reports whether the two sides of r are equal ignoring whitespace.
func EqualIgnoreWhitespaceRange(text1, text2 []rune, r diffiter.Range) bool {
	return EqualIgnoreWhitespace(text1[r.Start1:r.End1], text2[r.Start2:r.End2])
}
