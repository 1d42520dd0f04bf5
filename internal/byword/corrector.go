package byword

import (
	"fmt"

	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/textutil"
)

// correct adjusts the character-level changes of one block according to policy.
func correct(text1, text2 []rune, changes diffiter.Iterable, policy Policy) diffiter.Iterable {
	switch policy {
	case PolicyDefault:
		return correctDefault(text1, text2, changes)
	case PolicyTrimWhitespace:
		return correctTrimWhitespace(text1, text2, correctDefault(text1, text2, changes))
	case PolicyIgnoreWhitespace:
		return correctIgnoreWhitespace(text1, text2, changes)
	default:
		panic(fmt.Sprintf("byword: unknown policy %d", policy))
	}
}

// correctDefault moves whitespace that is equal on both sides out of each change, first from its end and then from its start.
func correctDefault(text1, text2 []rune, changes diffiter.Iterable) diffiter.Iterable {
	var result []diffiter.Range
	for r := range changes.Changes() {
		endCut := textutil.ExpandWhitespaceBackward(text1, text2, r.Start1, r.Start2, r.End1, r.End2)
		startCut := textutil.ExpandWhitespaceForward(text1, text2, r.Start1, r.Start2, r.End1-endCut, r.End2-endCut)

		expanded := diffiter.Range{Start1: r.Start1 + startCut, End1: r.End1 - endCut, Start2: r.Start2 + startCut, End2: r.End2 - endCut}
		if !expanded.IsEmpty() {
			result = append(result, expanded)
		}
	}
	return diffiter.FromRanges(result, len(text1), len(text2))
}

// correctTrimWhitespace drops leading and trailing line whitespace from each change, and drops changes that become empty or equal.
func correctTrimWhitespace(text1, text2 []rune, changes diffiter.Iterable) diffiter.Iterable {
	var result []diffiter.Range
	for r := range changes.Changes() {
		start1, end1, start2, end2 := r.Start1, r.End1, r.Start2, r.End2

		if textutil.IsLeadingTrailingSpace(text1, start1) {
			start1 = textutil.TrimWhitespaceStart(text1, start1, end1)
		}
		if textutil.IsLeadingTrailingSpace(text1, end1-1) {
			end1 = textutil.TrimWhitespaceEnd(text1, start1, end1)
		}
		if textutil.IsLeadingTrailingSpace(text2, start2) {
			start2 = textutil.TrimWhitespaceStart(text2, start2, end2)
		}
		if textutil.IsLeadingTrailingSpace(text2, end2-1) {
			end2 = textutil.TrimWhitespaceEnd(text2, start2, end2)
		}

		trimmed := diffiter.Range{Start1: start1, End1: end1, Start2: start2, End2: end2}
		if trimmed.IsEmpty() || textutil.Equal(text1[start1:end1], text2[start2:end2]) {
			continue
		}
		result = append(result, trimmed)
	}
	return diffiter.FromRanges(result, len(text1), len(text2))
}

// correctIgnoreWhitespace shrinks each change to its non-whitespace core and drops changes that differ only in whitespace.
func correctIgnoreWhitespace(text1, text2 []rune, changes diffiter.Iterable) diffiter.Iterable {
	var result []diffiter.Range
	for r := range changes.Changes() {
		trimmed := textutil.TrimWhitespaceRange(text1, text2, textutil.ExpandWhitespace(text1, text2, r))
		if trimmed.IsEmpty() || textutil.EqualIgnoreWhitespaceRange(text1, text2, trimmed) {
			continue
		}
		result = append(result, trimmed)
	}
	return diffiter.FromRanges(result, len(text1), len(text2))
}
