// Package bychar matches punctuation characters between two texts, ignoring every other character.
package bychar

import (
	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/codalotl/worddiff/internal/textutil"
)

// PunctuationChars returns the punctuation characters of text and their offsets in text.
func PunctuationChars(text []rune) ([]rune, []int) {
	var chars []rune
	var offsets []int
	for i, r := range text {
		if textutil.IsPunctuation(r) {
			chars = append(chars, r)
			offsets = append(offsets, i)
		}
	}
	return chars, offsets
}

// ComparePunctuation diffs the punctuation of text1 and text2. The result spans the full texts: only matched punctuation characters are unchanged, everything else
// is changed.
func ComparePunctuation(text1, text2 []rune, alg lcs.Algorithm) (diffiter.Fair, error) {
	chars1, offsets1 := PunctuationChars(text1)
	chars2, offsets2 := PunctuationChars(text2)

	changes, err := diffiter.Diff(chars1, chars2, alg)
	if err != nil {
		return diffiter.Fair{}, err
	}

	b := diffiter.NewBuilder(len(text1), len(text2))
	for r := range changes.Unchanged() {
		for i := 0; i < r.Len1(); i++ {
			b.MarkEqualCount(offsets1[r.Start1+i], offsets2[r.Start2+i], 1)
		}
	}
	return diffiter.MakeFair(b.Finish()), nil
}

// ComparePunctuation2Side compares text1 with the concatenation of text21 and text22, and splits the result at the seam. The first result diffs text1 against text21,
// the second diffs text1 against text22.
func ComparePunctuation2Side(text1, text21, text22 []rune, alg lcs.Algorithm) (diffiter.Fair, diffiter.Fair, error) {
	text2 := make([]rune, 0, len(text21)+len(text22))
	text2 = append(append(text2, text21...), text22...)

	changes, err := ComparePunctuation(text1, text2, alg)
	if err != nil {
		return diffiter.Fair{}, diffiter.Fair{}, err
	}

	seam := len(text21)
	var first, second []diffiter.Range
	for r := range changes.Unchanged() {
		switch {
		case r.End2 <= seam:
			first = append(first, r)
		case r.Start2 >= seam:
			second = append(second, diffiter.NewRange(r.Start1, r.End1, r.Start2-seam, r.End2-seam))
		default:
			n := seam - r.Start2
			first = append(first, diffiter.NewRange(r.Start1, r.Start1+n, r.Start2, seam))
			second = append(second, diffiter.NewRange(r.Start1+n, r.End1, 0, r.End2-seam))
		}
	}

	return diffiter.MakeFair(diffiter.FromUnchanged(first, len(text1), len(text21))),
		diffiter.MakeFair(diffiter.FromUnchanged(second, len(text1), len(text22))),
		nil
}
