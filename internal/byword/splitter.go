package byword

import (
	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/textutil"
)

// WordBlock pairs a range of word indices with the range of characters it covers.
type WordBlock struct {
	Words   diffiter.Range
	Offsets diffiter.Range
}

type pendingBlock struct {
	block                 WordBlock
	hasEqualWords         bool // contains a matched word other than a newline
	hasWordsInside        bool // contains a word other than a newline on either side
	equalIgnoreWhitespace bool
}

// lineSplitter cuts a word-level diff into line-aligned blocks. A block ends where both sides hit a matched newline, or where both sides start a line with a matched word.
type lineSplitter struct {
	text1, text2   []rune
	words1, words2 []InlineChunk

	last1, last2 int
	pending      *pendingBlock
	result       []WordBlock
}

func splitLines(text1, text2 []rune, words1, words2 []InlineChunk, changes diffiter.Fair) []WordBlock {
	s := &lineSplitter{
		text1:  text1,
		text2:  text2,
		words1: words1,
		words2: words2,
		last1:  -1,
		last2:  -1,
	}

	hasEqualWords := false
	for r := range changes.Unchanged() {
		for i := 0; i < r.Len1(); i++ {
			index1 := r.Start1 + i
			index2 := r.Start2 + i

			if isNewLineAt(words1, index1) && isNewLineAt(words2, index2) {
				s.addLineBlock(index1, index2, hasEqualWords)
				hasEqualWords = false
				continue
			}
			if isFirstInLine(words1, index1) && isFirstInLine(words2, index2) {
				s.addLineBlock(index1-1, index2-1, hasEqualWords)
				hasEqualWords = false
			}
			hasEqualWords = true
		}
	}
	s.addLineBlock(len(words1), len(words2), hasEqualWords)

	if s.pending != nil {
		s.result = append(s.result, s.pending.block)
	}
	return s.result
}

// addLineBlock closes the block that runs from the previous split point to the newlines at end1/end2 (-1 is the start of text, len(words) the end).
func (s *lineSplitter) addLineBlock(end1, end2 int, hasEqualWords bool) {
	if s.last1 > end1 || s.last2 > end2 {
		return
	}

	b := s.newPendingBlock(s.last1, s.last2, end1, end2, hasEqualWords)
	if b.block.Offsets.IsEmpty() {
		return
	}

	if s.pending != nil && shouldMergeBlocks(s.pending, b) {
		s.pending = mergeBlocks(s.pending, b)
	} else {
		if s.pending != nil {
			s.result = append(s.result, s.pending.block)
		}
		s.pending = b
	}

	s.last1 = end1
	s.last2 = end2
}

func (s *lineSplitter) newPendingBlock(start1, start2, end1, end2 int, hasEqualWords bool) *pendingBlock {
	offsets := diffiter.Range{
		Start1: splitOffset(s.words1, s.text1, start1),
		End1:   splitOffset(s.words1, s.text1, end1),
		Start2: splitOffset(s.words2, s.text2, start2),
		End2:   splitOffset(s.words2, s.text2, end2),
	}
	words := diffiter.Range{
		Start1: max(0, start1+1),
		End1:   min(end1+1, len(s.words1)),
		Start2: max(0, start2+1),
		End2:   min(end2+1, len(s.words2)),
	}

	return &pendingBlock{
		block:                 WordBlock{Words: words, Offsets: offsets},
		hasEqualWords:         hasEqualWords,
		hasWordsInside:        hasWordsIn(s.words1[words.Start1:words.End1]) || hasWordsIn(s.words2[words.Start2:words.End2]),
		equalIgnoreWhitespace: textutil.EqualIgnoreWhitespace(s.text1[offsets.Start1:offsets.End1], s.text2[offsets.Start2:offsets.End2]),
	}
}

func shouldMergeBlocks(b1, b2 *pendingBlock) bool {
	if !b1.hasEqualWords && !b2.hasEqualWords {
		// Lines matched only by their newlines.
		return true
	}
	if b1.equalIgnoreWhitespace && b2.equalIgnoreWhitespace {
		return true
	}
	// A block without words is folded into its neighbor.
	return !b1.hasWordsInside || !b2.hasWordsInside
}

func mergeBlocks(b1, b2 *pendingBlock) *pendingBlock {
	return &pendingBlock{
		block: WordBlock{
			Words:   diffiter.Range{Start1: b1.block.Words.Start1, End1: b2.block.Words.End1, Start2: b1.block.Words.Start2, End2: b2.block.Words.End2},
			Offsets: diffiter.Range{Start1: b1.block.Offsets.Start1, End1: b2.block.Offsets.End1, Start2: b1.block.Offsets.Start2, End2: b2.block.Offsets.End2},
		},
		hasEqualWords:         b1.hasEqualWords || b2.hasEqualWords,
		hasWordsInside:        b1.hasWordsInside || b2.hasWordsInside,
		equalIgnoreWhitespace: b1.equalIgnoreWhitespace && b2.equalIgnoreWhitespace,
	}
}

// splitOffset returns the character offset just past the newline at index, or the start/end of text for -1 and len(words).
func splitOffset(words []InlineChunk, text []rune, index int) int {
	switch index {
	case -1:
		return 0
	case len(words):
		return len(text)
	}
	if !words[index].IsNewLine() {
		panic("byword: line split at a word that is not a newline")
	}
	return words[index].Offset2
}

func hasWordsIn(words []InlineChunk) bool {
	for _, w := range words {
		if !w.IsNewLine() {
			return true
		}
	}
	return false
}

func isNewLineAt(words []InlineChunk, index int) bool {
	return index >= 0 && index < len(words) && words[index].IsNewLine()
}

func isFirstInLine(words []InlineChunk, index int) bool {
	if index == 0 {
		return true
	}
	return isNewLineAt(words, index-1)
}
