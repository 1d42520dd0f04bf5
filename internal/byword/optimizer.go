package byword

import (
	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/textutil"
)

// wordChunkOptimizer moves the edges of matched word runs so that the result has
//  1. fewer chunks: "AX[AB]" - "[AB]" rather than "[A]XA[B]" - "[A][B]";
//  2. fewer modified sentences (words not separated by whitespace): "[AX] [AZ]" - "[AX] AY [AZ]" rather than "[AX A][Z]" - "[AX A]Y A[Z]".
//     For example "1.0.123 1.0.155" vs "1.0.123 1.0.134 1.0.155".
type wordChunkOptimizer struct {
	words1, words2 []InlineChunk
	keys1, keys2   []string
	text1, text2   []rune

	ranges []diffiter.Range
}

func optimizeWordChunks(words1, words2 []InlineChunk, text1, text2 []rune, changes diffiter.Fair) diffiter.Fair {
	o := &wordChunkOptimizer{
		words1: words1,
		words2: words2,
		keys1:  chunkKeys(words1),
		keys2:  chunkKeys(words2),
		text1:  text1,
		text2:  text2,
	}
	for r := range changes.Unchanged() {
		o.ranges = append(o.ranges, r)
		o.processLastRanges()
	}
	return diffiter.MakeFair(diffiter.FromUnchanged(o.ranges, len(words1), len(words2)))
}

func (o *wordChunkOptimizer) processLastRanges() {
	n := len(o.ranges)
	if n < 2 {
		return
	}

	range1, range2 := o.ranges[n-2], o.ranges[n-1]
	if range1.End1 != range2.Start1 && range1.End2 != range2.Start2 {
		// Changes that touch neither side cannot be optimized unless the input was not an LCS.
		return
	}

	count1 := range1.Len1()
	count2 := range2.Len1()

	equalForward := textutil.ExpandForward(o.keys1, o.keys2, range1.End1, range1.End2, range1.End1+count2, range1.End2+count2)
	equalBackward := textutil.ExpandBackward(o.keys1, o.keys2, range2.Start1-count1, range2.Start2-count1, range2.Start1, range2.Start2)

	if equalForward == 0 && equalBackward == 0 {
		return
	}

	// [A]B[B] -> [AB]B
	if equalForward == count2 {
		o.ranges = append(o.ranges[:n-2], diffiter.NewRange(range1.Start1, range1.End1+count2, range1.Start2, range1.End2+count2))
		o.processLastRanges()
		return
	}

	// [A]A[B] -> A[AB]
	if equalBackward == count1 {
		o.ranges = append(o.ranges[:n-2], diffiter.NewRange(range2.Start1-count1, range2.End1, range2.Start2-count1, range2.End2))
		o.processLastRanges()
		return
	}

	touchSide := sideOf(range1.End1 == range2.Start1)
	shift := o.shift(touchSide, equalForward, equalBackward, range1, range2)
	if shift != 0 {
		o.ranges = append(o.ranges[:n-2],
			diffiter.NewRange(range1.Start1, range1.End1+shift, range1.Start2, range1.End2+shift),
			diffiter.NewRange(range2.Start1+shift, range2.End1, range2.Start2+shift, range2.End2),
		)
	}
}

// shift returns how far to move the boundary between range1 and range2: 0 to leave it, > 0 to move it forward, < 0 to move it backward.
func (o *wordChunkOptimizer) shift(touchSide Side, equalForward, equalBackward int, range1, range2 diffiter.Range) int {
	words := pick(touchSide, o.words1, o.words2)
	text := pick(touchSide, o.text1, o.text2)
	touchStart := pick(touchSide, range2.Start1, range2.Start2)

	if separatedByWhitespace(text, words[touchStart-1], words[touchStart]) {
		return 0
	}

	// [X]A Y[A ZA] -> [XA] YA [ZA]
	// [X][A ZA] -> [XA] [ZA]
	if left := sequenceEdgeShift(text, words, touchStart, equalForward, true); left > 0 {
		return left
	}

	// [AX A]Y A[Z] -> [AX] AY [AZ]
	// [AX A][Z] -> [AX] [AZ]
	if right := sequenceEdgeShift(text, words, touchStart-1, equalBackward, false); right > 0 {
		return -right
	}

	return 0
}

// sequenceEdgeShift walks up to count word pairs from offset and returns the 1-based step at which a whitespace separation is found, or -1.
func sequenceEdgeShift(text []rune, words []InlineChunk, offset, count int, leftToRight bool) int {
	for i := 0; i < count; i++ {
		var w1, w2 InlineChunk
		if leftToRight {
			w1, w2 = words[offset+i], words[offset+i+1]
		} else {
			w1, w2 = words[offset-i-1], words[offset-i]
		}
		if separatedByWhitespace(text, w1, w2) {
			return i + 1
		}
	}
	return -1
}

func separatedByWhitespace(text []rune, w1, w2 InlineChunk) bool {
	if w1.IsNewLine() || w2.IsNewLine() {
		return true
	}
	for i := w1.Offset2; i < w2.Offset1; i++ {
		if textutil.IsWhitespace(text[i]) {
			return true
		}
	}
	return false
}
