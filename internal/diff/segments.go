package diff

import (
	"iter"
	"strings"

	"github.com/codalotl/worddiff/internal/byword"
)

// SegmentKind says which text a Segment comes from and whether it changed.
type SegmentKind int

const (
	// SegmentRemoved is text of the old side that is not in the new side.
	SegmentRemoved SegmentKind = iota + 1
	// SegmentUnchangedBefore is unchanged text as it appears in the old side.
	SegmentUnchangedBefore
	// SegmentUnchangedAfter is unchanged text as it appears in the new side. It differs from the matching SegmentUnchangedBefore only where the policy hid a
	// whitespace difference.
	SegmentUnchangedAfter
	// SegmentAdded is text of the new side that is not in the old side.
	SegmentAdded
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentRemoved:
		return "removed"
	case SegmentUnchangedBefore:
		return "unchanged-before"
	case SegmentUnchangedAfter:
		return "unchanged-after"
	case SegmentAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Segment is a non-empty run of text of one kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments walks blocks (as returned by Compare(text1, text2, ...)) and yields the texts as segments. For each fragment it yields, in order, the unchanged old text
// before it, the unchanged new text before it, the removed text, and the added text; the unchanged tails of both texts come last. Concatenating the old-side kinds
// (SegmentUnchangedBefore, SegmentRemoved) gives text1; the new-side kinds give text2.
//
// If splitNewLines, every "\n" is yielded as a segment of its own, so no other segment contains a newline.
func Segments(text1, text2 string, blocks []byword.LineBlock, splitNewLines bool) iter.Seq[Segment] {
	return segments([]rune(text1), []rune(text2), blocks, splitNewLines)
}

func segments(text1, text2 []rune, blocks []byword.LineBlock, splitNewLines bool) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		emit := func(kind SegmentKind, text []rune) bool {
			if len(text) == 0 {
				return true
			}
			s := string(text)
			if !splitNewLines {
				return yield(Segment{Kind: kind, Text: s})
			}
			for i, piece := range strings.Split(s, "\n") {
				if i > 0 && !yield(Segment{Kind: kind, Text: "\n"}) {
					return false
				}
				if piece != "" && !yield(Segment{Kind: kind, Text: piece}) {
					return false
				}
			}
			return true
		}

		prev1, prev2 := 0, 0
		for _, b := range blocks {
			for _, f := range b.Fragments {
				start1, end1 := b.Offsets.Start1+f.StartOffset1, b.Offsets.Start1+f.EndOffset1
				start2, end2 := b.Offsets.Start2+f.StartOffset2, b.Offsets.Start2+f.EndOffset2

				if !emit(SegmentUnchangedBefore, text1[prev1:start1]) ||
					!emit(SegmentUnchangedAfter, text2[prev2:start2]) ||
					!emit(SegmentRemoved, text1[start1:end1]) ||
					!emit(SegmentAdded, text2[start2:end2]) {
					return
				}
				prev1, prev2 = end1, end2
			}
		}

		if emit(SegmentUnchangedBefore, text1[prev1:]) {
			emit(SegmentUnchangedAfter, text2[prev2:])
		}
	}
}
