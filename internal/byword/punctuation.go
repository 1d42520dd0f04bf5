package byword

import (
	"fmt"

	"github.com/codalotl/worddiff/internal/bychar"
	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/lcs"
)

// punctuationMatcher turns a word-level diff into a character-level one. Matched words are marked equal; the separators around and between them are matched on
// punctuation only.
//
// Example: "[ X { A ! B } Y ]" vs "( X ... Y )" compares three groups of separators: "[" vs "(", "{" + "}" vs "...", and "]" vs ")".
//
// Offsets are relative to the start of text1/text2; word offsets are shifted by shift1/shift2 to match.
type punctuationMatcher struct {
	text1, text2   []rune
	words1, words2 []InlineChunk
	shift1, shift2 int
	changes        diffiter.Fair
	alg            lcs.Algorithm

	builder *diffiter.Builder

	// Separator range recorded by the last matchForward, pending until the next matchBackward. lastStart1 == -1 when none is pending.
	lastStart1, lastStart2 int
	lastEnd1, lastEnd2     int
}

func matchPunctuation(text1, text2 []rune, words1, words2 []InlineChunk, shift1, shift2 int, changes diffiter.Fair, alg lcs.Algorithm) (diffiter.Fair, error) {
	m := &punctuationMatcher{
		text1:   text1,
		text2:   text2,
		words1:  words1,
		words2:  words2,
		shift1:  shift1,
		shift2:  shift2,
		changes: changes,
		alg:     alg,
		builder: diffiter.NewBuilder(len(text1), len(text2)),
	}
	if err := m.execute(); err != nil {
		return diffiter.Fair{}, err
	}
	return diffiter.MakeFair(m.builder.Finish()), nil
}

func (m *punctuationMatcher) execute() error {
	m.clearLastRange()
	m.matchForward(-1, -1)

	for r := range m.changes.Unchanged() {
		for i := 0; i < r.Len1(); i++ {
			index1 := r.Start1 + i
			index2 := r.Start2 + i

			if err := m.matchBackward(index1, index2); err != nil {
				return err
			}
			m.builder.MarkEqual(m.startOffset1(index1), m.startOffset2(index2), m.endOffset1(index1), m.endOffset2(index2))
			m.matchForward(index1, index2)
		}
	}

	return m.matchBackward(len(m.words1), len(m.words2))
}

func (m *punctuationMatcher) clearLastRange() {
	m.lastStart1, m.lastStart2, m.lastEnd1, m.lastEnd2 = -1, -1, -1, -1
}

// matchForward records the separator range after words index1/index2 (or the leading range when they are -1).
func (m *punctuationMatcher) matchForward(index1, index2 int) {
	if m.lastStart1 != -1 {
		panic("byword: separator range recorded twice")
	}

	m.lastStart1 = 0
	if index1 != -1 {
		m.lastStart1 = m.endOffset1(index1)
	}
	m.lastStart2 = 0
	if index2 != -1 {
		m.lastStart2 = m.endOffset2(index2)
	}
	m.lastEnd1 = len(m.text1)
	if index1+1 != len(m.words1) {
		m.lastEnd1 = m.startOffset1(index1 + 1)
	}
	m.lastEnd2 = len(m.text2)
	if index2+1 != len(m.words2) {
		m.lastEnd2 = m.startOffset2(index2 + 1)
	}
}

// matchBackward matches the separator range before words index1/index2 (or the trailing range when they are past the end) against the pending range.
func (m *punctuationMatcher) matchBackward(index1, index2 int) error {
	start1, start2 := 0, 0
	if index1 != 0 {
		start1 = m.endOffset1(index1 - 1)
	}
	if index2 != 0 {
		start2 = m.endOffset2(index2 - 1)
	}
	end1, end2 := len(m.text1), len(m.text2)
	if index1 != len(m.words1) {
		end1 = m.startOffset1(index1)
	}
	if index2 != len(m.words2) {
		end2 = m.startOffset2(index2)
	}

	err := m.matchBackwardRange(start1, start2, end1, end2)
	m.clearLastRange()
	return err
}

func (m *punctuationMatcher) matchBackwardRange(start1, start2, end1, end2 int) error {
	if m.lastStart1 == -1 {
		panic("byword: no separator range recorded")
	}

	if m.lastStart1 == start1 && m.lastStart2 == start2 {
		// Adjacent matched words: the gap between them ("A B" - "A B").
		return m.matchRange(start1, start2, end1, end2)
	}

	if m.lastStart1 < start1 && m.lastStart2 < start2 {
		// Matched words with unmatched ones between them ("A X B" - "A Y B").
		if err := m.matchRange(m.lastStart1, m.lastStart2, m.lastEnd1, m.lastEnd2); err != nil {
			return err
		}
		return m.matchRange(start1, start2, end1, end2)
	}

	// Adjacent on one side, unmatched words between on the other ("A B" - "A Y B").
	return m.matchComplexRange(m.lastStart1, m.lastStart2, m.lastEnd1, m.lastEnd2, start1, start2, end1, end2)
}

func (m *punctuationMatcher) matchRange(start1, start2, end1, end2 int) error {
	if start1 == end1 && start2 == end2 {
		return nil
	}

	changes, err := bychar.ComparePunctuation(m.text1[start1:end1], m.text2[start2:end2], m.alg)
	if err != nil {
		return err
	}
	for r := range changes.Unchanged() {
		m.builder.MarkEqual(start1+r.Start1, start2+r.Start2, start1+r.End1, start2+r.End2)
	}
	return nil
}

func (m *punctuationMatcher) matchComplexRange(start11, start12, end11, end12, start21, start22, end21, end22 int) error {
	switch {
	case start11 == start21 && end11 == end21:
		return m.matchComplexRangeLeft(start11, end11, start12, end12, start22, end22)
	case start12 == start22 && end12 == end22:
		return m.matchComplexRangeRight(start12, end12, start11, end11, start21, end21)
	default:
		panic(fmt.Sprintf("byword: separator ranges [%d, %d] - [%d, %d] and [%d, %d] - [%d, %d] share no side", start11, end11, start12, end12, start21, end21, start22, end22))
	}
}

// matchComplexRangeLeft matches one separator range of text1 against two separator ranges of text2.
func (m *punctuationMatcher) matchComplexRangeLeft(start1, end1, start12, end12, start22, end22 int) error {
	first, second, err := bychar.ComparePunctuation2Side(m.text1[start1:end1], m.text2[start12:end12], m.text2[start22:end22], m.alg)
	if err != nil {
		return err
	}
	for r := range first.Unchanged() {
		m.builder.MarkEqual(start1+r.Start1, start12+r.Start2, start1+r.End1, start12+r.End2)
	}
	for r := range second.Unchanged() {
		m.builder.MarkEqual(start1+r.Start1, start22+r.Start2, start1+r.End1, start22+r.End2)
	}
	return nil
}

// matchComplexRangeRight matches two separator ranges of text1 against one separator range of text2. Coordinates of the two-sided comparison are mirrored.
func (m *punctuationMatcher) matchComplexRangeRight(start2, end2, start11, end11, start21, end21 int) error {
	first, second, err := bychar.ComparePunctuation2Side(m.text2[start2:end2], m.text1[start11:end11], m.text1[start21:end21], m.alg)
	if err != nil {
		return err
	}
	for r := range first.Unchanged() {
		m.builder.MarkEqual(start11+r.Start2, start2+r.Start1, start11+r.End2, start2+r.End1)
	}
	for r := range second.Unchanged() {
		m.builder.MarkEqual(start21+r.Start2, start2+r.Start1, start21+r.End2, start2+r.End1)
	}
	return nil
}

func (m *punctuationMatcher) startOffset1(i int) int { return m.words1[i].Offset1 - m.shift1 }
func (m *punctuationMatcher) startOffset2(i int) int { return m.words2[i].Offset1 - m.shift2 }
func (m *punctuationMatcher) endOffset1(i int) int   { return m.words1[i].Offset2 - m.shift1 }
func (m *punctuationMatcher) endOffset2(i int) int   { return m.words2[i].Offset2 - m.shift2 }
