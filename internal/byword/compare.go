package byword

import (
	"fmt"

	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/lcs"
)

// DiffFragment is a changed region of a LineBlock: [StartOffset1, EndOffset1) of the old text against [StartOffset2, EndOffset2) of the new text. At least one side is
// non-empty. Offsets are relative to the start of the enclosing LineBlock's Offsets.
type DiffFragment struct {
	StartOffset1 int
	EndOffset1   int
	StartOffset2 int
	EndOffset2   int
}

func (f DiffFragment) String() string {
	return fmt.Sprintf("[%d, %d] - [%d, %d]", f.StartOffset1, f.EndOffset1, f.StartOffset2, f.EndOffset2)
}

// LineBlock is a line-aligned region of both texts along with the changes inside it. NewLines1 and NewLines2 count the newlines of each side within the region.
type LineBlock struct {
	Fragments []DiffFragment
	Offsets   diffiter.Range
	NewLines1 int
	NewLines2 int
}

// CompareAndSplit compares text1 and text2 word by word and returns the differences grouped into line-aligned blocks. Blocks cover both texts completely and in order.
// Separators between matched words are matched on punctuation only, and policy decides how whitespace differences are reported.
//
// An error is returned only if alg cannot diff the words.
func CompareAndSplit(text1, text2 []rune, policy Policy, alg lcs.Algorithm) ([]LineBlock, error) {
	words1 := InlineChunks(text1)
	words2 := InlineChunks(text2)

	wordChanges, err := diffiter.Diff(chunkKeys(words1), chunkKeys(words2), alg)
	if err != nil {
		return nil, fmt.Errorf("compare words: %w", err)
	}
	wordChanges = optimizeWordChunks(words1, words2, text1, text2, wordChanges)

	var blocks []LineBlock
	for _, wb := range splitLines(text1, text2, words1, words2, wordChanges) {
		offsets, words := wb.Offsets, wb.Words

		subText1 := text1[offsets.Start1:offsets.End1]
		subText2 := text2[offsets.Start2:offsets.End2]
		subWords1 := words1[words.Start1:words.End1]
		subWords2 := words2[words.Start2:words.End2]

		subChanges := diffiter.MakeFair(diffiter.Sub(wordChanges, words.Start1, words.End1, words.Start2, words.End2))

		charChanges, err := matchPunctuation(subText1, subText2, subWords1, subWords2, offsets.Start1, offsets.Start2, subChanges, alg)
		if err != nil {
			return nil, fmt.Errorf("compare punctuation in %v: %w", offsets, err)
		}

		blocks = append(blocks, LineBlock{
			Fragments: fragmentsOf(correct(subText1, subText2, charChanges, policy)),
			Offsets:   offsets,
			NewLines1: countNewLines(subWords1),
			NewLines2: countNewLines(subWords2),
		})
	}
	return blocks, nil
}

func fragmentsOf(changes diffiter.Iterable) []DiffFragment {
	var fragments []DiffFragment
	for r := range changes.Changes() {
		fragments = append(fragments, DiffFragment{StartOffset1: r.Start1, EndOffset1: r.End1, StartOffset2: r.Start2, EndOffset2: r.End2})
	}
	return fragments
}
