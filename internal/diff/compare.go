package diff

import (
	"fmt"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/codalotl/worddiff/internal/simplelogger"
)

// Options select how texts are compared. The zero value compares with byword.PolicyDefault and lcs.AlgorithmMyers.
type Options struct {
	Policy    byword.Policy
	Algorithm lcs.Algorithm
}

// Compare compares text1 and text2 word by word and returns their differences grouped into line-aligned blocks. Offsets in the result are rune indices: a block's
// Offsets index []rune(text1) and []rune(text2), and its fragments are relative to the block start.
func Compare(text1, text2 string, opts Options) ([]byword.LineBlock, error) {
	return compareRunes([]rune(text1), []rune(text2), opts)
}

func compareRunes(text1, text2 []rune, opts Options) ([]byword.LineBlock, error) {
	blocks, err := byword.CompareAndSplit(text1, text2, opts.Policy, opts.Algorithm)
	if err != nil {
		simplelogger.Log("diff: compare %d x %d runes (policy=%v, algorithm=%v) failed: %v", len(text1), len(text2), opts.Policy, opts.Algorithm, err)
		return nil, fmt.Errorf("diff: compare: %w", err)
	}
	return blocks, nil
}

// HasChanges reports whether any block holds a fragment, i.e. whether the compared texts differ under the policy that produced blocks.
func HasChanges(blocks []byword.LineBlock) bool {
	for _, b := range blocks {
		if len(b.Fragments) > 0 {
			return true
		}
	}
	return false
}
