package diff

import (
	"slices"
	"strings"
	"testing"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	text1 := "a\nb\n"
	text2 := "a\nc\n"
	blocks, err := Compare(text1, text2, Options{})
	require.NoError(t, err)

	expected := []Segment{
		{Kind: SegmentUnchangedBefore, Text: "a\n"},
		{Kind: SegmentUnchangedAfter, Text: "a\n"},
		{Kind: SegmentRemoved, Text: "b"},
		{Kind: SegmentAdded, Text: "c"},
		{Kind: SegmentUnchangedBefore, Text: "\n"},
		{Kind: SegmentUnchangedAfter, Text: "\n"},
	}
	assert.Equal(t, expected, slices.Collect(Segments(text1, text2, blocks, false)))

	expected = []Segment{
		{Kind: SegmentUnchangedBefore, Text: "a"},
		{Kind: SegmentUnchangedBefore, Text: "\n"},
		{Kind: SegmentUnchangedAfter, Text: "a"},
		{Kind: SegmentUnchangedAfter, Text: "\n"},
		{Kind: SegmentRemoved, Text: "b"},
		{Kind: SegmentAdded, Text: "c"},
		{Kind: SegmentUnchangedBefore, Text: "\n"},
		{Kind: SegmentUnchangedAfter, Text: "\n"},
	}
	assert.Equal(t, expected, slices.Collect(Segments(text1, text2, blocks, true)))
}

func TestSegments_Equal(t *testing.T) {
	text := "same\ntext"
	blocks, err := Compare(text, text, Options{})
	require.NoError(t, err)
	assert.False(t, HasChanges(blocks))

	expected := []Segment{
		{Kind: SegmentUnchangedBefore, Text: text},
		{Kind: SegmentUnchangedAfter, Text: text},
	}
	assert.Equal(t, expected, slices.Collect(Segments(text, text, blocks, false)))
}

func TestSegments_StopEarly(t *testing.T) {
	text1 := "one two three"
	text2 := "one 2 three"
	blocks, err := Compare(text1, text2, Options{})
	require.NoError(t, err)

	var got []Segment
	for seg := range Segments(text1, text2, blocks, false) {
		got = append(got, seg)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

// TestSegments_Reconstruct checks that old-side segments rebuild text1 and new-side segments rebuild text2, for every policy.
func TestSegments_Reconstruct(t *testing.T) {
	pairs := [][2]string{
		{"func main() {\n\tfmt.Println(\"hi\")\n}\n", "func main() {\n    fmt.Println(\"hello\", name)\n}\n"},
		{"", "new file\n"},
		{"old file\n", ""},
		{"switch ($x) {\n  case A:\n}", "return match ($x) {\n  A\n}"},
		{"漢字かな", "漢字カナ"},
	}

	for _, p := range pairs {
		for _, policy := range []byword.Policy{byword.PolicyDefault, byword.PolicyTrimWhitespace, byword.PolicyIgnoreWhitespace} {
			for _, alg := range []lcs.Algorithm{lcs.AlgorithmMyers, lcs.AlgorithmPatience} {
				blocks, err := Compare(p[0], p[1], Options{Policy: policy, Algorithm: alg})
				require.NoError(t, err)

				for _, split := range []bool{false, true} {
					var oldSide, newSide strings.Builder
					for seg := range Segments(p[0], p[1], blocks, split) {
						require.NotEmpty(t, seg.Text)
						if split && seg.Text != "\n" {
							require.NotContains(t, seg.Text, "\n")
						}
						switch seg.Kind {
						case SegmentUnchangedBefore, SegmentRemoved:
							oldSide.WriteString(seg.Text)
						case SegmentUnchangedAfter, SegmentAdded:
							newSide.WriteString(seg.Text)
						}
					}
					assert.Equal(t, p[0], oldSide.String())
					assert.Equal(t, p[1], newSide.String())
				}
			}
		}
	}
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "removed", SegmentRemoved.String())
	assert.Equal(t, "unchanged-before", SegmentUnchangedBefore.String())
	assert.Equal(t, "unchanged-after", SegmentUnchangedAfter.String())
	assert.Equal(t, "added", SegmentAdded.String())
	assert.Equal(t, "unknown", SegmentKind(0).String())
}

func TestHasChanges(t *testing.T) {
	assert.False(t, HasChanges(nil))

	blocks, err := Compare("a b", "a  b", Options{Policy: byword.PolicyIgnoreWhitespace})
	require.NoError(t, err)
	assert.False(t, HasChanges(blocks))

	blocks, err = Compare("a b", "a  b", Options{})
	require.NoError(t, err)
	assert.True(t, HasChanges(blocks))
}
