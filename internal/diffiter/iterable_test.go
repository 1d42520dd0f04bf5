package diffiter

import (
	"testing"

	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	r := NewRange(1, 3, 2, 2)
	assert.Equal(t, "[1, 3] - [2, 2]", r.String())
	assert.False(t, r.IsEmpty())
	assert.True(t, NewRange(4, 4, 7, 7).IsEmpty())
	assert.Equal(t, Range{Start1: 1, End1: 3, Start2: 2, End2: 2}, r)
	assert.Equal(t, 2, r.Len1())
	assert.Equal(t, 0, r.Len2())

	assert.Panics(t, func() { NewRange(3, 2, 0, 0) })
	assert.Panics(t, func() { NewRange(0, 0, 5, 1) })
	assert.Panics(t, func() { NewRange(-1, 0, 0, 0) })
}

func TestUnchangedFromChanges(t *testing.T) {
	// "this simply is the best match" vs "this really is not a match"
	it := FromRanges([]Range{NewRange(6, 12, 6, 12), NewRange(16, 24, 16, 21)}, 29, 26)
	assert.Equal(t, []Range{NewRange(0, 6, 0, 6), NewRange(12, 16, 12, 16), NewRange(24, 29, 21, 26)}, CollectUnchanged(it))

	it = FromRanges([]Range{NewRange(0, 12, 0, 12), NewRange(16, 24, 16, 21)}, 29, 26)
	assert.Equal(t, []Range{NewRange(12, 16, 12, 16), NewRange(24, 29, 21, 26)}, CollectUnchanged(it))

	it = FromRanges([]Range{NewRange(0, 12, 0, 12), NewRange(16, 29, 16, 26)}, 29, 26)
	assert.Equal(t, []Range{NewRange(12, 16, 12, 16)}, CollectUnchanged(it))
}

func TestUnchangedWithoutChanges(t *testing.T) {
	assert.Equal(t, []Range{NewRange(0, 3, 0, 3)}, CollectUnchanged(FromRanges(nil, 3, 3)))
	assert.Empty(t, CollectUnchanged(FromRanges(nil, 0, 0)))
}

func TestUnchangedSkipsTouchingChanges(t *testing.T) {
	// A deletion directly followed by an insertion leaves no gap between them.
	it := FromRanges([]Range{NewRange(1, 2, 1, 1), NewRange(2, 2, 1, 2)}, 4, 4)
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1), NewRange(2, 4, 2, 4)}, CollectUnchanged(it))
}

func TestFromChanges(t *testing.T) {
	changes := []lcs.Change{{Start1: 1, Start2: 1, Deleted: 2, Inserted: 1}, {Start1: 5, Start2: 4, Deleted: 0, Inserted: 2}}
	it := FromChanges(changes, 6, 7)
	assert.Equal(t, []Range{NewRange(1, 3, 1, 2), NewRange(5, 5, 4, 6)}, CollectChanges(it))
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1), NewRange(3, 5, 2, 4), NewRange(5, 6, 6, 7)}, CollectUnchanged(it))
}

func TestInvert(t *testing.T) {
	inner := FromRanges([]Range{NewRange(1, 2, 1, 3)}, 4, 5)
	it := Invert(inner)
	assert.Equal(t, 4, it.Length1())
	assert.Equal(t, 5, it.Length2())
	assert.Equal(t, CollectUnchanged(inner), CollectChanges(it))
	assert.Equal(t, CollectChanges(inner), CollectUnchanged(it))
}

func TestFromUnchanged(t *testing.T) {
	it := FromUnchanged([]Range{NewRange(1, 3, 2, 4), NewRange(4, 7, 4, 7)}, 7, 7)
	assert.Equal(t, []Range{NewRange(0, 1, 0, 2), NewRange(3, 4, 4, 4)}, CollectChanges(it))
}

func TestSub(t *testing.T) {
	full := FromRanges([]Range{NewRange(1, 2, 3, 4), NewRange(2, 3, 4, 5)}, 5, 6)
	assert.Equal(t, []Range{NewRange(1, 2, 3, 4), NewRange(2, 3, 4, 5)}, CollectChanges(Sub(full, 0, 5, 0, 5)))

	it := FromRanges([]Range{NewRange(0, 2, 0, 1), NewRange(4, 6, 3, 3), NewRange(9, 10, 6, 8)}, 10, 8)
	s := Sub(it, 1, 8, 1, 6)
	assert.Equal(t, 7, s.Length1())
	assert.Equal(t, 5, s.Length2())
	// The first change is clipped to [1, 2) - [1, 1); the last lies past the window.
	assert.Equal(t, []Range{NewRange(0, 1, 0, 0), NewRange(3, 5, 2, 2)}, CollectChanges(s))
	assert.Equal(t, []Range{NewRange(1, 3, 0, 2), NewRange(5, 7, 2, 5)}, CollectUnchanged(s))
}

func TestSubSkipsEmptyClips(t *testing.T) {
	it := FromRanges([]Range{NewRange(0, 2, 0, 2), NewRange(5, 6, 5, 6)}, 8, 8)
	s := Sub(it, 2, 5, 2, 5)
	assert.Empty(t, CollectChanges(s))
	assert.Equal(t, []Range{NewRange(0, 3, 0, 3)}, CollectUnchanged(s))
}

func TestMakeFair(t *testing.T) {
	it := FromRanges(nil, 1, 1)
	f := MakeFair(it)
	assert.Equal(t, f, MakeFair(f))
	assert.Equal(t, 1, f.Length1())
}

func TestDiff(t *testing.T) {
	f, err := Diff([]int{1, 2, 4, 5}, []int{1, 3, 5}, lcs.AlgorithmMyers)
	require.NoError(t, err)
	assert.Equal(t, []Range{NewRange(1, 3, 1, 2)}, CollectChanges(f))
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1), NewRange(3, 4, 2, 3)}, CollectUnchanged(f))
}

func TestEarlyBreak(t *testing.T) {
	it := FromRanges([]Range{NewRange(1, 2, 1, 2), NewRange(3, 4, 3, 4)}, 6, 6)
	var got []Range
	for r := range it.Unchanged() {
		got = append(got, r)
		break
	}
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1)}, got)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(5, 6)
	b.MarkEqual(1, 2, 1, 2)
	assert.Equal(t, []Range{NewRange(0, 5, 0, 6)}, CollectChanges(b.Finish()))

	b = NewBuilder(5, 6)
	b.MarkEqual(1, 1, 2, 2)
	assert.Equal(t, 2, b.Index1())
	assert.Equal(t, 2, b.Index2())
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1), NewRange(2, 5, 2, 6)}, CollectChanges(b.Finish()))

	b = NewBuilder(5, 6)
	b.MarkEqualCount(1, 1, 2)
	assert.Equal(t, []Range{NewRange(0, 1, 0, 1), NewRange(3, 5, 3, 6)}, CollectChanges(b.Finish()))

	b = NewBuilder(3, 3)
	b.MarkEqualCount(0, 0, 3)
	assert.Empty(t, CollectChanges(b.Finish()))

	b = NewBuilder(5, 5)
	b.MarkEqualCount(2, 2, 1)
	assert.Panics(t, func() { b.MarkEqualCount(1, 1, 1) })
}
