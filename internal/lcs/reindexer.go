package lcs

import "github.com/codalotl/worddiff/internal/bitset"

// reindexer drops elements that occur on only one side (they can never be part of a common subsequence), and later maps changes computed on the reduced sequences back
// to the original indices.
type reindexer struct {
	oldIndices       [2][]int
	originalLengths  [2]int
	discardedLengths [2]int
}

// discardUnique returns ints1 restricted to values present in ints2, and ints2 restricted to values present in the former.
func (r *reindexer) discardUnique(ints1, ints2 []int) ([]int, []int) {
	d1 := r.discard(ints2, ints1, 0)
	return d1, r.discard(d1, ints2, 1)
}

func (r *reindexer) discard(needed, toDiscard []int, side int) []int {
	present := make(map[int]struct{}, len(needed))
	for _, v := range needed {
		present[v] = struct{}{}
	}

	var kept, indices []int
	for i, v := range toDiscard {
		if _, ok := present[v]; ok {
			kept = append(kept, v)
			indices = append(indices, i)
		}
	}

	r.oldIndices[side] = indices
	r.originalLengths[side] = len(toDiscard)
	r.discardedLengths[side] = len(kept)
	return kept
}

// reindex translates changed positions on the reduced sequences into equal/changed runs over the original sequences and feeds them to b.
func (r *reindexer) reindex(discarded1, discarded2 *bitset.BitSet, b *ChangeBuilder) {
	var changes1, changes2 *bitset.BitSet
	if r.discardedLengths == r.originalLengths {
		changes1, changes2 = discarded1, discarded2
	} else {
		changes1 = bitset.New(r.originalLengths[0])
		changes2 = bitset.New(r.originalLengths[1])

		x, y := 0, 0
		for x < r.discardedLengths[0] || y < r.discardedLengths[1] {
			switch {
			case x < r.discardedLengths[0] && y < r.discardedLengths[1] && !discarded1.Has(x) && !discarded2.Has(y):
				x = increment(r.oldIndices[0], x, changes1, r.originalLengths[0])
				y = increment(r.oldIndices[1], y, changes2, r.originalLengths[1])
			case discarded1.Has(x):
				changes1.SetBit(r.oldIndices[0][x])
				x = increment(r.oldIndices[0], x, changes1, r.originalLengths[0])
			case discarded2.Has(y):
				changes2.SetBit(r.oldIndices[1][y])
				y = increment(r.oldIndices[1], y, changes2, r.originalLengths[1])
			default:
				panic("lcs: reindex found unmatched unchanged elements")
			}
		}

		if r.discardedLengths[0] == 0 {
			changes1.Set(0, r.originalLengths[0])
		} else {
			changes1.Set(0, r.oldIndices[0][0])
		}
		if r.discardedLengths[1] == 0 {
			changes2.Set(0, r.originalLengths[1])
		} else {
			changes2.Set(0, r.oldIndices[1][0])
		}
	}

	len1, len2 := r.originalLengths[0], r.originalLengths[1]
	x, y := 0, 0
	for x < len1 && y < len2 {
		startX := x
		for x < len1 && y < len2 && !changes1.Has(x) && !changes2.Has(y) {
			x++
			y++
		}
		if x > startX {
			b.AddEqual(x - startX)
		}

		dx, dy := 0, 0
		for x < len1 && changes1.Has(x) {
			dx++
			x++
		}
		for y < len2 && changes2.Has(y) {
			dy++
			y++
		}
		b.AddChange(dx, dy)
	}
	if x != len1 || y != len2 {
		b.AddChange(len1-x, len2-y)
	}
}

// increment marks the gap between reduced element i and its successor (or the end of the sequence) as changed, and returns i+1.
func increment(indices []int, i int, set *bitset.BitSet, length int) int {
	if i+1 < len(indices) {
		set.Set(indices[i]+1, indices[i+1])
	} else {
		set.Set(indices[i]+1, length)
	}
	return i + 1
}
