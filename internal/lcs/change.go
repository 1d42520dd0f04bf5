// Package lcs computes longest-common-subsequence based change lists between two sequences of comparable elements.
//
// The entry point is BuildChanges. It trims the common prefix and suffix, maps the remaining elements to dense integers, discards elements that cannot possibly match,
// and runs Myers' O(ND) algorithm. When Myers gives up (the edit distance exceeds its threshold), it falls back to a patience-style divide-and-conquer that anchors on
// elements unique to both sides.
package lcs

import "fmt"

// Change is a single edit: Deleted elements of side 1 starting at Start1 were replaced by Inserted elements of side 2 starting at Start2.
type Change struct {
	Start1   int
	Start2   int
	Deleted  int
	Inserted int
}

// End1 returns the exclusive end of the change on side 1.
func (c Change) End1() int { return c.Start1 + c.Deleted }

// End2 returns the exclusive end of the change on side 2.
func (c Change) End2() int { return c.Start2 + c.Inserted }

func (c Change) String() string {
	return fmt.Sprintf("change[%d, %d, %d, %d]", c.Start1, c.Start2, c.Deleted, c.Inserted)
}

// ChangeBuilder accumulates changes from a stream of equal and changed runs. Changes that touch the previous change on both sides are merged, so Changes is always
// squashed.
type ChangeBuilder struct {
	index1  int
	index2  int
	changes []Change
}

// NewChangeBuilder returns a builder whose first run starts at startShift on both sides.
func NewChangeBuilder(startShift int) *ChangeBuilder {
	return &ChangeBuilder{index1: startShift, index2: startShift}
}

// AddEqual skips n equal elements on both sides.
func (b *ChangeBuilder) AddEqual(n int) {
	b.index1 += n
	b.index2 += n
}

// AddChange records deleted elements on side 1 and inserted elements on side 2 at the current position.
func (b *ChangeBuilder) AddChange(deleted, inserted int) {
	if deleted == 0 && inserted == 0 {
		return
	}
	if n := len(b.changes); n > 0 {
		last := &b.changes[n-1]
		if last.End1() == b.index1 && last.End2() == b.index2 {
			last.Deleted += deleted
			last.Inserted += inserted
			b.index1 += deleted
			b.index2 += inserted
			return
		}
	}
	b.changes = append(b.changes, Change{Start1: b.index1, Start2: b.index2, Deleted: deleted, Inserted: inserted})
	b.index1 += deleted
	b.index2 += inserted
}

// Changes returns the accumulated changes in ascending order. It returns nil when nothing changed.
func (b *ChangeBuilder) Changes() []Change {
	return b.changes
}
