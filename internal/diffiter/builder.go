package diffiter

import "fmt"

// Builder builds an Iterable over sequences of lengths length1 and length2 by marking equal runs in ascending order. Everything not marked equal is changed.
type Builder struct {
	length1, length2 int
	index1, index2   int
	changes          []Range
}

// NewBuilder returns a Builder for sequences of the given lengths.
func NewBuilder(length1, length2 int) *Builder {
	return &Builder{length1: length1, length2: length2}
}

// Index1 is the end of the last equal run on side 1.
func (b *Builder) Index1() int { return b.index1 }

// Index2 is the end of the last equal run on side 2.
func (b *Builder) Index2() int { return b.index2 }

// MarkEqualCount marks count elements starting at index1 and index2 as equal.
func (b *Builder) MarkEqualCount(index1, index2, count int) {
	b.MarkEqual(index1, index2, index1+count, index2+count)
}

// MarkEqual marks [index1, end1) and [index2, end2) as equal. Marks must not go backwards; it panics if they do. An empty mark is ignored.
func (b *Builder) MarkEqual(index1, index2, end1, end2 int) {
	if index1 == end1 && index2 == end2 {
		return
	}
	if index1 < b.index1 || index2 < b.index2 || end1 < b.index1 || end2 < b.index2 {
		panic(fmt.Sprintf("diffiter: mark [%d, %d] - [%d, %d] precedes position (%d, %d)", index1, end1, index2, end2, b.index1, b.index2))
	}
	if b.index1 != index1 || b.index2 != index2 {
		b.changes = append(b.changes, NewRange(b.index1, index1, b.index2, index2))
	}
	b.index1 = end1
	b.index2 = end2
}

// Finish marks the remainder of both sequences as changed and returns the result.
func (b *Builder) Finish() Iterable {
	if b.index1 > b.length1 || b.index2 > b.length2 {
		panic(fmt.Sprintf("diffiter: position (%d, %d) is past the end (%d, %d)", b.index1, b.index2, b.length1, b.length2))
	}
	if b.index1 != b.length1 || b.index2 != b.length2 {
		b.changes = append(b.changes, NewRange(b.index1, b.length1, b.index2, b.length2))
		b.index1 = b.length1
		b.index2 = b.length2
	}
	return FromRanges(b.changes, b.length1, b.length2)
}
