package diffiter

import "fmt"

// Range pairs the half-open interval [Start1, End1) of side 1 with [Start2, End2) of side 2.
type Range struct {
	Start1 int
	End1   int
	Start2 int
	End2   int
}

// NewRange returns a Range. It panics if either interval is inverted or negative.
func NewRange(start1, end1, start2, end2 int) Range {
	if start1 < 0 || start2 < 0 || start1 > end1 || start2 > end2 {
		panic(fmt.Sprintf("diffiter: invalid range [%d, %d] - [%d, %d]", start1, end1, start2, end2))
	}
	return Range{Start1: start1, End1: end1, Start2: start2, End2: end2}
}

// IsEmpty reports whether both intervals are empty.
func (r Range) IsEmpty() bool {
	return r.Start1 == r.End1 && r.Start2 == r.End2
}

// Len1 is the length of the side 1 interval.
func (r Range) Len1() int { return r.End1 - r.Start1 }

// Len2 is the length of the side 2 interval.
func (r Range) Len2() int { return r.End2 - r.Start2 }

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d] - [%d, %d]", r.Start1, r.End1, r.Start2, r.End2)
}
