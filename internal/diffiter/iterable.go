// Package diffiter represents the result of a diff as two coordinated, gap-covering sequences of ranges over a pair of index spaces: the changed ranges and their
// complement, the unchanged ranges.
//
// Every Iterable satisfies: walking Changes and Unchanged together, in order, covers [0, Length1) and [0, Length2) exactly once. Changes are squashed: no two changes
// touch on both sides.
package diffiter

import (
	"iter"
	"slices"

	"github.com/codalotl/worddiff/internal/lcs"
)

// Iterable is a diff between two sequences of lengths Length1 and Length2.
type Iterable interface {
	Length1() int
	Length2() int

	// Changes yields the changed ranges in ascending order.
	Changes() iter.Seq[Range]

	// Unchanged yields the unchanged ranges in ascending order.
	Unchanged() iter.Seq[Range]
}

// Fair marks an Iterable whose unchanged ranges are element-aligned: offset i of an unchanged range on side 1 matches offset i on side 2. Consumers that re-match inside
// unchanged ranges (for instance at character level) require a Fair value.
type Fair struct {
	Iterable
}

// MakeFair wraps it as a Fair iterable. A Fair value is returned unchanged.
func MakeFair(it Iterable) Fair {
	if f, ok := it.(Fair); ok {
		return f
	}
	return Fair{Iterable: it}
}

// Diff computes the diff between objects1 and objects2.
func Diff[K comparable](objects1, objects2 []K, alg lcs.Algorithm) (Fair, error) {
	changes, err := lcs.BuildChanges(objects1, objects2, alg)
	if err != nil {
		return Fair{}, err
	}
	return MakeFair(FromChanges(changes, len(objects1), len(objects2))), nil
}

// FromChanges returns an Iterable whose changed ranges are changes.
func FromChanges(changes []lcs.Change, length1, length2 int) Iterable {
	ranges := make([]Range, 0, len(changes))
	for _, c := range changes {
		ranges = append(ranges, NewRange(c.Start1, c.End1(), c.Start2, c.End2()))
	}
	return rangesIterable{ranges: ranges, length1: length1, length2: length2}
}

// FromRanges returns an Iterable whose changed ranges are ranges. ranges must be ascending and squashed.
func FromRanges(ranges []Range, length1, length2 int) Iterable {
	return rangesIterable{ranges: ranges, length1: length1, length2: length2}
}

// FromUnchanged returns an Iterable whose unchanged ranges are ranges.
func FromUnchanged(ranges []Range, length1, length2 int) Iterable {
	return Invert(FromRanges(ranges, length1, length2))
}

// Invert swaps the changed and unchanged ranges of it.
func Invert(it Iterable) Iterable {
	return inverted{it: it}
}

// Sub restricts it to the window [start1, end1) x [start2, end2). Ranges are clipped to the window and shifted so the window starts at 0.
func Sub(it Iterable, start1, end1, start2, end2 int) Iterable {
	return sub{it: it, start1: start1, end1: end1, start2: start2, end2: end2}
}

// CollectChanges returns all changed ranges of it.
func CollectChanges(it Iterable) []Range {
	return slices.Collect(it.Changes())
}

// CollectUnchanged returns all unchanged ranges of it.
func CollectUnchanged(it Iterable) []Range {
	return slices.Collect(it.Unchanged())
}

type rangesIterable struct {
	ranges  []Range
	length1 int
	length2 int
}

func (r rangesIterable) Length1() int { return r.length1 }
func (r rangesIterable) Length2() int { return r.length2 }

func (r rangesIterable) Changes() iter.Seq[Range] {
	return slices.Values(r.ranges)
}

func (r rangesIterable) Unchanged() iter.Seq[Range] {
	return complement(r.Changes(), r.length1, r.length2)
}

type inverted struct {
	it Iterable
}

func (i inverted) Length1() int               { return i.it.Length1() }
func (i inverted) Length2() int               { return i.it.Length2() }
func (i inverted) Changes() iter.Seq[Range]   { return i.it.Unchanged() }
func (i inverted) Unchanged() iter.Seq[Range] { return i.it.Changes() }

type sub struct {
	it                         Iterable
	start1, end1, start2, end2 int
}

func (s sub) Length1() int { return s.end1 - s.start1 }
func (s sub) Length2() int { return s.end2 - s.start2 }

func (s sub) Changes() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for r := range s.it.Changes() {
			if r.End1 < s.start1 || r.End2 < s.start2 {
				continue
			}
			if r.Start1 > s.end1 || r.Start2 > s.end2 {
				return
			}
			clipped := NewRange(
				max(s.start1, r.Start1)-s.start1,
				min(s.end1, r.End1)-s.start1,
				max(s.start2, r.Start2)-s.start2,
				min(s.end2, r.End2)-s.start2,
			)
			if clipped.IsEmpty() {
				continue
			}
			if !yield(clipped) {
				return
			}
		}
	}
}

func (s sub) Unchanged() iter.Seq[Range] {
	return complement(s.Changes(), s.Length1(), s.Length2())
}

// complement yields the gaps between consecutive ranges of changes, plus the leading and trailing gaps. Gaps empty on both sides are dropped.
func complement(changes iter.Seq[Range], length1, length2 int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		last1, last2 := 0, 0
		for c := range changes {
			gap := NewRange(last1, c.Start1, last2, c.Start2)
			last1, last2 = c.End1, c.End2
			if gap.IsEmpty() {
				continue
			}
			if !yield(gap) {
				return
			}
		}
		if last1 != length1 || last2 != length2 {
			yield(NewRange(last1, length1, last2, length2))
		}
	}
}
