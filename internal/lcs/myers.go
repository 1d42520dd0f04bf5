package lcs

import (
	"errors"
	"math"

	"github.com/codalotl/worddiff/internal/bitset"
)

// DeltaThresholdSize is the minimum edit distance Myers will explore before BuildChanges falls back to the patience algorithm.
const DeltaThresholdSize = 20000

// differenceThreshold returns the largest edit distance Myers explores on a window of n elements. When fail is set (the mode that may give up with
// ErrTooManyDifferences), the bound is at least DeltaThresholdSize. Replaced in tests.
var differenceThreshold = func(n int, fail bool) int {
	threshold := 20000 + 10*isqrt(n)
	if fail {
		threshold = max(threshold, DeltaThresholdSize)
	}
	return threshold
}

// ErrTooManyDifferences is returned when the inputs differ too much to be diffed within the configured thresholds.
var ErrTooManyDifferences = errors.New("lcs: too many differences")

// myersLCS is E.W. Myers' "An O(ND) Difference Algorithm and Its Variations" (1986), searching from both ends for the middle snake. It runs on the window
// [start1, start1+count1) x [start2, start2+count2) and records changed positions (in absolute indices) in changes1/changes2.
type myersLCS struct {
	first, second  []int
	start1, count1 int
	start2, count2 int

	changes1, changes2 *bitset.BitSet

	vForward  []int
	vBackward []int
}

// newMyersLCS marks the whole window as changed; execution clears the positions it proves unchanged.
func newMyersLCS(first, second []int, start1, count1, start2, count2 int, changes1, changes2 *bitset.BitSet) *myersLCS {
	changes1.Set(start1, start1+count1)
	changes2.Set(start2, start2+count2)
	return &myersLCS{
		first:     first,
		second:    second,
		start1:    start1,
		count1:    count1,
		start2:    start2,
		count2:    count2,
		changes1:  changes1,
		changes2:  changes2,
		vForward:  make([]int, count1+count2+2),
		vBackward: make([]int, count1+count2+2),
	}
}

// executeLinear bounds D by a heuristic that keeps the expected running time linear. It never fails: sub-problems it cannot resolve stay marked as changed.
func (m *myersLCS) executeLinear() {
	_ = m.execute(differenceThreshold(m.count1+m.count2, false), false)
}

// executeWithThreshold returns ErrTooManyDifferences if the edit distance exceeds differenceThreshold(N, true).
func (m *myersLCS) executeWithThreshold() error {
	return m.execute(differenceThreshold(m.count1+m.count2, true), true)
}

func (m *myersLCS) execute(threshold int, fail bool) error {
	if m.count1 == 0 || m.count2 == 0 {
		return nil
	}
	return m.run(0, m.count1, 0, m.count2, min(threshold, m.count1+m.count2), fail)
}

func (m *myersLCS) run(oldStart, oldEnd, newStart, newEnd, differenceEstimate int, fail bool) error {
	if oldStart >= oldEnd || newStart >= newEnd {
		return nil
	}

	oldLength := oldEnd - oldStart
	newLength := newEnd - newStart
	vf, vb := m.vForward, m.vBackward

	vf[newLength+1] = 0
	vb[newLength+1] = 0

	halfD := (differenceEstimate + 1) / 2
	xx, kk, td := -1, -1, -1

loop:
	for d := 0; d <= halfD; d++ {
		l := newLength + max(-d, -newLength+((d^newLength)&1))
		r := newLength + min(d, oldLength-((d^oldLength)&1))

		for k := l; k <= r; k += 2 {
			var x int
			if k == l || (k != r && vf[k-1] < vf[k+1]) {
				x = vf[k+1]
			} else {
				x = vf[k-1] + 1
			}
			y := x - k + newLength
			x += m.commonForward(oldStart+x, newStart+y, min(oldEnd-oldStart-x, newEnd-newStart-y))
			vf[k] = x
		}

		if (oldLength-newLength)%2 != 0 {
			for k := l; k <= r; k += 2 {
				if oldLength-(d-1) <= k && k <= oldLength+(d-1) {
					if vf[k]+vb[newLength+oldLength-k] >= oldLength {
						xx = vf[k]
						kk = k
						td = 2*d - 1
						break loop
					}
				}
			}
		}

		for k := l; k <= r; k += 2 {
			var x int
			if k == l || (k != r && vb[k-1] < vb[k+1]) {
				x = vb[k+1]
			} else {
				x = vb[k-1] + 1
			}
			y := x - k + newLength
			x += m.commonBackward(oldEnd-1-x, newEnd-1-y, min(oldEnd-oldStart-x, newEnd-newStart-y))
			vb[k] = x
		}

		if (oldLength-newLength)%2 == 0 {
			for k := l; k <= r; k += 2 {
				if oldLength-d <= k && k <= oldLength+d {
					if vf[oldLength+newLength-k]+vb[k] >= oldLength {
						xx = oldLength - vb[k]
						kk = oldLength + newLength - k
						td = 2 * d
						break loop
					}
				}
			}
		}
	}

	switch {
	case td > 1:
		yy := xx - kk + newLength
		oldDiff := (td + 1) / 2
		if 0 < xx && 0 < yy {
			if err := m.run(oldStart, oldStart+xx, newStart, newStart+yy, oldDiff, fail); err != nil {
				return err
			}
		}
		if oldStart+xx < oldEnd && newStart+yy < newEnd {
			return m.run(oldStart+xx, oldEnd, newStart+yy, newEnd, td-oldDiff, fail)
		}
	case td >= 0:
		x, y := oldStart, newStart
		for x < oldEnd && y < newEnd {
			n := m.commonForward(x, y, min(oldEnd-x, newEnd-y))
			switch {
			case n > 0:
				m.addUnchanged(x, y, n)
				x += n
				y += n
			case oldEnd-oldStart > newEnd-newStart:
				x++
			default:
				y++
			}
		}
	case fail:
		return ErrTooManyDifferences
	}
	return nil
}

func (m *myersLCS) addUnchanged(start1, start2, n int) {
	m.changes1.Clear(m.start1+start1, m.start1+start1+n)
	m.changes2.Clear(m.start2+start2, m.start2+start2+n)
}

// commonForward returns the length of the equal run starting at (oldIndex, newIndex), capped at maxLength. Indices are relative to the window.
func (m *myersLCS) commonForward(oldIndex, newIndex, maxLength int) int {
	maxLength = min(maxLength, m.count1-oldIndex, m.count2-newIndex)
	n := 0
	for n < maxLength && m.first[m.start1+oldIndex+n] == m.second[m.start2+newIndex+n] {
		n++
	}
	return n
}

// commonBackward returns the length of the equal run ending at (oldIndex, newIndex) inclusive, walking towards the start, capped at maxLength.
func (m *myersLCS) commonBackward(oldIndex, newIndex, maxLength int) int {
	maxLength = min(maxLength, min(oldIndex, newIndex)+1)
	n := 0
	for n < maxLength && m.first[m.start1+oldIndex-n] == m.second[m.start2+newIndex-n] {
		n++
	}
	return n
}

func isqrt(n int) int {
	return int(math.Sqrt(float64(n)))
}
