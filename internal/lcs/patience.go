package lcs

import "github.com/codalotl/worddiff/internal/bitset"

// patienceIntLCS splits the problem on elements unique to both sides and recurses into the gaps between them. Gaps without unique anchors are handed to Myers in
// linear mode.
type patienceIntLCS struct {
	first, second  []int
	start1, count1 int
	start2, count2 int

	changes1, changes2 *bitset.BitSet
}

func newPatienceIntLCS(first, second []int, changes1, changes2 *bitset.BitSet) *patienceIntLCS {
	return &patienceIntLCS{
		first:    first,
		second:   second,
		count1:   len(first),
		count2:   len(second),
		changes1: changes1,
		changes2: changes2,
	}
}

// execute runs the algorithm. With failOnSmallReduction, it returns ErrTooManyDifferences when a few levels of recursion have not halved either side.
func (p *patienceIntLCS) execute(failOnSmallReduction bool) error {
	thresholdCheckCounter := -1
	if failOnSmallReduction {
		thresholdCheckCounter = 2
	}
	return p.run(p.start1, p.count1, p.start2, p.count2, thresholdCheckCounter)
}

func (p *patienceIntLCS) run(start1, count1, start2, count2, thresholdCheckCounter int) error {
	if count1 == 0 && count2 == 0 {
		return nil
	}
	if count1 == 0 || count2 == 0 {
		p.addChange(start1, count1, start2, count2)
		return nil
	}

	startOffset := p.matchForward(start1, count1, start2, count2)
	start1 += startOffset
	start2 += startOffset
	count1 -= startOffset
	count2 -= startOffset

	endOffset := p.matchBackward(start1, count1, start2, count2)
	count1 -= endOffset
	count2 -= endOffset

	if count1 == 0 || count2 == 0 {
		p.addChange(start1, count1, start2, count2)
		return nil
	}

	if thresholdCheckCounter == 0 {
		if err := p.checkReduction(count1, count2); err != nil {
			return err
		}
	}
	thresholdCheckCounter = max(-1, thresholdCheckCounter-1)

	matched1, matched2 := uniqueLCS{
		first: p.first, second: p.second,
		start1: start1, count1: count1,
		start2: start2, count2: count2,
	}.execute()

	if matched1 == nil {
		if thresholdCheckCounter >= 0 {
			if err := p.checkReduction(count1, count2); err != nil {
				return err
			}
		}
		newMyersLCS(p.first, p.second, start1, count1, start2, count2, p.changes1, p.changes2).executeLinear()
		return nil
	}

	if err := p.run(start1, matched1[0], start2, matched2[0], thresholdCheckCounter); err != nil {
		return err
	}

	for i := 1; i < len(matched1); i++ {
		s1 := matched1[i-1] + 1
		s2 := matched2[i-1] + 1
		c1 := matched1[i] - s1
		c2 := matched2[i] - s2
		if c1 > 0 || c2 > 0 {
			if err := p.run(start1+s1, c1, start2+s2, c2, thresholdCheckCounter); err != nil {
				return err
			}
		}
	}

	last := len(matched1) - 1
	var s1, c1, s2, c2 int
	if matched1[last] == count1-1 {
		s1, c1 = count1-1, 0
	} else {
		s1 = matched1[last] + 1
		c1 = count1 - s1
	}
	if matched2[last] == count2-1 {
		s2, c2 = count2-1, 0
	} else {
		s2 = matched2[last] + 1
		c2 = count2 - s2
	}
	return p.run(start1+s1, c1, start2+s2, c2, thresholdCheckCounter)
}

func (p *patienceIntLCS) matchForward(start1, count1, start2, count2 int) int {
	size := min(count1, count2)
	n := 0
	for n < size && p.first[start1+n] == p.second[start2+n] {
		n++
	}
	return n
}

func (p *patienceIntLCS) matchBackward(start1, count1, start2, count2 int) int {
	size := min(count1, count2)
	n := 0
	for n < size && p.first[start1+count1-1-n] == p.second[start2+count2-1-n] {
		n++
	}
	return n
}

func (p *patienceIntLCS) addChange(start1, count1, start2, count2 int) {
	p.changes1.Set(start1, start1+count1)
	p.changes2.Set(start2, start2+count2)
}

// checkReduction passes when either side has shrunk below half of its original size.
func (p *patienceIntLCS) checkReduction(count1, count2 int) error {
	if count1*2 < p.count1 || count2*2 < p.count2 {
		return nil
	}
	return ErrTooManyDifferences
}
