package lcs

import "sort"

// uniqueLCS finds the longest increasing sequence of matches between elements that occur exactly once in each window.
type uniqueLCS struct {
	first, second  []int
	start1, count1 int
	start2, count2 int
}

// execute returns the matched offsets (relative to each window's start) of side 1 and side 2. Both slices have the same length. It returns nil, nil when no element
// is unique on both sides.
func (u uniqueLCS) execute() ([]int, []int) {
	// seen maps a value to its offset+1 in side 1, or -1 when it occurs more than once.
	seen := make(map[int]int, u.count1)
	for i := 0; i < u.count1; i++ {
		v := u.first[u.start1+i]
		switch seen[v] {
		case -1:
		case 0:
			seen[v] = i + 1
		default:
			seen[v] = -1
		}
	}

	// match[i] is the offset+1 in side 2 matched to offset i in side 1, or 0.
	match := make([]int, u.count1)
	count := 0
	for i := 0; i < u.count2; i++ {
		v := u.second[u.start2+i]
		val := seen[v]
		if val == 0 || val == -1 {
			continue
		}
		if match[val-1] == 0 {
			match[val-1] = i + 1
			count++
		} else {
			match[val-1] = 0
			seen[v] = -1
			count--
		}
	}

	if count == 0 {
		return nil, nil
	}

	// Longest increasing subsequence of match values, patience sorting style.
	sequence := make([]int, 0, count)
	lastElement := make([]int, 0, count)
	predecessor := make([]int, u.count1)

	for i := 0; i < u.count1; i++ {
		if match[i] == 0 {
			continue
		}
		j := sort.SearchInts(sequence, match[i])
		if j == len(sequence) {
			sequence = append(sequence, match[i])
			lastElement = append(lastElement, i)
		} else if match[i] < sequence[j] {
			sequence[j] = match[i]
			lastElement[j] = i
		} else {
			continue
		}
		if j > 0 {
			predecessor[i] = lastElement[j-1]
		} else {
			predecessor[i] = -1
		}
	}

	length := len(sequence)
	matched1 := make([]int, length)
	matched2 := make([]int, length)
	curr := lastElement[length-1]
	for i := length - 1; curr != -1; i-- {
		matched1[i] = curr
		matched2[i] = match[curr] - 1
		curr = predecessor[curr]
	}
	return matched1, matched2
}
