package lcs

// Enumerator assigns dense integer ids, starting at 1, to comparable values. Equal values receive the same id across every Enumerate call on the same Enumerator.
type Enumerator[K comparable] struct {
	numbers map[K]int
	next    int
}

// NewEnumerator returns an empty Enumerator.
func NewEnumerator[K comparable]() *Enumerator[K] {
	return &Enumerator[K]{numbers: make(map[K]int), next: 1}
}

// Enumerate returns the ids of objects[startShift : len(objects)-endCut].
func (e *Enumerator[K]) Enumerate(objects []K, startShift, endCut int) []int {
	end := len(objects) - endCut
	if end <= startShift {
		return nil
	}
	ids := make([]int, 0, end-startShift)
	for _, o := range objects[startShift:end] {
		ids = append(ids, e.id(o))
	}
	return ids
}

func (e *Enumerator[K]) id(o K) int {
	if n, ok := e.numbers[o]; ok {
		return n
	}
	n := e.next
	e.next++
	e.numbers[o] = n
	return n
}
