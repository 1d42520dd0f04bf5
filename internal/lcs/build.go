package lcs

import (
	"errors"
	"fmt"

	"github.com/codalotl/worddiff/internal/bitset"
	"github.com/codalotl/worddiff/internal/simplelogger"
)

// BuildChanges returns the changes that turn objects1 into objects2, in ascending order and squashed (no two changes touch on both sides). It returns nil when the
// sequences are equal.
//
// ErrTooManyDifferences is returned only when both Myers and the patience fallback give up.
func BuildChanges[K comparable](objects1, objects2 []K, alg Algorithm) ([]Change, error) {
	startShift := commonPrefix(objects1, objects2)
	endCut := commonSuffix(objects1, objects2, startShift)

	trimmed1 := len(objects1) - startShift - endCut
	trimmed2 := len(objects2) - startShift - endCut
	if trimmed1 == 0 && trimmed2 == 0 {
		return nil, nil
	}
	if trimmed1 == 0 || trimmed2 == 0 {
		return []Change{{Start1: startShift, Start2: startShift, Deleted: trimmed1, Inserted: trimmed2}}, nil
	}

	enumerator := NewEnumerator[K]()
	ints1 := enumerator.Enumerate(objects1, startShift, endCut)
	ints2 := enumerator.Enumerate(objects2, startShift, endCut)

	builder := NewChangeBuilder(startShift)
	if err := buildIntChanges(ints1, ints2, alg, builder); err != nil {
		return nil, err
	}
	return builder.Changes(), nil
}

func buildIntChanges(ints1, ints2 []int, alg Algorithm, builder *ChangeBuilder) error {
	var r reindexer
	discarded1, discarded2 := r.discardUnique(ints1, ints2)
	if len(discarded1) == 0 && len(discarded2) == 0 {
		builder.AddChange(len(ints1), len(ints2))
		return nil
	}

	changes1 := bitset.New(len(discarded1))
	changes2 := bitset.New(len(discarded2))

	switch alg {
	case AlgorithmPatience:
		if err := newPatienceIntLCS(discarded1, discarded2, changes1, changes2).execute(false); err != nil {
			return err
		}
	default:
		err := newMyersLCS(discarded1, discarded2, 0, len(discarded1), 0, len(discarded2), changes1, changes2).executeWithThreshold()
		if errors.Is(err, ErrTooManyDifferences) {
			simplelogger.Log("lcs: myers exceeded threshold on %d x %d elements, falling back to patience", len(discarded1), len(discarded2))
			changes1 = bitset.New(len(discarded1))
			changes2 = bitset.New(len(discarded2))
			err = newPatienceIntLCS(discarded1, discarded2, changes1, changes2).execute(true)
		}
		if err != nil {
			return fmt.Errorf("build changes (%d x %d elements): %w", len(ints1), len(ints2), err)
		}
	}

	r.reindex(changes1, changes2, builder)
	return nil
}

func commonPrefix[K comparable](a, b []K) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffix[K comparable](a, b []K, startShift int) int {
	n := min(len(a), len(b)) - startShift
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
