package lcs

import (
	"fmt"
	"strings"
)

// Algorithm selects the engine BuildChanges runs on the reduced sequences.
type Algorithm int

const (
	// AlgorithmMyers runs Myers with a difference threshold and falls back to AlgorithmPatience when the threshold is exceeded.
	AlgorithmMyers Algorithm = iota
	// AlgorithmPatience always runs the patience algorithm.
	AlgorithmPatience
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmMyers:
		return "myers"
	case AlgorithmPatience:
		return "patience"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm parses the String form of an Algorithm, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "myers", "":
		return AlgorithmMyers, nil
	case "patience":
		return AlgorithmPatience, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want myers or patience)", s)
	}
}
