package byword

import (
	"fmt"
	"strings"
)

// Policy selects how whitespace differences are reported.
type Policy int

const (
	// PolicyDefault reports every difference, but never includes whitespace shared by both sides at the edges of a change.
	PolicyDefault Policy = iota
	// PolicyTrimWhitespace also ignores whitespace at the start and end of lines.
	PolicyTrimWhitespace
	// PolicyIgnoreWhitespace ignores all whitespace differences.
	PolicyIgnoreWhitespace
)

func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyTrimWhitespace:
		return "trim-whitespace"
	case PolicyIgnoreWhitespace:
		return "ignore-whitespace"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the String form of a Policy. Case and '_' versus '-' are ignored.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "default", "":
		return PolicyDefault, nil
	case "trim-whitespace", "trim":
		return PolicyTrimWhitespace, nil
	case "ignore-whitespace", "ignore":
		return PolicyIgnoreWhitespace, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want default, trim-whitespace, or ignore-whitespace)", s)
	}
}
