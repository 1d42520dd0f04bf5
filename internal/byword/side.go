package byword

// Side names one of the two texts being compared.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// sideOf returns SideLeft when isLeft is true.
func sideOf(isLeft bool) Side {
	if isLeft {
		return SideLeft
	}
	return SideRight
}

// pick returns left for SideLeft and right for SideRight.
func pick[T any](s Side, left, right T) T {
	if s == SideLeft {
		return left
	}
	return right
}
