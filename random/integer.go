package random

// IntRange returns an integer uniformly distributed over the half-open range [low, high).
func IntRange(low, high int) (int, error) {
	if low >= high {
		return 0, ErrInvalidRange
	}

	g, err := sharedGenerator()
	if err != nil {
		return 0, err
	}

	return low + g.intN(high-low), nil
}
