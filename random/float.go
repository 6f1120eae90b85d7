package random

// Float returns a float uniformly distributed over [0, 1), like JavaScript's 'Math.random'.
func Float() (float64, error) {
	g, err := sharedGenerator()
	if err != nil {
		return 0, err
	}

	return g.float64(), nil
}
