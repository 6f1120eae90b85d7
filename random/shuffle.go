package random

// Shuffle permutes the given slice in place, each ordering being equally likely.
func Shuffle[S ~[]E, E any](s S) error {
	g, err := sharedGenerator()
	if err != nil {
		return err
	}

	g.shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })

	return nil
}
