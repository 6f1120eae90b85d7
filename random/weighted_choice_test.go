package random

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestWeightedChoice(t *testing.T) {
	elements := []WeightedChoiceOption[int]{
		{
			Weight: 1,
			Option: 1,
		},
		{
			Weight: 2,
			Option: 2,
		},
		{
			Weight: 3,
			Option: 3,
		},
	}

	e, err := WeightedChoice(elements)
	require.NoError(t, err)

	found := slices.ContainsFunc(elements, func(o WeightedChoiceOption[int]) bool {
		return o.Option == e
	})

	require.True(t, found)
}

func TestWeightedChoiceNeverPicksZeroWeight(t *testing.T) {
	elements := []WeightedChoiceOption[string]{
		{
			Weight: 0,
			Option: "never",
		},
		{
			Weight: 1,
			Option: "always",
		},
	}

	for i := 0; i < 1_000; i++ {
		e, err := WeightedChoice(elements)
		require.NoError(t, err)
		require.Equal(t, "always", e)
	}
}

func TestWeightedChoiceAllZeroWeights(t *testing.T) {
	elements := []WeightedChoiceOption[int]{
		{
			Option: 1,
		},
		{
			Option: 2,
		},
	}

	e, err := WeightedChoice(elements)
	require.NoError(t, err)
	require.Contains(t, []int{1, 2}, e)
}

func TestWeightedChoiceWhenEmpty(t *testing.T) {
	e, err := WeightedChoice([]WeightedChoiceOption[int]{})
	require.ErrorIs(t, err, ErrChoiceIsEmpty)
	require.Zero(t, e)
}
