package random

import "errors"

// ErrInvalidRange is returned if the user requests an integer from an empty or inverted range.
var ErrInvalidRange = errors.New("range must satisfy low < high")

// ErrChoiceIsEmpty is returned if the user attempts to choose from an empty slice.
var ErrChoiceIsEmpty = errors.New("can't choose from an empty slice")
