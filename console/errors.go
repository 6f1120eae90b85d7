package console

import "errors"

// ErrInputUnavailable is returned if the input stream was closed, or reached end-of-stream, before yielding any
// data.
var ErrInputUnavailable = errors.New("input stream yielded no data")
