package input

import "errors"

// ErrBadToken indicates a token that does not parse as the requested type,
// or a line with fewer tokens than requested.
var ErrBadToken = errors.New("input: bad token")
