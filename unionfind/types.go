package unionfind

import "errors"

// ErrOutOfRange indicates an element id outside [0, n).
var ErrOutOfRange = errors.New("unionfind: element out of range")
