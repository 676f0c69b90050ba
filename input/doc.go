// Package input reads whitespace-separated integers line by line, the shape
// of contest-style input.
//
// Each call consumes exactly one line. Tokens are split on any run of
// whitespace; a blank line yields an empty slice. Malformed tokens are
// reported as ErrBadToken wrapping the underlying strconv error, so both
// errors.Is(err, input.ErrBadToken) and errors.As(err, *strconv.NumError)
// hold. End of input is io.EOF.
package input
