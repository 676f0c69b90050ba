package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner reads one line per call from an underlying reader.
type Scanner struct {
	r    *bufio.Reader
	line int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// LineNo returns the number of lines consumed so far.
func (s *Scanner) LineNo() int { return s.line }

// Line returns the next line with surrounding whitespace trimmed.
// A final line without a trailing newline is still returned; io.EOF is
// returned only once nothing is left.
func (s *Scanner) Line() (string, error) {
	raw, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || raw == "" {
			return "", err
		}
	}
	s.line++

	return strings.TrimSpace(raw), nil
}

// Fields returns the whitespace-separated tokens of the next line.
func (s *Scanner) Fields() ([]string, error) {
	line, err := s.Line()
	if err != nil {
		return nil, err
	}

	return strings.Fields(line), nil
}

// Ints parses every token of the next line as int.
func (s *Scanner) Ints() ([]int, error) {
	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, s.bad(i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Int64s parses every token of the next line as int64.
func (s *Scanner) Int64s() ([]int64, error) {
	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, s.bad(i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Uint64s parses every token of the next line as uint64.
func (s *Scanner) Uint64s() ([]uint64, error) {
	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, s.bad(i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Int returns the first token of the next line. Extra tokens are ignored.
func (s *Scanner) Int() (int, error) {
	vals, err := s.ints(1)
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}

// Pair returns the first two tokens of the next line.
func (s *Scanner) Pair() (int, int, error) {
	vals, err := s.ints(2)
	if err != nil {
		return 0, 0, err
	}

	return vals[0], vals[1], nil
}

// Triple returns the first three tokens of the next line.
func (s *Scanner) Triple() (int, int, int, error) {
	vals, err := s.ints(3)
	if err != nil {
		return 0, 0, 0, err
	}

	return vals[0], vals[1], vals[2], nil
}

func (s *Scanner) ints(want int) ([]int, error) {
	vals, err := s.Ints()
	if err != nil {
		return nil, err
	}
	if len(vals) < want {
		return nil, fmt.Errorf("%w: line %d has %d tokens, want %d", ErrBadToken, s.line, len(vals), want)
	}

	return vals, nil
}

func (s *Scanner) bad(col int, err error) error {
	return fmt.Errorf("%w: line %d token %d: %w", ErrBadToken, s.line, col+1, err)
}
