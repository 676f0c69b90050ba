package flow

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSourceNotFound is returned when the source is outside [0, V).
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink is outside [0, V).
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("flow: source and sink are the same vertex")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("flow: edge endpoint out of range")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Limit: stop once this much flow has been pushed; zero or negative
//     means no limit.
//
// A nil *FlowOptions is the same as the zero value.
type FlowOptions struct {
	Limit int64
}

func (o *FlowOptions) limit() int64 {
	if o == nil || o.Limit <= 0 {
		return math.MaxInt64
	}

	return o.Limit
}

// Edge reports one edge of a Network as added, with the flow it carries.
type Edge struct {
	From, To int
	Cap      int64
	Flow     int64
}
