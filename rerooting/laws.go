package rerooting

import "fmt"

// CheckLaws samples the monoid laws the engine relies on:
//
//	merge(merge(a, b), c) == merge(a, merge(b, c))   for all a, b, c in samples
//	merge(identity, a) == a == merge(a, identity)     for all a in samples
//
// eq decides equality of aggregates. The first violation is returned
// wrapped in ErrLawViolation. Cost: O(len(samples)^3) merges, so keep the
// sample small. Passing says nothing about values outside samples.
func CheckLaws[T any](identity T, merge Merge[T], eq func(a, b T) bool, samples ...T) error {
	if merge == nil || eq == nil {
		return ErrNilOperator
	}
	for i, a := range samples {
		if !eq(merge(identity, a), a) {
			return fmt.Errorf("%w: identity is not a left identity for sample %d (%v)", ErrLawViolation, i, a)
		}
		if !eq(merge(a, identity), a) {
			return fmt.Errorf("%w: identity is not a right identity for sample %d (%v)", ErrLawViolation, i, a)
		}
	}
	for i, a := range samples {
		for j, b := range samples {
			ab := merge(a, b)
			for k, c := range samples {
				if !eq(merge(ab, c), merge(a, merge(b, c))) {
					return fmt.Errorf("%w: merge is not associative on samples (%d, %d, %d)", ErrLawViolation, i, j, k)
				}
			}
		}
	}

	return nil
}
