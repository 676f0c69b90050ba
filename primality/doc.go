// Package primality tests integers for primality.
//
//   - IsPrime: deterministic Miller–Rabin for every uint64. Below
//     4,759,123,141 the witness set {2, 7, 61} is exact; above it the
//     seven-base set {2, 325, 9375, 28178, 450775, 9780504, 1795265022}
//     is exact for all 64-bit inputs. Modular products use 128-bit
//     intermediates from math/bits, so no overflow is possible.
//   - Sieve / Primes: sieve of Eratosthenes for dense tables up to n.
//
// Complexity: IsPrime is O(k log n) modular multiplications with k ≤ 7;
// Sieve is O(n log log n) time and O(n) memory.
package primality
