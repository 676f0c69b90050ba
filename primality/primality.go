package primality

import "math/bits"

var (
	smallBases = []uint64{2, 7, 61}
	largeBases = []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}
)

// smallLimit is the bound below which smallBases is a deterministic set.
const smallLimit = 4759123141

// mulMod returns a*b mod m without overflow.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)

	return rem
}

// powMod returns base^exp mod m.
func powMod(base, exp, m uint64) uint64 {
	res := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 != 0 {
			res = mulMod(res, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}

	return res
}

// millerRabin runs the strong probable-prime test for odd n > 2.
func millerRabin(n uint64, bases []uint64) bool {
	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range bases {
		if a%n == 0 {
			// a ≡ 0 says nothing about n.
			continue
		}
		x := powMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// IsPrime reports whether n is prime. Deterministic for every uint64.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	case n < smallLimit:
		return millerRabin(n, smallBases)
	default:
		return millerRabin(n, largeBases)
	}
}

// Sieve returns isPrime[0..n], computed with the sieve of Eratosthenes.
// A negative n yields an empty table.
func Sieve(n int) []bool {
	if n < 0 {
		return []bool{}
	}
	isPrime := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i <= n; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			isPrime[j] = false
		}
	}

	return isPrime
}

// Primes returns every prime p <= n in increasing order.
func Primes(n int) []int {
	table := Sieve(n)
	var out []int
	for p, ok := range table {
		if ok {
			out = append(out, p)
		}
	}

	return out
}
