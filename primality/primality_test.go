package primality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kyopro/primality"
)

func TestIsPrime_Small(t *testing.T) {
	table := primality.Sieve(10000)
	for n := 0; n <= 10000; n++ {
		require.Equal(t, table[n], primality.IsPrime(uint64(n)), "n=%d", n)
	}
}

func TestIsPrime_Known(t *testing.T) {
	primes := []uint64{
		61, 4759123129, 4759123151, // around the witness-set boundary
		998244353, 1000000007,
		2305843009213693951,  // 2^61 - 1
		18446744073709551557, // largest 64-bit prime
	}
	for _, p := range primes {
		assert.True(t, primality.IsPrime(p), "%d", p)
	}

	composites := []uint64{
		4759123141,          // 48781 * 97561, strong pseudoprime to 2, 7, 61
		3215031751,          // strong pseudoprime to 2, 3, 5, 7
		561, 1105, 1729,     // Carmichael numbers
		1000000007 * 998244353,
		math.MaxUint64,
		4294967297, // 641 * 6700417
	}
	for _, c := range composites {
		assert.False(t, primality.IsPrime(c), "%d", c)
	}
}

func TestSieveAndPrimes(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primality.Primes(30))
	assert.Nil(t, primality.Primes(1))
	assert.Equal(t, []bool{false, false, true}, primality.Sieve(2))
	assert.Empty(t, primality.Sieve(-5))
	assert.Len(t, primality.Primes(1000000), 78498)
}
